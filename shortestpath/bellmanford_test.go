package shortestpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/shortestpath"
)

// TestBellmanFord_NegativeEdgeNoCycle verifies negative weights are handled
// when no negative cycle exists: the negative edge shortens the path.
func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	g := buildDigraph(t, 3, [][3]float64{
		{0, 1, 1}, {1, 2, -2}, {0, 2, 5},
	})

	tree, err := shortestpath.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, tree.HasNegativeCycle())
	assert.Nil(t, tree.NegativeCycle())

	d, err := tree.DistTo(2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	path, err := tree.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"0->1 1", "1->2 -2"}, pathStrings(path))
}

// TestBellmanFord_NegativeCycle verifies detection: the triangle
// 0->1->2->0 sums to -3, distances become undefined, and the reported
// cycle is a closed walk with strictly negative total weight.
func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := buildDigraph(t, 3, [][3]float64{
		{0, 1, 1}, {1, 2, -5}, {2, 0, 1},
	})

	tree, err := shortestpath.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, tree.HasNegativeCycle())

	cycle := tree.NegativeCycle()
	require.NotEmpty(t, cycle)
	total := 0.0
	for i, e := range cycle {
		total += e.Weight()
		// Consecutive edges must chain head to tail, closing at the end.
		next := cycle[(i+1)%len(cycle)]
		assert.Equal(t, e.To(), next.From(), "cycle edges must form a closed walk")
	}
	assert.Equal(t, -3.0, total)

	// Distances and paths are undefined in this state.
	_, err = tree.DistTo(2)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	_, err = tree.PathTo(2)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	assert.False(t, tree.HasPathTo(2))
}

// TestBellmanFord_CycleNotReachable verifies a negative cycle in a
// component the source cannot reach does not poison the result.
func TestBellmanFord_CycleNotReachable(t *testing.T) {
	g := buildDigraph(t, 5, [][3]float64{
		{0, 1, 2},
		// Detached negative triangle 2->3->4->2.
		{2, 3, 1}, {3, 4, -4}, {4, 2, 1},
	})

	tree, err := shortestpath.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, tree.HasNegativeCycle(), "unreachable cycle must not be reported")

	d, err := tree.DistTo(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	assert.False(t, tree.HasPathTo(3))
}

// TestBellmanFord_Validation covers the nil-graph and source-range checks.
func TestBellmanFord_Validation(t *testing.T) {
	_, err := shortestpath.BellmanFord(nil, 0)
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)

	g := buildDigraph(t, 2, nil)
	_, err = shortestpath.BellmanFord(g, 2)
	assert.ErrorIs(t, err, shortestpath.ErrVertexRange)
}

// TestBellmanFord_AgreesWithDijkstra cross-checks both engines on a seeded
// random digraph with non-negative weights.
func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	g := randomDigraph(t, 50, 400, 3)

	bf, err := shortestpath.BellmanFord(g, 0, shortestpath.WithVerify())
	require.NoError(t, err)
	dij, err := shortestpath.Dijkstra(g, 0, shortestpath.WithVerify())
	require.NoError(t, err)

	require.False(t, bf.HasNegativeCycle())
	for v := 0; v < g.V(); v++ {
		assert.Equal(t, dij.HasPathTo(v), bf.HasPathTo(v), "reachability of %d", v)
		if !bf.HasPathTo(v) {
			continue
		}
		a, err := bf.DistTo(v)
		require.NoError(t, err)
		b, err := dij.DistTo(v)
		require.NoError(t, err)
		assert.InDelta(t, b, a, 1e-9, "DistTo(%d)", v)
	}
}

// randomDigraph builds a reproducible random digraph with non-negative
// weights in [0, 1).
func randomDigraph(t *testing.T, v, e int, seed int64) *graph.Digraph {
	t.Helper()
	g, err := graph.NewDigraph(v)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < e; i++ {
		_, err = g.AddEdge(r.Intn(v), r.Intn(v), r.Float64())
		require.NoError(t, err)
	}

	return g
}
