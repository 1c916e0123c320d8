package shortestpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korzhvl/wgraph/shortestpath"
)

// TestAcyclic_NegativeWeights verifies that a DAG relaxation handles
// negative edges: the path through the negative edge wins.
func TestAcyclic_NegativeWeights(t *testing.T) {
	g := buildDigraph(t, 4, [][3]float64{
		{0, 1, 5}, {0, 2, 4}, {1, 3, -2}, {2, 3, 2},
	})

	tree, err := shortestpath.Acyclic(g, 0)
	require.NoError(t, err)

	d, err := tree.DistTo(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	path, err := tree.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"0->1 5", "1->3 -2"}, pathStrings(path))
}

// TestAcyclic_RejectsCycle verifies the topological sort fails fast on a
// cyclic digraph, even when the cycle is unreachable from the source.
func TestAcyclic_RejectsCycle(t *testing.T) {
	cyclic := buildDigraph(t, 3, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 0, 1},
	})
	_, err := shortestpath.Acyclic(cyclic, 0)
	assert.ErrorIs(t, err, shortestpath.ErrCycleDetected)

	// Cycle in a component the source never reaches: still rejected — the
	// DAG precondition is a property of the graph, not of the search.
	detached := buildDigraph(t, 4, [][3]float64{
		{2, 3, 1}, {3, 2, 1},
	})
	_, err = shortestpath.Acyclic(detached, 0)
	assert.ErrorIs(t, err, shortestpath.ErrCycleDetected)
}

// TestAcyclic_SelfLoopIsCycle verifies a self-loop counts as a cycle.
func TestAcyclic_SelfLoopIsCycle(t *testing.T) {
	g := buildDigraph(t, 2, [][3]float64{{0, 1, 1}, {1, 1, 2}})

	_, err := shortestpath.Acyclic(g, 0)
	assert.ErrorIs(t, err, shortestpath.ErrCycleDetected)
}

// TestAcyclic_Unreachable verifies untouched vertices stay at +Inf.
func TestAcyclic_Unreachable(t *testing.T) {
	g := buildDigraph(t, 4, [][3]float64{{0, 1, 1}, {2, 3, 1}})

	tree, err := shortestpath.Acyclic(g, 0)
	require.NoError(t, err)

	d, err := tree.DistTo(3)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	path, err := tree.PathTo(3)
	require.NoError(t, err)
	assert.Nil(t, path)
}

// TestAcyclic_Validation covers the nil-graph and source-range checks.
func TestAcyclic_Validation(t *testing.T) {
	_, err := shortestpath.Acyclic(nil, 0)
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)

	g := buildDigraph(t, 2, [][3]float64{{0, 1, 1}})
	_, err = shortestpath.Acyclic(g, 5)
	assert.ErrorIs(t, err, shortestpath.ErrVertexRange)
}

// TestAcyclic_AgreesWithDijkstra cross-checks both engines on a DAG with
// non-negative weights, where their answers must coincide.
func TestAcyclic_AgreesWithDijkstra(t *testing.T) {
	// Layered DAG: edges only go to higher-numbered vertices.
	g := buildDigraph(t, 6, [][3]float64{
		{0, 1, 0.4}, {0, 2, 0.9}, {1, 2, 0.3}, {1, 3, 1.2},
		{2, 3, 0.5}, {2, 4, 1.1}, {3, 4, 0.2}, {3, 5, 0.9}, {4, 5, 0.6},
	})

	dag, err := shortestpath.Acyclic(g, 0, shortestpath.WithVerify())
	require.NoError(t, err)
	dij, err := shortestpath.Dijkstra(g, 0, shortestpath.WithVerify())
	require.NoError(t, err)

	for v := 0; v < g.V(); v++ {
		a, err := dag.DistTo(v)
		require.NoError(t, err)
		b, err := dij.DistTo(v)
		require.NoError(t, err)
		assert.InDelta(t, b, a, 1e-12, "DistTo(%d)", v)
	}
}
