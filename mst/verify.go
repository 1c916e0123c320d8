package mst

import (
	"fmt"
	"math"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/unionfind"
)

// verifyEps absorbs float rounding when comparing edge weights.
const verifyEps = 1e-9

// verifyForest re-checks the spanning-forest invariants on a completed
// result (the opt-in WithVerify pass):
//
//  1. acyclicity: adding the forest edges to an empty union-find never
//     closes a cycle, and the reported weight equals the edge-weight sum;
//  2. spanning: every graph edge connects vertices that the forest also
//     connects (no component is left split);
//  3. cut optimality: for each forest edge f, every non-forest edge
//     crossing the cut induced by removing f weighs at least as much.
//
// Complexity: O(E·V) dominated by the per-edge cut check.
func verifyForest(g *graph.Graph, f *Forest) error {
	// 1) Acyclic, and the weight sum matches.
	uf, err := unionfind.New(g.V())
	if err != nil {
		return err
	}
	sum := 0.0
	for _, e := range f.edges {
		v := e.Either()
		if !uf.Union(v, e.Other(v)) {
			return fmt.Errorf("%w: edge %s closes a cycle", ErrVerifyFailed, e)
		}
		sum += e.Weight()
	}
	if math.Abs(sum-f.weight) > verifyEps {
		return fmt.Errorf("%w: weight %v does not match edge sum %v", ErrVerifyFailed, f.weight, sum)
	}

	// 2) Spanning: any vertices the graph connects, the forest connects.
	for _, e := range g.Edges() {
		v := e.Either()
		if !uf.Connected(v, e.Other(v)) {
			return fmt.Errorf("%w: edge %s spans two forest components", ErrVerifyFailed, e)
		}
	}

	// 3) Cut optimality per forest edge.
	for skip, fe := range f.edges {
		cut, err := unionfind.New(g.V())
		if err != nil {
			return err
		}
		for i, e := range f.edges {
			if i == skip {
				continue
			}
			v := e.Either()
			cut.Union(v, e.Other(v))
		}
		// Every edge crossing the induced cut must not beat fe.
		for _, e := range g.Edges() {
			v := e.Either()
			if cut.Connected(v, e.Other(v)) {
				continue // does not cross the cut
			}
			if e.Weight() < fe.Weight()-verifyEps {
				return fmt.Errorf("%w: edge %s beats tree edge %s across its cut", ErrVerifyFailed, e, fe)
			}
		}
	}

	return nil
}
