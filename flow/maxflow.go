package flow

import (
	"fmt"
	"math"
)

// Result is the immutable outcome of a MaxFlow run: the flow value and the
// source side of a minimum cut.
type Result struct {
	value  float64
	marked []bool // reachable from source in the final residual network
}

// Value returns the maximum flow value from source to sink.
func (r *Result) Value() float64 { return r.value }

// InCut reports whether v lies on the source side of the minimum cut.
// Out-of-range vertices are not in the cut.
func (r *Result) InCut(v int) bool {
	if v < 0 || v >= len(r.marked) {
		return false
	}

	return r.marked[v]
}

// MaxFlow computes the maximum flow from source to sink in n using
// Edmonds–Karp: BFS finds the fewest-edge augmenting path, the bottleneck
// residual capacity is pushed along it, and the loop repeats until the sink
// is unreachable in the residual network. The flows stored on n's edges are
// updated in place; the final residual reachability yields the minimum cut.
//
// Steps:
//  1. Validate: non-nil network, source/sink in range, source != sink.
//  2. BFS from source over edges with residual capacity > Epsilon,
//     recording the incoming residual edge per visited vertex.
//  3. If the sink was reached: walk the recorded path backward to find the
//     bottleneck, push it forward, accumulate the flow value, repeat at 2.
//  4. When BFS no longer reaches the sink, the visited set is the source
//     side of a minimum cut (max-flow/min-cut theorem).
//
// Complexity: O(V · E²) time, O(V + E) memory.
func MaxFlow(n *Network, source, sink int, opts ...Option) (*Result, error) {
	// 1) Build options and validate inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if n == nil {
		return nil, ErrNilNetwork
	}
	if source < 0 || source >= n.V() {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexRange, source, n.V())
	}
	if sink < 0 || sink >= n.V() {
		return nil, fmt.Errorf("%w: sink %d not in [0,%d)", ErrVertexRange, sink, n.V())
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSameSourceSink, source)
	}

	res := &Result{}
	edgeTo := make([]*FlowEdge, n.V())
	var marked []bool

	// 2) Augment along shortest residual paths until none remain.
	for {
		marked = bfsResidual(n, source, edgeTo, cfg.Epsilon)
		if !marked[sink] {
			break
		}

		// 3a) Bottleneck: the minimum residual capacity along the path.
		bottle := math.Inf(1)
		for v := sink; v != source; v = edgeTo[v].Other(v) {
			if rc := edgeTo[v].ResidualCapacityTo(v); rc < bottle {
				bottle = rc
			}
		}

		// 3b) Push the bottleneck along the path.
		for v := sink; v != source; v = edgeTo[v].Other(v) {
			edgeTo[v].AddResidualFlowTo(v, bottle)
		}
		res.value += bottle
	}

	// 4) The last BFS frontier is the minimum cut's source side.
	res.marked = marked

	return res, nil
}

// bfsResidual runs a breadth-first search from source over edges with
// residual capacity above eps, filling edgeTo with the incoming residual
// edge of each visited vertex and returning the visited set.
func bfsResidual(n *Network, source int, edgeTo []*FlowEdge, eps float64) []bool {
	marked := make([]bool, n.V())
	marked[source] = true
	queue := make([]int, 0, n.V())
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, e := range n.adj[v] {
			w := e.Other(v)
			if marked[w] || e.ResidualCapacityTo(w) <= eps {
				continue
			}
			edgeTo[w] = e
			marked[w] = true
			queue = append(queue, w)
		}
	}

	return marked
}
