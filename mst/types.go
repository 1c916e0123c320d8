// This file declares the Forest result type, sentinel errors, and the
// method-dispatch configuration for MST computation.
package mst

import (
	"errors"
	"fmt"

	"github.com/korzhvl/wgraph/graph"
)

// Sentinel errors returned by the MST engines.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to an engine.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnknownMethod indicates Compute was configured with a method name
	// other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrVerifyFailed indicates the post-run forest check found a violated
	// invariant (reported with the offending edge).
	ErrVerifyFailed = errors.New("mst: forest verification failed")
)

// MethodPrim selects Prim's algorithm (grow per-component trees via an
// index-addressable min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges over union-find).
const MethodKruskal = "kruskal"

// Forest is the immutable result of an MST run: the selected edges and
// their total weight. For a graph with C connected components it holds
// exactly V−C edges forming one spanning tree per component.
type Forest struct {
	edges  []*graph.Edge
	weight float64
}

// Edges returns the forest edges in a fresh slice. The *graph.Edge
// instances are the input graph's own, shared read-only.
func (f *Forest) Edges() []*graph.Edge {
	out := make([]*graph.Edge, len(f.edges))
	copy(out, f.edges)

	return out
}

// Weight returns the sum of the forest's edge weights.
func (f *Forest) Weight() float64 { return f.weight }

// Len returns the number of edges in the forest.
func (f *Forest) Len() int { return len(f.edges) }

// Options configures an MST engine run.
//
// Method – MethodPrim or MethodKruskal (Compute only).
// Verify – re-check forest invariants after the run.
type Options struct {
	Method string
	Verify bool
}

// Option is a functional option for configuring an MST run.
type Option func(*Options)

// WithMethod selects the algorithm Compute dispatches to.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithVerify enables the post-run forest verification pass (acyclicity,
// per-component spanning, cut optimality). On violation the engine returns
// ErrVerifyFailed instead of a Forest.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// DefaultOptions returns the defaults: Kruskal, no verification.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Verify: false,
	}
}

// Compute runs the MST engine selected by the options (default Kruskal).
// Prim and Kruskal remain directly callable; this is dispatch scaffolding
// for callers that pick the method at runtime.
func Compute(g *graph.Graph, opts ...Option) (*Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
