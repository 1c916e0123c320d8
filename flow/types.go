// This file declares the FlowEdge residual edge type, sentinel errors, and
// the functional options for MaxFlow.
package flow

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for network construction and max-flow computation.
var (
	// ErrNilNetwork indicates a nil *Network was passed to MaxFlow.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrNilEdge indicates a nil *FlowEdge was passed to AddEdge.
	ErrNilEdge = errors.New("flow: edge is nil")

	// ErrNegativeVertices indicates a negative vertex count passed to NewNetwork.
	ErrNegativeVertices = errors.New("flow: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex index outside [0, V).
	ErrVertexRange = errors.New("flow: vertex out of range")

	// ErrNegativeCapacity indicates a negative or non-finite edge capacity.
	ErrNegativeCapacity = errors.New("flow: capacity must be finite and non-negative")

	// ErrSameSourceSink indicates MaxFlow was called with source == sink.
	ErrSameSourceSink = errors.New("flow: source equals sink")

	// ErrBadEpsilon indicates WithEpsilon was given a non-positive threshold.
	ErrBadEpsilon = errors.New("flow: epsilon must be positive")
)

// FlowEdge is a residual edge from→to: the capacity is immutable, the flow
// mutates as augmenting paths push through it. A single instance is
// registered with both endpoints of its owning Network so that residual
// traversal works in both directions.
type FlowEdge struct {
	from     int
	to       int
	capacity float64
	flow     float64
}

// NewFlowEdge validates endpoints and capacity and returns the edge with
// zero initial flow. Returns ErrVertexRange for negative endpoints and
// ErrNegativeCapacity for negative, NaN or infinite capacities.
func NewFlowEdge(from, to int, capacity float64) (*FlowEdge, error) {
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("%w: %d->%d", ErrVertexRange, from, to)
	}
	if capacity < 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, fmt.Errorf("%w: %d->%d capacity=%v", ErrNegativeCapacity, from, to, capacity)
	}

	return &FlowEdge{from: from, to: to, capacity: capacity}, nil
}

// From returns the tail vertex of the forward direction.
func (e *FlowEdge) From() int { return e.from }

// To returns the head vertex of the forward direction.
func (e *FlowEdge) To() int { return e.to }

// Capacity returns the immutable capacity of the forward direction.
func (e *FlowEdge) Capacity() float64 { return e.capacity }

// Flow returns the flow currently committed to the forward direction.
func (e *FlowEdge) Flow() float64 { return e.flow }

// Other returns the endpoint opposite to x.
// Panics if x is neither endpoint (caller programming error).
func (e *FlowEdge) Other(x int) int {
	switch x {
	case e.from:
		return e.to
	case e.to:
		return e.from
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of edge %s", x, e))
	}
}

// ResidualCapacityTo returns the residual capacity toward x: remaining
// forward capacity when x is the head, committed flow (undoable) when x is
// the tail. Panics if x is neither endpoint.
func (e *FlowEdge) ResidualCapacityTo(x int) float64 {
	switch x {
	case e.to:
		return e.capacity - e.flow
	case e.from:
		return e.flow
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of edge %s", x, e))
	}
}

// AddResidualFlowTo pushes delta units of flow toward x: forward flow grows
// when x is the head, shrinks when x is the tail. Panics if x is neither
// endpoint.
func (e *FlowEdge) AddResidualFlowTo(x int, delta float64) {
	switch x {
	case e.to:
		e.flow += delta
	case e.from:
		e.flow -= delta
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of edge %s", x, e))
	}
}

// String renders the edge as "from->to flow/capacity".
func (e *FlowEdge) String() string {
	return fmt.Sprintf("%d->%d %.5g/%.5g", e.from, e.to, e.flow, e.capacity)
}

// Options configures MaxFlow.
//
// Epsilon – residual capacities at or below this threshold count as zero.
type Options struct {
	Epsilon float64
}

// Option is a functional option for configuring MaxFlow.
type Option func(*Options)

// WithEpsilon overrides the zero-capacity threshold (default 1e-9).
// Panics on a non-positive value — invalid configuration, not runtime state.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns the MaxFlow defaults.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}
