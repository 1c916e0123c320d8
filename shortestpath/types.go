// This file declares the sentinel errors and functional options shared by
// the three shortest-path engines.
package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path engines.
var (
	// ErrNilGraph indicates a nil *graph.Digraph was passed to an engine.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrVertexRange indicates a source or query vertex outside [0, V).
	ErrVertexRange = errors.New("shortestpath: vertex out of range")

	// ErrNegativeWeight indicates Dijkstra was given a graph containing a
	// negative edge weight; detected before any relaxation occurs.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight")

	// ErrCycleDetected indicates Acyclic was given a digraph that is not a DAG.
	ErrCycleDetected = errors.New("shortestpath: digraph has a directed cycle")

	// ErrNegativeCycle indicates a distance/path query on a Bellman–Ford tree
	// that found a negative cycle; check HasNegativeCycle first.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle makes distances undefined")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("shortestpath: MaxDistance must be non-negative")

	// ErrVerifyFailed indicates the post-run optimality check found a
	// violated invariant (reported with the offending edge or vertex).
	ErrVerifyFailed = errors.New("shortestpath: optimality verification failed")
)

// Options configures the shortest-path engines.
//
// Verify      – re-check the optimality conditions after the run.
// MaxDistance – Dijkstra only: vertices farther than this cap are not
// explored and keep distance +Inf. Must be ≥ 0; default +Inf (no cap).
type Options struct {
	Verify      bool
	MaxDistance float64
}

// Option is a functional option for configuring an engine run.
type Option func(*Options)

// WithVerify enables the post-run optimality verification pass.
// On violation the engine returns ErrVerifyFailed instead of a Tree.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithMaxDistance caps Dijkstra's exploration: once the nearest unvisited
// vertex is farther than max, the search stops and the remaining vertices
// keep distance +Inf. Ignored by Acyclic and BellmanFord.
// Panics on a negative cap — invalid configuration, not a runtime state.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the engine defaults: no verification, no distance cap.
func DefaultOptions() Options {
	return Options{
		Verify:      false,
		MaxDistance: math.Inf(1),
	}
}
