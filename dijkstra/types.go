// Package dijkstra defines configuration options and sentinel errors for the
// priority-queue shortest-path engine.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond it stay at Infinity.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are treated as impassable.
//	– StrictWeights:    opt-in O(E) pre-scan that rejects negative weights.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if StrictWeights is set and a negative edge weight is found.
//	– ErrBadMaxDistance  if MaxDistance < 0 (raised as a panic by WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (raised as a panic by WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in strict mode.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra engine.
//
// MaxDistance      – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// StrictWeights    – reject graphs holding any negative weight with ErrNegativeWeight.
//
//	Default false: negative weights are not detected and give undefined results.
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable
	StrictWeights    bool  // Pre-scan edges and fail on negative weights
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are skipped.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithStrictWeights enables the negative-weight pre-scan.
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeights = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      math.MaxInt64 (explore all reachable vertices).
//   - InfEdgeThreshold: math.MaxInt64 (only weight MaxInt64 edges are impassable).
//   - StrictWeights:    false.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		StrictWeights:    false,
	}
}
