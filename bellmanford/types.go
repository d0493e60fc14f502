// Package bellmanford defines configuration options and sentinel errors for the
// iterative-relaxation shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNegativeCycle  if a negative-weight cycle is reachable from the source.
package bellmanford

import "errors"

// Sentinel errors returned by the BellmanFord implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle indicates that an edge still relaxed after V-1 passes,
	// so a negative-weight cycle is reachable from the source and no distance
	// result can be published.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")
)

// Options configures the behavior of the BellmanFord engine.
//
// EarlyExit – stop the V-1 relaxation passes as soon as one pass changes nothing.
//
//	Distances are identical either way; the detection pass always runs.
//	Default true.
type Options struct {
	EarlyExit bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithEarlyExit toggles stopping after the first pass that relaxes nothing.
func WithEarlyExit(enabled bool) Option {
	return func(o *Options) {
		o.EarlyExit = enabled
	}
}

// DefaultOptions returns Options with EarlyExit enabled.
func DefaultOptions() Options {
	return Options{EarlyExit: true}
}
