package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultEpsilon is the default tolerance for comparing real-valued
// capacities: residual capacities ≤ epsilon are treated as exhausted.
const DefaultEpsilon = 1e-9

// Sentinel errors for solver construction and invocation.
var (
	// ErrNilNetwork is returned when the network handed to NewEdmondsKarp is nil.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrBadEpsilon is returned when options carry a non-positive epsilon.
	ErrBadEpsilon = errors.New("flow: epsilon must be positive")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceEqualsSink is returned when source and sink name the same vertex.
	ErrSourceEqualsSink = errors.New("flow: source equals sink")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures the solver.
//   - Epsilon: residual capacities ≤ Epsilon are treated as exhausted.
//     Must be positive; use DefaultOptions for the production default.
//   - Verbose: if true, each completed phase is traced through Logger.
//   - Logger: destination for Verbose traces; nil falls back to the global
//     zerolog logger.
type FlowOptions struct {
	Epsilon float64
	Verbose bool
	Logger  *zerolog.Logger
}

// DefaultOptions returns production-safe defaults: Epsilon = DefaultEpsilon,
// no verbose tracing.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: DefaultEpsilon}
}

// MaxFlow is the composed result of a maximum-flow computation.
type MaxFlow struct {
	// Value is the total flow routed from source to sink.
	Value float64

	// EdgeFlows maps core Edge.ID to the flow realized on that edge.
	// Edges skipped at build time (self-loops) do not appear.
	EdgeFlows map[string]float64
}
