// Package hostabi specifies, in Go terms, the five-operation callback
// contract a host database invokes against every aggregate state in
// this module (§6.1): state_init, state_update, state_combine,
// state_finalize, and state_destroy (state_size has no Go analog — the
// runtime owns allocation size, not the host).
//
// This package is the boundary layer only. It does not implement a C
// ABI itself (§1 Non-goals: that glue lives outside this repository);
// it gives host-binding code a typed, generic shape to bind against so
// the seven state packages stay free of any host-specific concern.
package hostabi

// Callbacks binds the five host-visible operations against a concrete
// state type S, input row type U, and finalize result type R. A host
// integration constructs one Callbacks value per aggregate function and
// registers it with the database's C ABI glue.
type Callbacks[S, U, R any] struct {
	// Init constructs a zero/default state. Combine's identity-state
	// contract (§8.1) requires this to return a value equivalent to the
	// empty aggregate.
	Init func() *S

	// Update applies a batch of rows to s. The host may call this
	// multiple times per state as chunks arrive (§6.1).
	Update func(s *S, rows []U)

	// Combine folds src into dst in place (§4.2). dst is always the
	// accumulator; src is never mutated.
	Combine func(dst, src *S)

	// Finalize produces the terminal output and must not mutate s, so a
	// host that calls it speculatively (e.g. for a windowed preview)
	// can still keep accumulating afterward.
	Finalize func(s *S) R

	// Destroy releases any resources s owns beyond ordinary Go memory
	// (next-node's reference-counted value handles; see
	// nextnode.Value.Release). Most state types need no-op Destroy.
	Destroy func(s *S)
}

// NoopDestroy is the Destroy hook for state types that own nothing
// beyond Go-GC'd memory — every state in this module except next-node.
func NoopDestroy[S any](*S) {}
