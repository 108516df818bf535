package nextnode

import "sync/atomic"

// Value is a shared-immutable string handle with an atomic reference
// count (§5 "Shared resources": next-node event values are the one place
// in this module with non-exclusive ownership, since combine may run
// concurrently across peer states on disjoint aggregation groups that
// nonetheless retain references into the same underlying string data).
//
// Grounded on the Sneller vm-aggregate reference's direct use of
// sync/atomic for cross-bucket merge counters rather than a refcount
// library: this module follows the same instinct — the primitive is
// narrow enough that sync/atomic is the right tool, not a dependency.
type Value struct {
	s      string
	null   bool
	refs   *int64
}

// NewValue constructs a Value from a string, starting at refcount 1.
func NewValue(s string) Value {
	n := int64(1)
	return Value{s: s, refs: &n}
}

// NullValue constructs the null value (§4.9 "distinguishable from the
// empty string").
func NullValue() Value {
	return Value{null: true}
}

// Clone atomically increments the refcount and returns a new handle
// sharing the same backing string. Safe to call from concurrent
// combines on disjoint states that both hold a reference into the same
// original value (§5).
func (v Value) Clone() Value {
	if v.refs != nil {
		atomic.AddInt64(v.refs, 1)
	}
	return v
}

// Release atomically decrements the refcount. The zero-value Value (no
// backing allocation) and the null value are no-ops.
func (v Value) Release() {
	if v.refs != nil {
		atomic.AddInt64(v.refs, -1)
	}
}

// IsNull reports whether this handle represents SQL NULL rather than an
// empty string (§4.9).
func (v Value) IsNull() bool {
	return v.null
}

// String returns the underlying string. Calling it on a null Value
// returns "" — callers must check IsNull first to distinguish that from
// a genuine empty string.
func (v Value) String() string {
	return v.s
}
