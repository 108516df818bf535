package pattern

import (
	"errors"
	"fmt"
)

// Sentinel parse-error classes (§6.4: "parse failures... produce a
// user-visible error with byte offset"). Each is wrapped by ParseError,
// which carries the offset; callers can still errors.Is against the
// sentinel to branch on failure class, following the same
// sentinel-plus-typed-wrapper shape the teacher uses for its own
// compilation errors (nfa.ErrInvalidPattern / nfa.CompileError).
var (
	// ErrUnknownToken indicates a byte sequence that doesn't start any
	// known step.
	ErrUnknownToken = errors.New("pattern: unknown token")
	// ErrConditionIndexRange indicates `(?N)` with N == 0 or N > 32.
	ErrConditionIndexRange = errors.New("pattern: condition index out of range [1, 32]")
	// ErrTruncatedGroup indicates an unterminated `(?...)` group.
	ErrTruncatedGroup = errors.New("pattern: truncated group")
	// ErrBadTimeOp indicates an unrecognized operator in `(?t OP N)`.
	ErrBadTimeOp = errors.New("pattern: unrecognized time operator")
	// ErrBadTimeNumber indicates a malformed integer in `(?t OP N)`.
	ErrBadTimeNumber = errors.New("pattern: malformed time constraint number")
	// ErrEmptyPattern indicates a pattern with zero steps.
	ErrEmptyPattern = errors.New("pattern: empty pattern")
	// ErrStackedTimeConstraint indicates two time constraints with no
	// intervening condition step. §9 Open Question, resolved: rejected
	// rather than folded (see SPEC_FULL.md §C.1).
	ErrStackedTimeConstraint = errors.New("pattern: time constraint immediately follows another time constraint")
)

// ParseError is returned by Compile on any syntax error. Offset is the
// byte position in the source pattern string where the failure was
// detected, following the teacher's "byte-accurate error positions"
// requirement (§4.6).
type ParseError struct {
	Pattern string
	Offset  int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pattern %q: %v at byte offset %d", e.Pattern, e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
