// Package pattern compiles the mini-regex grammar of the sequence
// aggregate functions into an ordered step vector, and
// classifies the compiled form for dispatch to one of the fast paths in
// package matcher (§3.3, §4.6).
package pattern

import "fmt"

// TimeOp is a comparison operator used by a TimeConstraint step.
type TimeOp int

// Supported time-constraint comparisons (§3.3).
const (
	OpGE TimeOp = iota // >=
	OpLE               // <=
	OpGT               // >
	OpLT               // <
	OpEQ               // ==
	OpNE               // !=
)

func (op TimeOp) String() string {
	switch op {
	case OpGE:
		return ">="
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpLT:
		return "<"
	case OpEQ:
		return "=="
	case OpNE:
		return "!="
	default:
		return fmt.Sprintf("TimeOp(%d)", int(op))
	}
}

// Apply evaluates the comparison lhs OP rhs.
func (op TimeOp) Apply(lhs, rhs int64) bool {
	switch op {
	case OpGE:
		return lhs >= rhs
	case OpLE:
		return lhs <= rhs
	case OpGT:
		return lhs > rhs
	case OpLT:
		return lhs < rhs
	case OpEQ:
		return lhs == rhs
	case OpNE:
		return lhs != rhs
	default:
		return false
	}
}

// StepKind discriminates the closed set of step shapes a compiled
// pattern is built from (§3.3).
type StepKind int

const (
	// KindCondition matches a single event against a 0-based condition
	// index.
	KindCondition StepKind = iota
	// KindOneEvent matches exactly one event, any conditions.
	KindOneEvent
	// KindAnyEvents matches zero or more events (lazily, §4.7).
	KindAnyEvents
	// KindTimeConstraint is not itself a consumed event; it constrains
	// the whole-second gap between the timestamps of the steps matched
	// immediately before and after it.
	KindTimeConstraint
)

// Step is a single compiled instruction. Only the fields relevant to
// Kind are meaningful; this mirrors the teacher's closed instruction set
// (nfa state kinds) rather than using one interface type per kind, since
// the set is small, fixed, and never extended by plugins.
type Step struct {
	Kind      StepKind
	CondIdx   uint32 // valid when Kind == KindCondition; 0-based
	TimeOp    TimeOp // valid when Kind == KindTimeConstraint
	TimeSecs  int64  // valid when Kind == KindTimeConstraint
}

// IsConditionStep reports whether s consumes an event against a
// condition predicate.
func (s Step) IsConditionStep() bool {
	return s.Kind == KindCondition
}
