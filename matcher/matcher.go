// Package matcher executes a compiled pattern (package pattern) against
// a time-ordered event slice using one of three strategies selected by
// the pattern's shape classification (§4.7): a sliding-window scan for
// AdjacentConditions, a single-counter linear scan for
// WildcardSeparated, and a backtracking NFA with a reused explicit stack
// for Complex. All three share the three execution modes a caller can
// ask for: first-match boolean, non-overlapping count, and the matched
// condition-step timestamps of the first match.
//
// Dispatch mirrors the teacher's pattern-directed specialization: the
// meta-engine (github.com/coregx/coregex/meta) classifies a compiled
// regex once and picks among PikeVM/backtracker/DFA; this package
// classifies a compiled step vector once (pattern.Classify) and picks
// among sliding-window/linear-scan/NFA.
package matcher

import (
	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/pattern"
)

// Matcher holds buffers reused across calls to avoid reallocating the
// NFA's explicit stack on every finalize (§5 Memory: "A pattern-scoped,
// execution-call-scoped reuse of the NFA stack is required"). A
// zero-value Matcher is ready to use; reuse one instance across the
// three entry points for a given sequence state when possible.
type Matcher struct {
	stack []nfaFrame
}

// Execute reports whether any subsequence of events (in timestamp order)
// matches c, starting the search at every possible position until the
// first match is found (leftmost match; lazy AnyEvents yields the
// shortest match consistent with that).
func (m *Matcher) Execute(c *pattern.Compiled, events []event.Event) bool {
	switch c.Shape {
	case pattern.AdjacentConditions:
		_, _, ok := adjacentFirstMatch(c.Steps, events)
		return ok
	case pattern.WildcardSeparated:
		_, ok := wildcardFirstMatch(c.Steps, events)
		return ok
	default:
		_, _, ok := m.nfaFirstMatch(c.Steps, events, 0)
		return ok
	}
}

// Count returns the number of non-overlapping matches of c across
// events: once a match ends at event index e, the next search starts at
// e+1 (§4.7 mode 2).
func (m *Matcher) Count(c *pattern.Compiled, events []event.Event) int64 {
	switch c.Shape {
	case pattern.AdjacentConditions:
		return adjacentCount(c.Steps, events)
	case pattern.WildcardSeparated:
		return wildcardCount(c.Steps, events)
	default:
		return m.nfaCount(c.Steps, events)
	}
}

// MatchEvents returns the timestamps of the Condition-matched steps of
// the first successful match, or nil if there is no match (§4.7 mode 3).
func (m *Matcher) MatchEvents(c *pattern.Compiled, events []event.Event) []int64 {
	switch c.Shape {
	case pattern.AdjacentConditions:
		ts, _, ok := adjacentFirstMatch(c.Steps, events)
		if !ok {
			return nil
		}
		return ts
	case pattern.WildcardSeparated:
		ts, ok := wildcardFirstMatch(c.Steps, events)
		if !ok {
			return nil
		}
		return ts
	default:
		ts, _, ok := m.nfaFirstMatch(c.Steps, events, 0)
		if !ok {
			return nil
		}
		return ts
	}
}
