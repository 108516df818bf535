package matcher

import (
	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/pattern"
)

// wildcardConditions extracts the ordered Condition indices from a
// WildcardSeparated step vector, discarding the AnyEvents separators.
// Because AnyEvents between Conditions only ever means "skip zero or
// more events here," the whole pattern reduces to an in-order subsequence
// search over these indices — no backtracking is ever needed for this
// shape, which is what makes the fast path O(n) (§4.7).
func wildcardConditions(steps []pattern.Step) []uint32 {
	conds := make([]uint32, 0, len(steps))
	for _, s := range steps {
		if s.Kind == pattern.KindCondition {
			conds = append(conds, s.CondIdx)
		}
	}
	return conds
}

// wildcardFirstMatch walks events once, advancing a single target
// pointer whenever the current event satisfies the pointer's condition.
// Returns the matched timestamps and true on success.
func wildcardFirstMatch(steps []pattern.Step, events []event.Event) ([]int64, bool) {
	conds := wildcardConditions(steps)
	if len(conds) == 0 {
		return nil, true
	}
	ts := make([]int64, 0, len(conds))
	target := 0
	for _, e := range events {
		if e.Condition(uint(conds[target])) {
			ts = append(ts, e.TimestampUs)
			target++
			if target == len(conds) {
				return ts, true
			}
		}
	}
	return nil, false
}

// wildcardCount counts non-overlapping subsequence matches in a single
// forward pass: once the target pointer completes a match, it resets to
// zero and the same scan continues from the very next event.
func wildcardCount(steps []pattern.Step, events []event.Event) int64 {
	conds := wildcardConditions(steps)
	if len(conds) == 0 {
		return 0
	}
	var count int64
	target := 0
	for _, e := range events {
		if e.Condition(uint(conds[target])) {
			target++
			if target == len(conds) {
				count++
				target = 0
			}
		}
	}
	return count
}
