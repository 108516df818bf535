package matcher

import (
	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/pattern"
)

// adjacentTryAt attempts to match steps[0:] against events[i:] one-to-one.
// Returns the matched timestamps and the index one past the last
// consumed event on success.
func adjacentTryAt(steps []pattern.Step, events []event.Event, i int) ([]int64, int, bool) {
	if i+len(steps) > len(events) {
		return nil, 0, false
	}
	ts := make([]int64, 0, len(steps))
	for j, step := range steps {
		e := events[i+j]
		if !e.Condition(uint(step.CondIdx)) {
			return nil, 0, false
		}
		ts = append(ts, e.TimestampUs)
	}
	return ts, i + len(steps), true
}

// adjacentFirstMatch finds the first (leftmost) start index where the
// full step vector matches consecutive events. On a mismatch at offset
// j within an attempt, the scan advances the start index by exactly one
// — never by j+1 — which is the non-negotiable correctness rule from
// §4.7 (advancing by j+1 can skip over a valid match that starts inside
// the failed attempt's window).
func adjacentFirstMatch(steps []pattern.Step, events []event.Event) ([]int64, int, bool) {
	if len(steps) == 0 || len(events) < len(steps) {
		return nil, 0, false
	}
	for i := 0; i+len(steps) <= len(events); i++ {
		if ts, end, ok := adjacentTryAt(steps, events, i); ok {
			return ts, end, true
		}
	}
	return nil, 0, false
}

// adjacentCount counts non-overlapping matches, resuming the scan at the
// event immediately after each match's last consumed event.
func adjacentCount(steps []pattern.Step, events []event.Event) int64 {
	if len(steps) == 0 {
		return 0
	}
	var count int64
	i := 0
	for i+len(steps) <= len(events) {
		if _, end, ok := adjacentTryAt(steps, events, i); ok {
			count++
			i = end
			continue
		}
		i++
	}
	return count
}
