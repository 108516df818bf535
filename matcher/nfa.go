package matcher

import (
	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/pattern"
)

// nfaFrame is one element of the explicit backtracking stack: a
// snapshot of (event position, step position, last-matched timestamp,
// pending time constraint, timestamps collected so far). Using an
// explicit stack of value structs rather than recursion is what lets the
// stack be reused across start positions without reallocating or
// growing the call stack (§4.7, §5).
type nfaFrame struct {
	eventIdx int
	stepIdx  int

	hasLast bool
	lastTs  int64

	pending     bool
	pendingOp   pattern.TimeOp
	pendingSecs int64

	matchedTs []int64
}

// reset truncates the reusable stack to length zero, keeping its
// backing array. Called once per start-position attempt.
func (m *Matcher) reset() {
	m.stack = m.stack[:0]
}

func (m *Matcher) push(f nfaFrame) {
	m.stack = append(m.stack, f)
}

func (m *Matcher) pop() (nfaFrame, bool) {
	n := len(m.stack)
	if n == 0 {
		return nfaFrame{}, false
	}
	f := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return f, true
}

// checkConstraint evaluates a pending time constraint against a
// candidate matched timestamp, per §4.7: "the constraint checks
// op((ts_current - ts_prev_matched)/1_000_000, secs)". With no previous
// matched timestamp the constraint is vacuously true.
func checkConstraint(f nfaFrame, candidateTs int64) bool {
	if !f.pending {
		return true
	}
	if !f.hasLast {
		return true
	}
	diffSeconds := (candidateTs - f.lastTs) / 1_000_000
	return f.pendingOp.Apply(diffSeconds, f.pendingSecs)
}

// runFrom runs the backtracking NFA starting the pattern at event index
// start. It returns the matched Condition-step timestamps, the index one
// past the last consumed event, and true on the first successful run
// found by the explore order below, or (nil, 0, false) if no run from
// this start position succeeds.
//
// Transitions per step (§4.7):
//   - Condition(c): on match, push (i+1, s+1, ts=events[i]); else die.
//   - OneEvent: push (i+1, s+1) if an event is available; else die.
//   - AnyEvents: push event-consume (i+1, s) FIRST, then push
//     pattern-advance (i, s+1) SECOND so it is popped FIRST — lazy
//     semantics. Pushing greedy-first causes catastrophic backtracking
//     and must never be done.
//   - TimeConstraint(op, secs): a zero-width step; becomes "pending" on
//     the frame and is resolved against the next step that actually
//     matches an event.
func (m *Matcher) runFrom(steps []pattern.Step, events []event.Event, start int) ([]int64, int, bool) {
	m.reset()
	m.push(nfaFrame{eventIdx: start, stepIdx: 0})

	for {
		f, ok := m.pop()
		if !ok {
			return nil, 0, false
		}

		if f.stepIdx == len(steps) {
			return f.matchedTs, f.eventIdx, true
		}

		step := steps[f.stepIdx]
		switch step.Kind {
		case pattern.KindTimeConstraint:
			m.push(nfaFrame{
				eventIdx:    f.eventIdx,
				stepIdx:     f.stepIdx + 1,
				hasLast:     f.hasLast,
				lastTs:      f.lastTs,
				pending:     true,
				pendingOp:   step.TimeOp,
				pendingSecs: step.TimeSecs,
				matchedTs:   f.matchedTs,
			})

		case pattern.KindCondition:
			if f.eventIdx >= len(events) {
				continue
			}
			e := events[f.eventIdx]
			if !e.Condition(uint(step.CondIdx)) {
				continue
			}
			if !checkConstraint(f, e.TimestampUs) {
				continue
			}
			matchedTs := append(append([]int64{}, f.matchedTs...), e.TimestampUs)
			m.push(nfaFrame{
				eventIdx:  f.eventIdx + 1,
				stepIdx:   f.stepIdx + 1,
				hasLast:   true,
				lastTs:    e.TimestampUs,
				matchedTs: matchedTs,
			})

		case pattern.KindOneEvent:
			if f.eventIdx >= len(events) {
				continue
			}
			e := events[f.eventIdx]
			if !checkConstraint(f, e.TimestampUs) {
				continue
			}
			m.push(nfaFrame{
				eventIdx:  f.eventIdx + 1,
				stepIdx:   f.stepIdx + 1,
				hasLast:   true,
				lastTs:    e.TimestampUs,
				matchedTs: f.matchedTs,
			})

		case pattern.KindAnyEvents:
			if f.eventIdx < len(events) {
				// Event-consume: pushed first, popped last.
				m.push(nfaFrame{
					eventIdx:    f.eventIdx + 1,
					stepIdx:     f.stepIdx,
					hasLast:     f.hasLast,
					lastTs:      f.lastTs,
					pending:     f.pending,
					pendingOp:   f.pendingOp,
					pendingSecs: f.pendingSecs,
					matchedTs:   f.matchedTs,
				})
			}
			// Pattern-advance: pushed second, popped first (lazy).
			m.push(nfaFrame{
				eventIdx:    f.eventIdx,
				stepIdx:     f.stepIdx + 1,
				hasLast:     f.hasLast,
				lastTs:      f.lastTs,
				pending:     f.pending,
				pendingOp:   f.pendingOp,
				pendingSecs: f.pendingSecs,
				matchedTs:   f.matchedTs,
			})
		}
	}
}

// nfaFirstMatch tries every start position from `from` onward until one
// succeeds (leftmost match). It also returns the index one past the
// last event consumed by the winning run, used by nfaCount to resume
// non-overlapping search at e+1.
func (m *Matcher) nfaFirstMatch(steps []pattern.Step, events []event.Event, from int) ([]int64, int, bool) {
	for start := from; start <= len(events); start++ {
		if ts, end, ok := m.runFrom(steps, events, start); ok {
			return ts, end, true
		}
	}
	return nil, 0, false
}

// nfaCount counts non-overlapping matches: after a match whose last
// consumed event index is e, the next search starts at e+1 (§4.7 mode
// 2). A zero-width match (start == end, possible for all-AnyEvents
// patterns) still advances by at least one to guarantee termination.
func (m *Matcher) nfaCount(steps []pattern.Step, events []event.Event) int64 {
	var count int64
	start := 0
	for start <= len(events) {
		_, end, ok := m.nfaFirstMatch(steps, events, start)
		if !ok {
			break
		}
		count++
		if end <= start {
			end = start + 1
		}
		start = end
	}
	return count
}
