// Package funnel implements the window-funnel aggregate state machine
// (§3.5, §4.5): the consecutive funnel step a time-ordered scan of the
// events stands at when it ends (window expiry or the last event),
// subject to the composable STRICT/STRICT_ORDER/STRICT_INCREASE/STRICT_ONCE/
// ALLOW_REENTRY mode bits (§3.4).
package funnel

import (
	"fmt"

	"github.com/duckbehave/behavioral/event"
)

// State is the per-aggregation-group window-funnel state (§3.5).
//
// Config fields (WindowUs, Mode, K) are propagated across Combine per
// the zero-is-unset rule (§4.2 rule 2): the host constructs a
// zero-valued State as the fold target, and whichever side of a combine
// carries a non-default config value wins.
type State struct {
	Events   []event.Event
	WindowUs int64
	Mode     Mode
	K        uint32
}

// New constructs a State with explicit configuration. Hosts that
// zero-initialize State directly (per §4.2's combine-target contract)
// should instead set these fields once up front via Configure.
func New(windowUs int64, mode Mode, k uint32) *State {
	s := &State{}
	s.Configure(windowUs, mode, k)
	return s
}

// Configure sets the state's configuration fields. Safe to call on a
// zero-valued State right after construction.
func (s *State) Configure(windowUs int64, mode Mode, k uint32) {
	s.WindowUs = windowUs
	s.Mode = mode
	s.K = k
}

// Update appends one row to the state (§6.1: the host delivers rows in
// chunks; null timestamps are filtered upstream by the host-boundary
// glue before this is ever called, per §6.1 and §7.3).
func (s *State) Update(timestampUs int64, conditions uint32) {
	s.Events = append(s.Events, event.Event{TimestampUs: timestampUs, Conditions: conditions})
}

// CombineInto folds other into s, following the combine contract
// (§4.2): events are appended without sorting, and config fields are
// copied from other only where s's own field is still at its default
// (a genuine mismatch panics, in every build, rather than silently
// picking a side).
func (s *State) CombineInto(other *State) {
	if other == nil {
		return
	}
	s.Events = event.AppendCombine(s.Events, other.Events)

	if s.WindowUs == 0 {
		s.WindowUs = other.WindowUs
	} else if other.WindowUs != 0 && other.WindowUs != s.WindowUs {
		panic(fmt.Sprintf("funnel: combine mismatch: window %d != %d", s.WindowUs, other.WindowUs))
	}

	if s.Mode == 0 {
		s.Mode = other.Mode
	} else if other.Mode != 0 && other.Mode != s.Mode {
		panic(fmt.Sprintf("funnel: combine mismatch: mode %v != %v", s.Mode, other.Mode))
	}

	if s.K == 0 {
		s.K = other.K
	} else if other.K != 0 && other.K != s.K {
		panic(fmt.Sprintf("funnel: combine mismatch: k %d != %d", s.K, other.K))
	}
}

// Finalize sorts the collected events exactly once and runs the
// mode-aware funnel scan (§4.5), returning the step index the chain
// stands at when the scan ends (0..K). A STRICT, STRICT_ORDER or
// ALLOW_REENTRY reset lowers it, so this is not necessarily the highest
// step reached earlier in the scan. An empty group returns 0, the defined neutral value
// (§7.4).
func (s *State) Finalize() int32 {
	if s.K == 0 {
		return 0
	}
	event.Sort(s.Events)
	return runFunnel(s.Events, s.WindowUs, s.Mode, s.K)
}

func runFunnel(events []event.Event, windowUs int64, mode Mode, k uint32) int32 {
	var step uint32
	var entryTs, lastMatchedTs int64
	var hasEntry, hasLastMatched bool

	for _, e := range events {
		// 1. Window expiry stops the scan outright.
		if step > 0 && hasEntry && e.TimestampUs-entryTs > windowUs {
			break
		}

		// 2. Mode-specific break rules, applied before any advancement
		// is attempted for this event.
		// An event that triggers a reset is consumed by it and does not
		// start a new chain.
		if step > 0 && step < k {
			reset := false
			if mode.Has(Strict) {
				prevCond := step - 1
				nextCond := step
				if e.Condition(uint(prevCond)) && !e.Condition(uint(nextCond)) {
					step, hasEntry, hasLastMatched = 0, false, false
					reset = true
				}
			}
			if mode.Has(StrictOrder) {
				for j := uint32(0); j < step; j++ {
					if e.Condition(uint(j)) {
						step, hasEntry, hasLastMatched = 0, false, false
						reset = true
						break
					}
				}
			}
			if reset {
				continue
			}
		}

		// 3. Greedy multi-step advancement for this event.
		for step < k && e.Condition(uint(step)) {
			if step == 0 {
				entryTs, hasEntry = e.TimestampUs, true
			}

			if mode.Has(StrictIncrease) && hasLastMatched && !(e.TimestampUs > lastMatchedTs) {
				break
			}
			if (mode.Has(Strict) || mode.Has(StrictDeduplicationTS)) && hasLastMatched && e.TimestampUs == lastMatchedTs {
				// STRICT_DEDUPLICATION alias (§4.4 note) and the distinct
				// strict_deduplication_ts bit (§9 Open Question, resolved
				// in SPEC_FULL.md §C.2) share this exact check: both mean
				// "skip the event if its timestamp equals the last
				// matched timestamp."
				break
			}
			reentered := false
			if mode.Has(AllowReentry) && step > 0 && e.Condition(0) {
				entryTs, hasEntry = e.TimestampUs, true
				step = 0
				reentered = true
			}

			step++
			lastMatchedTs, hasLastMatched = e.TimestampUs, true

			// A reentry restart consumes this event in full, the same
			// way STRICT_ONCE does — otherwise the same event would
			// keep re-triggering the restart branch forever, since the
			// condition-0 match that caused it doesn't go away within
			// the same iteration.
			if mode.Has(StrictOnce) || reentered {
				break
			}
		}
	}

	return int32(step)
}
