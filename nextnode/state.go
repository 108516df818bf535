// Package nextnode implements the next-node flow-analysis aggregate
// state (§3.2, §4.9): given a chain of condition predicates, find the
// value immediately adjacent (in the traversal direction) to the first
// complete match starting from a base position.
package nextnode

import (
	"fmt"
	"slices"
)

// Event is one stored row (§4.9 "store every event, no condition
// filter"). Seq is the update/combine arrival sequence number used to
// break timestamp ties deterministically (§C.3 of SPEC_FULL.md).
type Event struct {
	TimestampUs   int64
	Conditions    uint32
	BaseCondition bool
	Value         Value
	Seq           int64
}

// Condition reports whether bit i (0-based) is set.
func (e Event) Condition(i uint) bool {
	return e.Conditions&(1<<i) != 0
}

// State is the per-aggregation-group next-node state.
type State struct {
	Events    []Event
	Direction Direction
	BaseMode  Base
	K         uint32

	nextSeq int64
}

// New constructs a State with explicit configuration.
func New(direction Direction, base Base, k uint32) *State {
	s := &State{}
	s.Configure(direction, base, k)
	return s
}

// Configure sets the state's configuration fields.
func (s *State) Configure(direction Direction, base Base, k uint32) {
	s.Direction = direction
	s.BaseMode = base
	s.K = k
}

// Update appends one row, unfiltered (§4.9: next-node must NOT apply the
// zero-condition drop that sequence states use).
func (s *State) Update(timestampUs int64, conditions uint32, baseCondition bool, value Value) {
	s.Events = append(s.Events, Event{
		TimestampUs:   timestampUs,
		Conditions:    conditions,
		BaseCondition: baseCondition,
		Value:         value,
		Seq:           s.nextSeq,
	})
	s.nextSeq++
}

// CombineInto folds other into s (§4.2): events append without sorting,
// arrival sequence numbers are renumbered to remain a total order across
// the combined set, and config fields propagate from whichever side
// carries them.
func (s *State) CombineInto(other *State) {
	if other == nil {
		return
	}
	for _, e := range other.Events {
		e.Seq = s.nextSeq
		s.nextSeq++
		s.Events = append(s.Events, e)
	}

	if s.Direction == Forward {
		s.Direction = other.Direction
	}

	if s.BaseMode == Head {
		s.BaseMode = other.BaseMode
	} else if other.BaseMode != Head && other.BaseMode != s.BaseMode {
		panic(fmt.Sprintf("nextnode: combine mismatch: base %d != %d", s.BaseMode, other.BaseMode))
	}

	if s.K == 0 {
		s.K = other.K
	} else if other.K != 0 && other.K != s.K {
		panic(fmt.Sprintf("nextnode: combine mismatch: k %d != %d", s.K, other.K))
	}
}

// Finalize runs the traversal algorithm (§4.9) and returns the adjacent
// value, or a null Value if no complete match exists.
func (s *State) Finalize() Value {
	if s.K == 0 || len(s.Events) == 0 {
		return NullValue()
	}

	sorted := make([]Event, len(s.Events))
	copy(sorted, s.Events)
	slices.SortFunc(sorted, func(a, b Event) int {
		switch {
		case a.TimestampUs < b.TimestampUs:
			return -1
		case a.TimestampUs > b.TimestampUs:
			return 1
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		default:
			return 0
		}
	})

	order := traversalOrder(len(sorted), s.Direction)

	var starts []int
	for _, idx := range order {
		if sorted[idx].BaseCondition && sorted[idx].Condition(0) {
			starts = append(starts, idx)
		}
	}
	if len(starts) == 0 {
		return NullValue()
	}

	startPos := make(map[int]int, len(order))
	for pos, idx := range order {
		startPos[idx] = pos
	}
	tryFrom := func(startIdx int) (int, bool) {
		return matchFrom(sorted, order, startPos[startIdx], s.K)
	}
	resultIdx := func(lastMatchedIdx int) int {
		if s.Direction == Forward {
			return lastMatchedIdx + 1
		}
		return lastMatchedIdx - 1
	}

	switch s.BaseMode {
	case Head:
		if end, ok := tryFrom(starts[0]); ok {
			return adjacentValue(sorted, resultIdx(end))
		}
		return NullValue()
	case Tail:
		if end, ok := tryFrom(starts[len(starts)-1]); ok {
			return adjacentValue(sorted, resultIdx(end))
		}
		return NullValue()
	case FirstMatch:
		for _, start := range starts {
			if end, ok := tryFrom(start); ok {
				return adjacentValue(sorted, resultIdx(end))
			}
		}
		return NullValue()
	case LastMatch:
		found := false
		var lastEnd int
		for _, start := range starts {
			if end, ok := tryFrom(start); ok {
				found, lastEnd = true, end
			}
		}
		if found {
			return adjacentValue(sorted, resultIdx(lastEnd))
		}
		return NullValue()
	default:
		return NullValue()
	}
}

// traversalOrder returns the array-index sequence to scan in direction
// order: ascending for Forward, descending for Backward (§4.9 step 3).
func traversalOrder(n int, direction Direction) []int {
	order := make([]int, n)
	if direction == Forward {
		for i := range order {
			order[i] = i
		}
	} else {
		for i := range order {
			order[i] = n - 1 - i
		}
	}
	return order
}

// matchFrom walks order starting at position startPos (an index into
// order, not into events), advancing a step counter whenever the
// current event satisfies condition[step] (§4.9 step 3: matched
// positions are not required to be adjacent, only strictly monotonic in
// traversal direction, which scanning order already guarantees).
// Returns the array index (into events) of the event that completed the
// final step.
func matchFrom(events []Event, order []int, startPos int, k uint32) (int, bool) {
	step := uint32(0)
	lastMatchedIdx := -1
	for pos := startPos; pos < len(order) && step < k; pos++ {
		idx := order[pos]
		if events[idx].Condition(uint(step)) {
			step++
			lastMatchedIdx = idx
		}
	}
	return lastMatchedIdx, step == k
}

func adjacentValue(events []Event, idx int) Value {
	if idx < 0 || idx >= len(events) {
		return NullValue()
	}
	return events[idx].Value
}
