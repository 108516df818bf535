package event

import "slices"

// Sort totally orders events by TimestampUs, ascending. It is called
// exactly once per finalize of an event-collecting state (§4.1): update
// and combine never sort, so this is the single place ordering is paid
// for.
//
// A first linear pass detects the already-sorted case (the common one
// when the host delivers rows in arrival order within a group) and
// returns without touching the backing array. slices.SortFunc falls back
// to Go's pattern-defeating quicksort, which is unstable — acceptable
// here because tied timestamps carry no ordering semantics (§3.1).
func Sort(events []Event) {
	if isSorted(events) {
		return
	}
	slices.SortFunc(events, func(a, b Event) int {
		switch {
		case a.TimestampUs < b.TimestampUs:
			return -1
		case a.TimestampUs > b.TimestampUs:
			return 1
		default:
			return 0
		}
	})
}

// isSorted scans consecutive pairs once; any inversion aborts early with
// false. On already-sorted input (the presorted fast path) this touches
// every element exactly once and allocates nothing.
func isSorted(events []Event) bool {
	for i := 1; i < len(events); i++ {
		if events[i-1].TimestampUs > events[i].TimestampUs {
			return false
		}
	}
	return true
}
