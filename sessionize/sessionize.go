// Package sessionize implements the session-assignment operator (§3.5,
// §4.3): two state variants share one threshold policy but serve
// different engines. Sequential assigns a running session id per row,
// suited to a non-sliding, strictly-ordered scan. Boundary instead
// counts threshold-exceeding gaps and supports O(1) combine, which a
// segment-tree-based sliding window requires.
package sessionize

// Sequential maintains a monotonically increasing session id across
// calls to Update, in timestamp arrival order. It has no O(1) combine
// and is meant for a single linear pass, not segment-tree windowing
// (§4.3).
type Sequential struct {
	ThresholdUs int64

	prevTs    int64
	hasPrevTs bool
	sessionID int64
}

// NewSequential constructs a Sequential state with the gap threshold
// already converted to microseconds.
func NewSequential(thresholdUs int64) *Sequential {
	return &Sequential{ThresholdUs: thresholdUs}
}

// Update assigns and returns the session id for the row at ts (§4.3):
// the first row starts session 1; a gap exceeding ThresholdUs opens a
// new session.
func (s *Sequential) Update(timestampUs int64) int64 {
	switch {
	case !s.hasPrevTs:
		s.sessionID = 1
	case timestampUs-s.prevTs > s.ThresholdUs:
		s.sessionID++
	}
	s.prevTs, s.hasPrevTs = timestampUs, true
	return s.sessionID
}

// Boundary tracks the span and gap-count needed to answer "how many
// sessions touch this window" in O(1) combine time (§4.3). Unlike
// Sequential it does not assign per-row ids; its Finalize answers only
// the window-local session count.
type Boundary struct {
	ThresholdUs int64

	FirstTs    int64
	HasFirstTs bool
	LastTs     int64
	HasLastTs  bool
	Boundaries int64
}

// NewBoundary constructs a Boundary state with the gap threshold already
// converted to microseconds.
func NewBoundary(thresholdUs int64) *Boundary {
	return &Boundary{ThresholdUs: thresholdUs}
}

// Update folds one row into the state: First/Last span widen to cover
// ts, and a boundary is recorded if the gap from the most recently seen
// timestamp in this partition exceeds the threshold (§4.3).
//
// Update assumes rows arrive in timestamp order within a single Update
// sequence (the segment-tree leaf it's backing is a presorted run); it
// does not itself sort. A host that delivers a leaf out of order must
// sort before calling Update.
func (b *Boundary) Update(timestampUs int64) {
	if !b.HasFirstTs || timestampUs < b.FirstTs {
		b.FirstTs = timestampUs
	}
	b.HasFirstTs = true

	if b.HasLastTs && timestampUs-b.LastTs > b.ThresholdUs {
		b.Boundaries++
	}
	if !b.HasLastTs || timestampUs > b.LastTs {
		b.LastTs = timestampUs
	}
	b.HasLastTs = true
}

// CombineInto assembles the result of folding other into b (§4.3): an
// empty side leaves the other unchanged; otherwise the boundary count is
// the sum of both sides' counts, plus one extra if the gap between b's
// span and other's span itself exceeds the threshold.
func (b *Boundary) CombineInto(other *Boundary) {
	if other == nil || !other.HasFirstTs {
		return
	}
	if !b.HasFirstTs {
		*b = *other
		return
	}

	gap := other.FirstTs - b.LastTs
	if gap < 0 {
		gap = b.FirstTs - other.LastTs
	}
	extra := int64(0)
	if gap > b.ThresholdUs {
		extra = 1
	}

	if other.FirstTs < b.FirstTs {
		b.FirstTs = other.FirstTs
	}
	if other.LastTs > b.LastTs {
		b.LastTs = other.LastTs
	}
	b.Boundaries += other.Boundaries + extra

	if b.ThresholdUs == 0 {
		b.ThresholdUs = other.ThresholdUs
	}
}

// Finalize returns the window's session count (§4.3): one session plus
// one for every threshold-exceeding gap observed. An empty group returns
// 1, since a window containing no rows still represents a single
// (empty) session under this count's definition — hosts that need to
// distinguish "no rows at all" do so before calling Finalize.
func (b *Boundary) Finalize() int64 {
	return 1 + b.Boundaries
}
