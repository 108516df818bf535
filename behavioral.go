// Package behavioral is the core of a behavioral-analytics aggregate
// library extending an embedded columnar analytical database with seven
// functions over timestamped event streams: session assignment, cohort
// retention, windowed funnel matching, sequence pattern matching,
// pattern counting, matched-step timestamp extraction, and next-node
// flow analysis.
//
// This package itself holds no state; it re-exports the seven state
// constructors so a host integration can depend on one import path
// instead of nine. The real engineering lives in the subpackages:
//
//   - event: the shared 16-byte Event value and its sort/combine helpers.
//   - pattern: the mini-regex compiler and shape classifier.
//   - matcher: the NFA executor and its two linear fast paths.
//   - funnel: the window-funnel state and its composable mode bitflags.
//   - sequence: the shared sequence_match/count/events state.
//   - nextnode: the next-node flow-analysis state.
//   - sessionize: the sequential and sliding-window boundary states.
//   - retention: the cohort-retention state.
//   - hostabi: the generic host callback contract (§6.1).
package behavioral

import (
	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/funnel"
	"github.com/duckbehave/behavioral/nextnode"
	"github.com/duckbehave/behavioral/retention"
	"github.com/duckbehave/behavioral/sequence"
	"github.com/duckbehave/behavioral/sessionize"
)

// NewWindowFunnel constructs a window-funnel state with the given
// window (microseconds), mode bitflags, and declared condition count.
func NewWindowFunnel(windowUs int64, mode funnel.Mode, k uint32) *funnel.State {
	return funnel.New(windowUs, mode, k)
}

// NewWindowFunnelInterval is NewWindowFunnel taking the window as a
// human-authored interval (§4.3 "convert interval to microseconds at
// state construction"), converting it with event.MicrosFromInterval.
func NewWindowFunnelInterval(value int64, unit event.Unit, mode funnel.Mode, k uint32) (*funnel.State, error) {
	us, err := event.MicrosFromInterval(value, unit)
	if err != nil {
		return nil, err
	}
	return funnel.New(us, mode, k), nil
}

// NewRetention constructs a cohort-retention state declaring k
// conditions.
func NewRetention(k uint32) *retention.State {
	return retention.New(k)
}

// NewSequence constructs a shared sequence state (backing
// sequence_match, sequence_count, and sequence_match_events) for the
// given pattern string.
func NewSequence(pattern string) *sequence.State {
	return sequence.New(pattern)
}

// NewNextNode constructs a next-node flow-analysis state.
func NewNextNode(direction nextnode.Direction, base nextnode.Base, k uint32) *nextnode.State {
	return nextnode.New(direction, base, k)
}

// NewSessionizeSequential constructs a non-sliding sequential
// session-assignment state.
func NewSessionizeSequential(thresholdUs int64) *sessionize.Sequential {
	return sessionize.NewSequential(thresholdUs)
}

// NewSessionizeBoundary constructs a sliding-window-compatible boundary
// session-assignment state.
func NewSessionizeBoundary(thresholdUs int64) *sessionize.Boundary {
	return sessionize.NewBoundary(thresholdUs)
}

// NewSessionizeBoundaryInterval is NewSessionizeBoundary taking the
// threshold as a human-authored interval.
func NewSessionizeBoundaryInterval(value int64, unit event.Unit) (*sessionize.Boundary, error) {
	us, err := event.MicrosFromInterval(value, unit)
	if err != nil {
		return nil, err
	}
	return sessionize.NewBoundary(us), nil
}
