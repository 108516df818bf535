// Package sequence implements the shared aggregate state behind
// sequence_match, sequence_count, and sequence_match_events (§3.5, §4.8):
// a pattern string plus a filtered event vector, lazily compiled and
// dispatched through package matcher's three execution modes.
package sequence

import (
	"fmt"

	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/matcher"
	"github.com/duckbehave/behavioral/pattern"
)

// State is the per-aggregation-group sequence state (§3.5). Pattern is
// the raw pattern string; compiled caches its parse so repeated
// finalize-adjacent calls (and combines that never change the pattern)
// don't re-parse on every call. compiled is invalidated only when
// Pattern changes out from under it, which should not happen within a
// single group (§4.8) but is handled defensively rather than assumed.
type State struct {
	Events  []event.Event
	Pattern string

	compiled    *pattern.Compiled
	compiledFor string
	compiledErr error
	matcher     matcher.Matcher
}

// New constructs a State with an explicit pattern string.
func New(patternStr string) *State {
	s := &State{}
	s.Configure(patternStr)
	return s
}

// Configure sets the pattern string on a (possibly zero-valued) State.
func (s *State) Configure(patternStr string) {
	s.Pattern = patternStr
}

// Update appends one event, dropping it immediately if it carries no
// condition bits (§9 "Event filter at update time"): such an event
// cannot participate in any pattern step and would only cost sort and
// scan time for nothing.
func (s *State) Update(timestampUs int64, conditions uint32) {
	if conditions == 0 {
		return
	}
	s.Events = append(s.Events, event.Event{TimestampUs: timestampUs, Conditions: conditions})
}

// CombineInto folds other into s (§4.2): events append without sorting;
// Pattern propagates from other only when s's own is still empty. The
// compiled-pattern cache is dropped whenever this changes Pattern, since
// a changed source string invalidates whatever was compiled for the old
// one.
func (s *State) CombineInto(other *State) {
	if other == nil {
		return
	}
	s.Events = event.AppendCombine(s.Events, other.Events)

	if s.Pattern == "" {
		s.Pattern = other.Pattern
	} else if other.Pattern != "" && other.Pattern != s.Pattern {
		panic(fmt.Sprintf("sequence: combine mismatch: pattern %q != %q", s.Pattern, other.Pattern))
	}
}

// ensureCompiled lazily compiles Pattern, caching the result until the
// pattern string changes.
func (s *State) ensureCompiled() (*pattern.Compiled, error) {
	if s.compiled != nil && s.compiledFor == s.Pattern {
		return s.compiled, s.compiledErr
	}
	c, err := pattern.Compile(s.Pattern)
	s.compiled, s.compiledFor, s.compiledErr = c, s.Pattern, err
	return c, err
}

// FinalizeMatch implements sequence_match: sort, compile, dispatch via
// matcher.Execute (§4.7 mode 1). An empty pattern or events with no
// compiled pattern yields false, the defined neutral value (§7.4).
func (s *State) FinalizeMatch() (bool, error) {
	c, err := s.prepare()
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}
	return s.matcher.Execute(c, s.Events), nil
}

// FinalizeCount implements sequence_count: sort, compile, dispatch via
// matcher.Count (§4.7 mode 2).
func (s *State) FinalizeCount() (int64, error) {
	c, err := s.prepare()
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, nil
	}
	return s.matcher.Count(c, s.Events), nil
}

// FinalizeMatchEvents implements sequence_match_events: sort, compile,
// dispatch via matcher.MatchEvents (§4.7 mode 3). Returned timestamps
// are microseconds; mapping back to the host's timestamp type is the
// host boundary's job (§6).
func (s *State) FinalizeMatchEvents() ([]int64, error) {
	c, err := s.prepare()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return s.matcher.MatchEvents(c, s.Events), nil
}

// prepare runs the common sort-then-compile sequence shared by all three
// finalize entry points. A nil *pattern.Compiled with a nil error means
// the pattern is empty (§7.4 neutral-value case): callers treat that as
// "no match possible" without it being an error.
func (s *State) prepare() (*pattern.Compiled, error) {
	if s.Pattern == "" {
		return nil, nil
	}
	event.Sort(s.Events)
	c, err := s.ensureCompiled()
	if err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}
	return c, nil
}
