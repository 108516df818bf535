package matcher

import (
	"testing"
	"time"

	"github.com/duckbehave/behavioral/event"
	"github.com/duckbehave/behavioral/pattern"
)

func compile(t *testing.T, src string) *pattern.Compiled {
	t.Helper()
	c, err := pattern.Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return c
}

// §8.3 scenario 4: sequence-match pattern (?1).*(?2).
func TestExecuteWildcardScenario(t *testing.T) {
	c := compile(t, "(?1).*(?2)")
	m := &Matcher{}

	match := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: int64(5 * time.Minute / time.Microsecond), Conditions: 0},
		{TimestampUs: int64(10 * time.Minute / time.Microsecond), Conditions: 0b10},
	}
	if !m.Execute(c, match) {
		t.Fatal("expected match")
	}

	noMatch := []event.Event{
		{TimestampUs: 0, Conditions: 0},
	}
	if m.Execute(c, noMatch) {
		t.Fatal("expected no match on all-empty events")
	}
}

// §8.3 scenario 5: sequence-count pattern (?1).*(?2), non-overlapping.
func TestCountWildcardScenario(t *testing.T) {
	c := compile(t, "(?1).*(?2)")
	m := &Matcher{}
	events := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 1, Conditions: 0b10},
		{TimestampUs: 2, Conditions: 0b1},
		{TimestampUs: 3, Conditions: 0b10},
	}
	if got := m.Count(c, events); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
}

// §8.2: AdjacentConditions advances by one on intermediate failure.
func TestAdjacentAdvancesByOne(t *testing.T) {
	c := compile(t, "(?1)(?2)")
	m := &Matcher{}
	events := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 1, Conditions: 0b1},
		{TimestampUs: 2, Conditions: 0b10},
	}
	ts, _, ok := adjacentFirstMatch(c.Steps, events)
	if !ok {
		t.Fatal("expected match starting at index 1")
	}
	if ts[0] != 1 || ts[1] != 2 {
		t.Fatalf("matched timestamps = %v, want [1 2]", ts)
	}
	_ = m
}

func TestAdjacentCountNonOverlapping(t *testing.T) {
	c := compile(t, "(?1)(?2)")
	m := &Matcher{}
	events := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 1, Conditions: 0b10},
		{TimestampUs: 2, Conditions: 0b1},
		{TimestampUs: 3, Conditions: 0b10},
	}
	if got := m.Count(c, events); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
}

func TestMatchEventsReturnsConditionTimestamps(t *testing.T) {
	c := compile(t, "(?1).*(?2)")
	m := &Matcher{}
	events := []event.Event{
		{TimestampUs: 100, Conditions: 0b1},
		{TimestampUs: 150, Conditions: 0},
		{TimestampUs: 200, Conditions: 0b10},
	}
	ts := m.MatchEvents(c, events)
	if len(ts) != 2 || ts[0] != 100 || ts[1] != 200 {
		t.Fatalf("MatchEvents = %v, want [100 200]", ts)
	}
}

// Complex shape: OneEvent step and TimeConstraint step.
func TestComplexOneEvent(t *testing.T) {
	c := compile(t, "(?1).(?2)")
	m := &Matcher{}
	events := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 1, Conditions: 0}, // the single "any" event
		{TimestampUs: 2, Conditions: 0b10},
	}
	if !m.Execute(c, events) {
		t.Fatal("expected match via OneEvent step")
	}
	// No event available for the OneEvent slot.
	short := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 1, Conditions: 0b10},
	}
	if m.Execute(c, short) {
		t.Fatal("expected no match: OneEvent requires an intervening event")
	}
}

func TestComplexTimeConstraint(t *testing.T) {
	c := compile(t, "(?1)(?t<=60)(?2)")
	m := &Matcher{}
	within := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 30_000_000, Conditions: 0b10},
	}
	if !m.Execute(c, within) {
		t.Fatal("expected match within time constraint")
	}
	outside := []event.Event{
		{TimestampUs: 0, Conditions: 0b1},
		{TimestampUs: 120_000_000, Conditions: 0b10},
	}
	if m.Execute(c, outside) {
		t.Fatal("expected no match: gap exceeds time constraint")
	}
}

func TestComplexTimeConstraintVacuousWhenNoPriorMatch(t *testing.T) {
	// A time constraint before any Condition has matched is vacuously
	// true (§4.7).
	c := compile(t, "(?t<=5)(?1)")
	m := &Matcher{}
	events := []event.Event{{TimestampUs: 0, Conditions: 0b1}}
	if !m.Execute(c, events) {
		t.Fatal("expected vacuous time constraint to pass")
	}
}

// §8.2: NFA over (?1).*(?2).*(?3) (which classifies WildcardSeparated)
// on a large random event stream must terminate quickly — O(n), not
// O(n^2).
func TestWildcardStressTermination(t *testing.T) {
	const n = 1_000_000
	events := make([]event.Event, n)
	seed := uint64(88172645463325252)
	nextRand := func() uint64 {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return seed
	}
	for i := range events {
		events[i] = event.Event{
			TimestampUs: int64(i),
			Conditions:  uint32(nextRand() % 8),
		}
	}
	c := compile(t, "(?1).*(?2).*(?3)")
	m := &Matcher{}

	done := make(chan struct{})
	go func() {
		m.Execute(c, events)
		m.Count(c, events)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stress test did not terminate within budget")
	}
}
