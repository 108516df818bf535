// Package retention implements the cohort-retention aggregate state
// machine (§3.5, §4.4): a bitmask of which declared conditions were ever
// true for the group, finalized into an anchor-gated boolean array.
package retention

import (
	"fmt"

	"github.com/duckbehave/behavioral/internal/conv"
)

// State is the per-aggregation-group retention state: a single bitmask
// plus the declared condition count (§3.5). There is no event vector —
// retention never needs timestamps or ordering, so it skips the
// sort-at-finalize machinery entirely.
type State struct {
	Seen uint32
	K    uint32
}

// New constructs a State declaring k conditions, 2 <= k <= 32.
func New(k uint32) *State {
	s := &State{}
	s.Configure(k)
	return s
}

// Configure sets K on a (possibly zero-valued) State.
func (s *State) Configure(k uint32) {
	s.K = k
}

// Update sets bit i of the seen mask when the corresponding predicate
// held for this row (§4.4). Conditions not supplied for a row are
// simply not passed; callers only call Update for predicates that were
// true.
func (s *State) Update(conditionIndex int) error {
	bit, err := conv.ConditionBit(conditionIndex)
	if err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	s.Seen |= 1 << bit
	return nil
}

// CombineInto folds other into s: seen masks OR together, K propagates
// from whichever side carries it (§4.2).
func (s *State) CombineInto(other *State) {
	if other == nil {
		return
	}
	s.Seen |= other.Seen
	if s.K == 0 {
		s.K = other.K
	} else if other.K != 0 && other.K != s.K {
		panic(fmt.Sprintf("retention: combine mismatch: k %d != %d", s.K, other.K))
	}
}

// Finalize produces an array of length K (§4.4). Element 0 is whether
// condition 0 (the anchor) ever held. For i > 0, element i is true only
// if BOTH the anchor held and condition i held — retention past the
// anchor step means nothing if the cohort was never established.
func (s *State) Finalize() []bool {
	out := make([]bool, s.K)
	if s.K == 0 {
		return out
	}
	anchor := s.Seen&1 != 0
	out[0] = anchor
	if !anchor {
		return out // all false, already zero-valued
	}
	for i := uint32(1); i < s.K; i++ {
		out[i] = s.Seen&(1<<i) != 0
	}
	return out
}
