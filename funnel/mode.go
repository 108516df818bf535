package funnel

import (
	"fmt"
	"strings"
)

// Mode is an 8-bit bitflag set composed of independent bits (§3.4).
type Mode uint8

// Canonical mode bits. STRICT and STRICT_DEDUPLICATION alias the same
// bit (§4.4 note): both tokens set bit 0x01 in the canonical form, so a
// mode string naming either (or both) behaves identically.
const (
	Strict              Mode = 0x01
	StrictOrder         Mode = 0x02
	StrictDeduplication Mode = 0x04 // alias of Strict; see ParseMode
	StrictIncrease      Mode = 0x08
	StrictOnce          Mode = 0x10
	AllowReentry        Mode = 0x20

	// StrictDeduplicationTS is an additive, non-aliased mode (§9 Open
	// Question, resolved in SPEC_FULL.md §C.2): timestamp-based dedup
	// ("skip the event if its timestamp equals the last matched
	// timestamp") without the Strict break rule. Strict applies the same
	// timestamp check as well; this bit, set by the
	// "strict_deduplication_ts" token, applies only that check and is
	// never implied by "strict" or "strict_deduplication".
	StrictDeduplicationTS Mode = 0x40
)

// Has reports whether bit is set in m.
func (m Mode) Has(bit Mode) bool {
	return m&bit != 0
}

var modeTokens = map[string]Mode{
	"strict":                  Strict,
	"strict_deduplication":    Strict, // canonical alias, §4.4
	"strict_order":            StrictOrder,
	"strict_increase":         StrictIncrease,
	"strict_once":             StrictOnce,
	"allow_reentry":           AllowReentry,
	"strict_deduplication_ts": StrictDeduplicationTS,
}

// ParseMode parses a comma-separated mode string (§3.4): whitespace
// around tokens is trimmed, empty tokens (from "a,,b" or a trailing
// comma) are silently skipped, and duplicate tokens are idempotent since
// OR-ing a bit into itself is a no-op. An unrecognized token is a parse
// error (§6.4).
func ParseMode(s string) (Mode, error) {
	var m Mode
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		bit, ok := modeTokens[strings.ToLower(tok)]
		if !ok {
			return 0, fmt.Errorf("funnel: unrecognized mode token %q", tok)
		}
		m |= bit
	}
	return m, nil
}
