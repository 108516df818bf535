package funnel

import "testing"

func TestParseModeAlias(t *testing.T) {
	a, err := ParseMode("strict")
	if err != nil {
		t.Fatalf("ParseMode(strict): %v", err)
	}
	b, err := ParseMode("strict_deduplication")
	if err != nil {
		t.Fatalf("ParseMode(strict_deduplication): %v", err)
	}
	if a != Strict || b != Strict {
		t.Fatalf("alias mismatch: strict=%v strict_deduplication=%v", a, b)
	}
}

func TestParseModeWhitespaceAndEmptyTokens(t *testing.T) {
	m, err := ParseMode(" strict , , strict_order ,")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}
	want := Strict | StrictOrder
	if m != want {
		t.Fatalf("got %v, want %v", m, want)
	}
}

func TestParseModeDuplicatesIdempotent(t *testing.T) {
	m, err := ParseMode("strict,strict,strict")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}
	if m != Strict {
		t.Fatalf("got %v, want %v", m, Strict)
	}
}

func TestParseModeUnknownToken(t *testing.T) {
	if _, err := ParseMode("not_a_mode"); err == nil {
		t.Fatal("expected error for unknown token")
	}
}

func TestParseModeDistinctTimestampDedupBit(t *testing.T) {
	m, err := ParseMode("strict_deduplication_ts")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}
	if m != StrictDeduplicationTS {
		t.Fatalf("got %v, want %v", m, StrictDeduplicationTS)
	}
	if m.Has(Strict) {
		t.Fatal("strict_deduplication_ts must not imply the Strict alias bit")
	}
}

func TestParseModeEmptyString(t *testing.T) {
	m, err := ParseMode("")
	if err != nil {
		t.Fatalf("ParseMode(\"\"): %v", err)
	}
	if m != 0 {
		t.Fatalf("got %v, want 0", m)
	}
}
