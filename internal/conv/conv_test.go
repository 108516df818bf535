package conv

import (
	"errors"
	"math"
	"testing"
)

func TestConditionBitRange(t *testing.T) {
	if _, err := ConditionBit(0); err != nil {
		t.Fatalf("ConditionBit(0): %v", err)
	}
	if _, err := ConditionBit(31); err != nil {
		t.Fatalf("ConditionBit(31): %v", err)
	}
	if _, err := ConditionBit(32); !errors.Is(err, ErrConditionIndexRange) {
		t.Fatalf("ConditionBit(32) err = %v, want ErrConditionIndexRange", err)
	}
	if _, err := ConditionBit(-1); !errors.Is(err, ErrConditionIndexRange) {
		t.Fatalf("ConditionBit(-1) err = %v, want ErrConditionIndexRange", err)
	}
}

func TestMicrosFromSecondsOverflow(t *testing.T) {
	if _, err := MicrosFromSeconds(1); err != nil {
		t.Fatalf("MicrosFromSeconds(1): %v", err)
	}
	if _, err := MicrosFromSeconds(math.MaxInt64); err == nil {
		t.Fatal("expected overflow error for MaxInt64 seconds")
	}
}
