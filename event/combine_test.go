package event

import "testing"

func TestAppendCombine(t *testing.T) {
	dst := []Event{{TimestampUs: 1}}
	src := []Event{{TimestampUs: 5}, {TimestampUs: 3}}
	got := AppendCombine(dst, src)
	want := []int64{1, 5, 3}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.TimestampUs != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, e.TimestampUs, want[i])
		}
	}
	// Empty-state identity: combining into a zero-value slice just
	// yields the other side's events untouched.
	var zero []Event
	got2 := AppendCombine(zero, src)
	if len(got2) != 2 {
		t.Fatalf("identity combine: len = %d, want 2", len(got2))
	}
}

func TestAppendCombineEmptySrc(t *testing.T) {
	dst := []Event{{TimestampUs: 1}}
	got := AppendCombine(dst, nil)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
}
