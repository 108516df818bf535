package event

import "testing"

func TestSortAlreadySorted(t *testing.T) {
	events := []Event{{TimestampUs: 1}, {TimestampUs: 2}, {TimestampUs: 3}}
	if !isSorted(events) {
		t.Fatal("expected isSorted to detect already-sorted input")
	}
	Sort(events)
	for i, e := range events {
		if e.TimestampUs != int64(i+1) {
			t.Fatalf("sorted output mismatch at %d: %+v", i, e)
		}
	}
}

func TestSortUnordered(t *testing.T) {
	events := []Event{{TimestampUs: 5}, {TimestampUs: 1}, {TimestampUs: 3}, {TimestampUs: 1}}
	if isSorted(events) {
		t.Fatal("expected isSorted to report false on unordered input")
	}
	Sort(events)
	want := []int64{1, 1, 3, 5}
	for i, e := range events {
		if e.TimestampUs != want[i] {
			t.Fatalf("sorted output mismatch at %d: got %d want %d", i, e.TimestampUs, want[i])
		}
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	Sort(nil)
	single := []Event{{TimestampUs: 42}}
	Sort(single)
	if single[0].TimestampUs != 42 {
		t.Fatal("single-element sort mutated value")
	}
}
