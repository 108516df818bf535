package event

import "testing"

func TestMicrosFromInterval(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		unit  Unit
		want  int64
	}{
		{"microseconds passthrough", 500, Microseconds, 500},
		{"seconds", 2, Seconds, 2_000_000},
		{"minutes", 30, Minutes, 30 * 60 * 1_000_000},
		{"hours", 1, Hours, 3600 * 1_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MicrosFromInterval(tt.value, tt.unit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMicrosFromIntervalOverflow(t *testing.T) {
	_, err := MicrosFromInterval(1<<62, Hours)
	if err == nil {
		t.Fatal("expected overflow error")
	}
}
