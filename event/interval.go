package event

import (
	"fmt"

	"github.com/duckbehave/behavioral/internal/conv"
)

// Unit is a coarse time unit used when the host hands the core a
// human-authored interval (funnel window, sessionize threshold) instead
// of raw microseconds.
type Unit int

// Supported interval units. The host is expected to normalize finer or
// calendar-relative units (months, years) itself; this module only ever
// sees units it can convert to a fixed microsecond count.
const (
	Microseconds Unit = iota
	Seconds
	Minutes
	Hours
)

func (u Unit) secondsFactor() int64 {
	switch u {
	case Seconds:
		return 1
	case Minutes:
		return 60
	case Hours:
		return 3600
	default:
		return 0
	}
}

// MicrosFromInterval converts a (value, unit) interval to signed
// microseconds, the representation every state machine's window/
// threshold field is stored in internally (§4.3, §4.5). Overflow during
// the conversion is a boundary error (§6.4), never a panic.
func MicrosFromInterval(value int64, unit Unit) (int64, error) {
	if unit == Microseconds {
		return value, nil
	}
	factor := unit.secondsFactor()
	seconds := value * factor
	if factor != 0 && seconds/factor != value {
		return 0, fmt.Errorf("interval overflow converting %d units to seconds", value)
	}
	return conv.MicrosFromSeconds(seconds)
}
