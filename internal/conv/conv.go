// Package conv provides safe integer conversion and range-check helpers,
// used by the retention state's bit shift and by event.MicrosFromInterval.
//
// Narrowing conversions and bit-shift widths are a recurring source of
// silent overflow in bitmask-driven code; these helpers return an error
// instead of wrapping.
package conv

import (
	"fmt"
	"math"
)

// MaxConditions is the width of the condition bitmask (§3.1): bit i is
// valid for 0 <= i < MaxConditions.
const MaxConditions = 32

// ErrConditionIndexRange indicates a condition index fell outside
// [0, MaxConditions).
var ErrConditionIndexRange = fmt.Errorf("condition index out of range [0, %d)", MaxConditions)

// ConditionBit validates a 0-based condition index and returns it as a
// uint usable as a shift amount. A bare `1 << i` with i as a plain int is
// how §4.4's overflow class of bug creeps in once i approaches 31 on
// platforms where shift-count type inference goes wrong; routing every
// such shift through this helper keeps the guard in one place.
func ConditionBit(i int) (uint, error) {
	if i < 0 || i >= MaxConditions {
		return 0, fmt.Errorf("%w: got %d", ErrConditionIndexRange, i)
	}
	return uint(i), nil
}

// MicrosFromSeconds converts a whole-second interval to signed
// microseconds, returning an error on overflow rather than wrapping
// silently (§6.4: "intervals must be converted to signed microseconds;
// overflow is an error").
func MicrosFromSeconds(seconds int64) (int64, error) {
	const usPerSecond = int64(1_000_000)
	if seconds > math.MaxInt64/usPerSecond || seconds < math.MinInt64/usPerSecond {
		return 0, fmt.Errorf("interval overflow converting %d seconds to microseconds", seconds)
	}
	return seconds * usPerSecond, nil
}
