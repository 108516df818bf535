//go:build !behavioraldebug

package hostabi

// AssertCombineCompatible is a no-op in release builds; see
// assert_debug.go.
func AssertCombineCompatible(cond bool, format string, args ...any) {}
