//go:build behavioraldebug

package hostabi

import "fmt"

// AssertCombineCompatible enforces the combine-mismatch fail-fast policy
// (§7 error kind 5: "programmer error; fail fast in debug builds") for
// host-boundary-level configuration checks, such as arity agreement
// between two states a host is about to combine. It is a no-op unless
// built with -tags behavioraldebug; the individual state packages'
// own combine methods panic unconditionally since those checks guard an
// algorithmic invariant rather than a host-wiring mistake.
func AssertCombineCompatible(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
