package nextnode

import "fmt"

// Direction controls traversal order in Finalize (§4.9).
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// ParseDirection parses the direction-string argument (§3.2).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return 0, fmt.Errorf("nextnode: unrecognized direction %q", s)
	}
}

// Base selects which candidate match Finalize reports among the
// starting positions satisfying base_condition && condition(0) (§4.9).
type Base uint8

const (
	Head Base = iota
	Tail
	FirstMatch
	LastMatch
)

// ParseBase parses the base-string argument (§3.2).
func ParseBase(s string) (Base, error) {
	switch s {
	case "head":
		return Head, nil
	case "tail":
		return Tail, nil
	case "first_match":
		return FirstMatch, nil
	case "last_match":
		return LastMatch, nil
	default:
		return 0, fmt.Errorf("nextnode: unrecognized base %q", s)
	}
}
