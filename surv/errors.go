package surv

import "fmt"

// ShapeMismatchError reports parallel sequences of unequal length.
type ShapeMismatchError struct {
	Op      string
	TimeLen int
	ProbLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: time and survival lengths differ (%d vs %d)", e.Op, e.TimeLen, e.ProbLen)
}

// EmptyInputError reports an empty input where a non-empty one is
// required.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Op)
}
