package rcpsp

import "fmt"

// ValidateSchedule checks that a schedule carries one non-negative start time
// per task. Feasibility is judged by the evaluator, never here.
func ValidateSchedule(schedule []int, n int) error {
	if len(schedule) != n {
		return &ShapeError{Want: n, Got: len(schedule)}
	}
	for i, s := range schedule {
		if s < 0 {
			return fmt.Errorf("schedule[%d]=%d must be >= 0", i, s)
		}
	}
	return nil
}
