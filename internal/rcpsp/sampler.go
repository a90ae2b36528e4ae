package rcpsp

import "math/rand"

// RandomSchedule draws an unconstrained schedule: one uniform start time in
// [0, Horizon] per task. It seeds external search and makes no attempt at
// feasibility.
func RandomSchedule(inst *Instance, rng *rand.Rand) []int {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	s := make([]int, inst.Tasks)
	for i := range s {
		s[i] = rng.Intn(inst.Horizon + 1)
	}
	return s
}
