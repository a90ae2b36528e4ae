package rcpsp

import (
	"errors"
	"fmt"
)

// Instance is a project scheduling instance with renewable and inventory
// resources. It is read-only after construction; no method mutates it.
type Instance struct {
	Tasks       int
	Resources   int
	Inventories int

	// Capacity length must be Resources, InitLevel length must be Inventories.
	Capacity  []int
	InitLevel []int

	// Per-task data, each outer slice of length Tasks.
	Duration   []int
	Weight     [][]int // per-time-unit renewable usage, inner length Resources
	StartCons  [][]int // inventory consumed when the task starts, inner length Inventories
	EndProd    [][]int // inventory produced when the task finishes, inner length Inventories
	Successors [][]int // 0-indexed tasks that may not start before this one finishes

	// Horizon is the sum of all durations. It bounds random sampling and is
	// not a hard limit on schedules.
	Horizon int
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.Tasks < 0 || inst.Resources < 0 || inst.Inventories < 0 {
		return fmt.Errorf("counts must be >= 0 (got %d tasks, %d resources, %d inventories)",
			inst.Tasks, inst.Resources, inst.Inventories)
	}
	if len(inst.Capacity) != inst.Resources {
		return fmt.Errorf("capacity length must be %d (got %d)", inst.Resources, len(inst.Capacity))
	}
	if len(inst.InitLevel) != inst.Inventories {
		return fmt.Errorf("initLevel length must be %d (got %d)", inst.Inventories, len(inst.InitLevel))
	}
	if len(inst.Duration) != inst.Tasks {
		return fmt.Errorf("duration length must be %d (got %d)", inst.Tasks, len(inst.Duration))
	}
	if len(inst.Weight) != inst.Tasks || len(inst.StartCons) != inst.Tasks ||
		len(inst.EndProd) != inst.Tasks || len(inst.Successors) != inst.Tasks {
		return fmt.Errorf("per-task slices must have length %d", inst.Tasks)
	}
	for i := 0; i < inst.Tasks; i++ {
		if inst.Duration[i] < 0 {
			return fmt.Errorf("duration[%d] must be >= 0 (got %d)", i, inst.Duration[i])
		}
		if len(inst.Weight[i]) != inst.Resources {
			return fmt.Errorf("weight[%d] length must be %d (got %d)", i, inst.Resources, len(inst.Weight[i]))
		}
		if len(inst.StartCons[i]) != inst.Inventories {
			return fmt.Errorf("startCons[%d] length must be %d (got %d)", i, inst.Inventories, len(inst.StartCons[i]))
		}
		if len(inst.EndProd[i]) != inst.Inventories {
			return fmt.Errorf("endProd[%d] length must be %d (got %d)", i, inst.Inventories, len(inst.EndProd[i]))
		}
		for _, succ := range inst.Successors[i] {
			if succ < 0 || succ >= inst.Tasks {
				return fmt.Errorf("successor %d of task %d out of range [0,%d)", succ, i, inst.Tasks)
			}
		}
	}
	return nil
}
