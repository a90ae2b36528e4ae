package rcpsp

import "fmt"

// PenaltyMultiplier scales every violated constraint unit so that an
// infeasible schedule always costs more than a feasible one.
const PenaltyMultiplier = 1_000_000

// Cost is the evaluation breakdown for one schedule. Penalty terms count
// violation magnitude, not violation events; they are additive and uncapped.
type Cost struct {
	Makespan   int
	Precedence int // total overlap of successors with their predecessors, in time units
	Resource   int // renewable capacity excess, summed over time units and resources
	Inventory  int // inventory shortfall, summed over time units and resources
}

func (c Cost) Penalty() int { return c.Precedence + c.Resource + c.Inventory }

func (c Cost) Feasible() bool { return c.Penalty() == 0 }

// Value folds the breakdown into the scalar an external search minimises.
func (c Cost) Value() float64 {
	return float64(c.Makespan) + PenaltyMultiplier*float64(c.Penalty())
}

type Evaluator struct {
	inst *Instance
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst}, nil
}

// Evaluate computes the makespan of a schedule and the magnitude of every
// constraint violation. It keeps no state between calls; one Evaluator may be
// shared across goroutines.
func (e *Evaluator) Evaluate(schedule []int) (Cost, error) {
	if e == nil || e.inst == nil {
		return Cost{}, fmt.Errorf("nil evaluator")
	}
	inst := e.inst
	if len(schedule) != inst.Tasks {
		return Cost{}, &ShapeError{Want: inst.Tasks, Got: len(schedule)}
	}

	var c Cost

	// Precedence: a successor may not start before its predecessor finishes.
	for i := 0; i < inst.Tasks; i++ {
		finish := schedule[i] + inst.Duration[i]
		for _, succ := range inst.Successors[i] {
			if schedule[succ] < finish {
				c.Precedence += finish - schedule[succ]
			}
		}
	}

	// Makespan of an empty instance is 0.
	for i := 0; i < inst.Tasks; i++ {
		if f := schedule[i] + inst.Duration[i]; f > c.Makespan {
			c.Makespan = f
		}
	}

	// Renewable capacity per integer time unit. A task is active at t when
	// start <= t < start+duration.
	for t := 0; t < c.Makespan; t++ {
		for r := 0; r < inst.Resources; r++ {
			usage := 0
			for i := 0; i < inst.Tasks; i++ {
				if schedule[i] <= t && t < schedule[i]+inst.Duration[i] {
					usage += inst.Weight[i][r]
				}
			}
			if usage > inst.Capacity[r] {
				c.Resource += usage - inst.Capacity[r]
			}
		}
	}

	// Inventory level at t: initial level, plus production of tasks already
	// finished (finish <= t), minus consumption of tasks already started
	// (start <= t). Both boundaries inclusive.
	for t := 0; t < c.Makespan; t++ {
		for r := 0; r < inst.Inventories; r++ {
			level := inst.InitLevel[r]
			for i := 0; i < inst.Tasks; i++ {
				if schedule[i]+inst.Duration[i] <= t {
					level += inst.EndProd[i][r]
				}
				if schedule[i] <= t {
					level -= inst.StartCons[i][r]
				}
			}
			if level < 0 {
				c.Inventory += -level
			}
		}
	}

	return c, nil
}

func (e *Evaluator) MustEvaluate(schedule []int) Cost {
	c, err := e.Evaluate(schedule)
	if err != nil {
		panic(err)
	}
	return c
}
