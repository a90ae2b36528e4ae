package problem

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"rcpspInv/internal/rcpsp"
)

// Problem is the contract a host optimisation framework drives: repeated
// evaluation of candidate solutions plus unconstrained random seeds.
type Problem interface {
	EvaluateSolution(solution []int) (float64, error)
	RandomSolution() []int
	TaskCount() int
}

// Options configures instance loading.
type Options struct {
	// BaseDir resolves relative instance paths; "." when empty. Absolute
	// paths are used as-is.
	BaseDir string
	// Rng backs RandomSolution. Required.
	Rng *rand.Rand
}

// Scheduling adapts an RCPSP instance to the Problem contract.
type Scheduling struct {
	inst *rcpsp.Instance
	eval *rcpsp.Evaluator
	rng  *rand.Rand
}

var _ Problem = (*Scheduling)(nil)

// Load parses, validates and wraps an instance file. Unlike the raw parser,
// it refuses structurally broken instances and cyclic successor graphs.
func Load(path string, opts Options) (*Scheduling, error) {
	if opts.Rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	if !filepath.IsAbs(path) {
		base := opts.BaseDir
		if base == "" {
			base = "."
		}
		path = filepath.Join(base, path)
	}

	inst, err := rcpsp.Load(path)
	if err != nil {
		return nil, err
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("instance %s: %w", path, err)
	}
	if err := inst.ValidateAcyclic(); err != nil {
		return nil, fmt.Errorf("instance %s: %w", path, err)
	}
	eval, err := rcpsp.NewEvaluator(inst)
	if err != nil {
		return nil, err
	}
	return &Scheduling{inst: inst, eval: eval, rng: opts.Rng}, nil
}

func (p *Scheduling) Instance() *rcpsp.Instance { return p.inst }

func (p *Scheduling) TaskCount() int { return p.inst.Tasks }

// EvaluateSolution returns the makespan plus the scaled violation penalty.
func (p *Scheduling) EvaluateSolution(solution []int) (float64, error) {
	c, err := p.eval.Evaluate(solution)
	if err != nil {
		return 0, err
	}
	return c.Value(), nil
}

// Evaluate exposes the full cost breakdown for callers that need more than
// the scalar.
func (p *Scheduling) Evaluate(solution []int) (rcpsp.Cost, error) {
	return p.eval.Evaluate(solution)
}

func (p *Scheduling) RandomSolution() []int {
	return rcpsp.RandomSchedule(p.inst, p.rng)
}
