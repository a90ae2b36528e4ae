package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"rcpspInv/internal/logger"
	"rcpspInv/internal/problem"
)

// Case is one instance file to benchmark.
type Case struct {
	Name string
	Path string
	Seed int64
}

type Record struct {
	RunID string
	Case  string

	Tasks       int
	Resources   int
	Inventories int
	Samples     int
	Feasible    int

	CostBest float64
	CostMean float64
	CostStd  float64

	MakespanBest int
	MakespanMean float64
	MakespanStd  float64

	TimeMeanMs float64
	TimeStdMs  float64
}

type Runner struct {
	Samples int
	BaseDir string
	Log     logger.Logger
}

// RunCase draws Samples random schedules for one instance and aggregates
// cost, makespan, feasibility and evaluation-time statistics.
func (r Runner) RunCase(ctx context.Context, c Case) (Record, error) {
	log := r.Log
	if log == nil {
		log = logger.NopLogger{}
	}

	rng := randForSeed(c.Seed)
	prob, err := problem.Load(c.Path, problem.Options{BaseDir: r.BaseDir, Rng: rng})
	if err != nil {
		return Record{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	inst := prob.Instance()

	costs := make([]float64, 0, r.Samples)
	makespans := make([]float64, 0, r.Samples)
	timesMs := make([]float64, 0, r.Samples)
	feasible := 0

	for i := 0; i < r.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return Record{}, fmt.Errorf("case %s: sample %d: cancelled: %w", c.Name, i, err)
		}

		sched := prob.RandomSolution()
		start := time.Now()
		cost, err := prob.Evaluate(sched)
		dur := time.Since(start)
		if err != nil {
			return Record{}, fmt.Errorf("case %s: sample %d: evaluate: %w", c.Name, i, err)
		}

		if cost.Feasible() {
			feasible++
		}
		costs = append(costs, cost.Value())
		makespans = append(makespans, float64(cost.Makespan))
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	costStats := Calc(costs)
	msStats := Calc(makespans)
	tStats := Calc(timesMs)

	rec := Record{
		RunID: uuid.NewString(),
		Case:  c.Name,

		Tasks:       inst.Tasks,
		Resources:   inst.Resources,
		Inventories: inst.Inventories,
		Samples:     r.Samples,
		Feasible:    feasible,

		CostBest: costStats.Best,
		CostMean: costStats.Mean,
		CostStd:  costStats.Std,

		MakespanBest: int(msStats.Best),
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,

		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,
	}

	log.Infow("case finished", map[string]any{
		"run_id":    rec.RunID,
		"case":      rec.Case,
		"samples":   rec.Samples,
		"feasible":  rec.Feasible,
		"cost_best": rec.CostBest,
	})
	return rec, nil
}

func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"run_id", "case", "tasks", "resources", "inventories", "samples", "feasible",
		"cost_best", "cost_mean", "cost_std",
		"makespan_best", "makespan_mean", "makespan_std",
		"time_mean_ms", "time_std_ms",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.RunID,
			r.Case,
			itoa(r.Tasks),
			itoa(r.Resources),
			itoa(r.Inventories),
			itoa(r.Samples),
			itoa(r.Feasible),

			ftoa(r.CostBest),
			ftoa(r.CostMean),
			ftoa(r.CostStd),

			itoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),

			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
