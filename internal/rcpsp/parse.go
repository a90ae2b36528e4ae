package rcpsp

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads an instance file in the Patterson format extended with
// inventory resources.
//
// Layout:
//
//	line 1: tasks resources inventories
//	line 2: capacity per renewable resource, then initial level per inventory resource
//	line 3..2+tasks, one per task:
//	    duration, usage per renewable resource,
//	    consumption/production interleaved per inventory resource,
//	    successor count, successor IDs (1-indexed in the file)
//
// Load only decodes; it performs no cross-validation of the decoded data.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Instance, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, parsef(0, "expected at least 2 lines (got %d)", len(lines))
	}

	head := tokensOf(lines[0], 1)
	tasks, err := head.intAt(0)
	if err != nil {
		return nil, err
	}
	resources, err := head.intAt(1)
	if err != nil {
		return nil, err
	}
	inventories, err := head.intAt(2)
	if err != nil {
		return nil, err
	}
	if tasks < 0 || resources < 0 || inventories < 0 {
		return nil, parsef(1, "counts must be >= 0 (got %d %d %d)", tasks, resources, inventories)
	}
	if len(lines) < tasks+2 {
		return nil, parsef(0, "expected %d lines for %d tasks (got %d)", tasks+2, tasks, len(lines))
	}

	inst := &Instance{
		Tasks:       tasks,
		Resources:   resources,
		Inventories: inventories,
		Capacity:    make([]int, resources),
		InitLevel:   make([]int, inventories),
		Duration:    make([]int, tasks),
		Weight:      make([][]int, tasks),
		StartCons:   make([][]int, tasks),
		EndProd:     make([][]int, tasks),
		Successors:  make([][]int, tasks),
	}

	caps := tokensOf(lines[1], 2)
	for r := 0; r < resources; r++ {
		if inst.Capacity[r], err = caps.intAt(r); err != nil {
			return nil, err
		}
	}
	for r := 0; r < inventories; r++ {
		if inst.InitLevel[r], err = caps.intAt(resources + r); err != nil {
			return nil, err
		}
	}

	for i := 0; i < tasks; i++ {
		row := tokensOf(lines[i+2], i+3)

		if inst.Duration[i], err = row.intAt(0); err != nil {
			return nil, err
		}
		inst.Weight[i] = make([]int, resources)
		for r := 0; r < resources; r++ {
			if inst.Weight[i][r], err = row.intAt(1 + r); err != nil {
				return nil, err
			}
		}
		// Consumption and production are interleaved pairwise per inventory
		// resource, not grouped.
		inst.StartCons[i] = make([]int, inventories)
		inst.EndProd[i] = make([]int, inventories)
		for r := 0; r < inventories; r++ {
			if inst.StartCons[i][r], err = row.intAt(1 + resources + 2*r); err != nil {
				return nil, err
			}
			if inst.EndProd[i][r], err = row.intAt(2 + resources + 2*r); err != nil {
				return nil, err
			}
		}

		idx := 1 + resources + 2*inventories
		nSucc, err := row.intAt(idx)
		if err != nil {
			return nil, err
		}
		if nSucc < 0 {
			return nil, parsef(row.line, "successor count must be >= 0 (got %d)", nSucc)
		}
		inst.Successors[i] = make([]int, nSucc)
		for s := 0; s < nSucc; s++ {
			// 1-indexed in the file.
			id, err := row.intAt(idx + 1 + s)
			if err != nil {
				return nil, err
			}
			inst.Successors[i][s] = id - 1
		}
	}

	for _, d := range inst.Duration {
		inst.Horizon += d
	}
	return inst, nil
}

type tokenLine struct {
	line int
	toks []string
}

func tokensOf(s string, line int) tokenLine {
	return tokenLine{line: line, toks: strings.Fields(s)}
}

func (tl tokenLine) intAt(pos int) (int, error) {
	if pos >= len(tl.toks) {
		return 0, parsef(tl.line, "expected at least %d tokens (got %d)", pos+1, len(tl.toks))
	}
	v, err := strconv.Atoi(tl.toks[pos])
	if err != nil {
		return 0, parsef(tl.line, "token %d: %q is not an integer", pos+1, tl.toks[pos])
	}
	return v, nil
}
