package rcpsp

import "container/heap"

// ValidateAcyclic proves the successor graph has no cycles using Kahn's
// algorithm. The evaluator itself tolerates cycles (the precedence penalty is
// well-defined per edge), but a cyclic instance admits no consistent
// execution order, so loaders reject it before a solving session starts.
//
// If a cycle exists, one deterministic witness path is reported.
func (inst *Instance) ValidateAcyclic() error {
	if len(inst.topoOrder()) == inst.Tasks {
		return nil
	}
	return cycleError(inst.findCycle())
}

// topoOrder returns a deterministic topological ordering of task indices.
// The ready queue is a min-heap by task index.
func (inst *Instance) topoOrder() []int {
	indeg := make([]int, inst.Tasks)
	for i := 0; i < inst.Tasks; i++ {
		for _, succ := range inst.Successors[i] {
			indeg[succ]++
		}
	}

	ready := &intMinHeap{}
	heap.Init(ready)
	for i := range indeg {
		if indeg[i] == 0 {
			heap.Push(ready, i)
		}
	}

	out := make([]int, 0, inst.Tasks)
	for ready.Len() > 0 {
		n := heap.Pop(ready).(int)
		out = append(out, n)
		for _, m := range inst.Successors[n] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}
	return out
}

// findCycle runs a DFS over ascending task indices and extracts one cycle
// path. It returns a single stable witness, not every cycle.
func (inst *Instance) findCycle() []int {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, inst.Tasks)
	parent := make([]int, inst.Tasks)
	for i := range parent {
		parent[i] = -1
	}

	var cycle []int
	var visit func(u int) bool
	visit = func(u int) bool {
		color[u] = gray
		for _, v := range inst.Successors[u] {
			switch color[v] {
			case white:
				parent[v] = u
				if visit(v) {
					return true
				}
			case gray:
				// Walk parents back from u to v to recover the path.
				cycle = []int{v}
				for w := u; w != v && w != -1; w = parent[w] {
					cycle = append(cycle, w)
				}
				for i, j := 1, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				cycle = append(cycle, v)
				return true
			}
		}
		color[u] = black
		return false
	}

	for i := 0; i < inst.Tasks; i++ {
		if color[i] == white && visit(i) {
			break
		}
	}
	return cycle
}

type intMinHeap []int

func (h intMinHeap) Len() int           { return len(h) }
func (h intMinHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intMinHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intMinHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
