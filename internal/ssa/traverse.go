package ssa

import "sassssa/internal/sir"

// Traverse returns fn's reachable blocks in breadth-first order from
// the entry block, visiting each block exactly once. Successor order
// within a block determines traversal order among equidistant blocks,
// and this order is preserved across runs (spec.md §4.1, §5).
func Traverse(fn *sir.Function) []*sir.BasicBlock {
	entry := fn.Entry()
	if entry == nil {
		return nil
	}

	visited := map[*sir.BasicBlock]bool{entry: true}
	queue := []*sir.BasicBlock{entry}
	var work []*sir.BasicBlock

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		work = append(work, curr)

		for _, succ := range curr.Succs {
			if !visited[succ] {
				visited[succ] = true
				queue = append(queue, succ)
			}
		}
	}

	return work
}
