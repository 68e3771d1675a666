// Package ssa implements the SSA construction pass: it rewrites a
// sir.Module in place so every non-special register is defined
// exactly once, inserting φ-functions at control-flow joins and
// compacting the renamed registers into a dense R1, R2, ... namespace
// (spec.md §§1-5).
package ssa

import "sassssa/internal/sir"

// Apply runs the SSA construction pass over every function of m,
// mutating operands, instruction content, and block instruction lists
// in place. This is spec.md §6's apply(module).
func Apply(m *sir.Module) {
	for _, fn := range m.Functions {
		ProcessFunction(fn)
	}
}

// ProcessFunction runs the pass on a single function: traversal,
// iterative dataflow, φ-node synthesis, and register compaction
// (spec.md §4).
func ProcessFunction(fn *sir.Function) {
	work := Traverse(fn)
	if len(work) == 0 {
		return
	}

	driver := NewDriver(work)
	driver.Run(fn.Entry(), work)

	SynthesizePhis(driver, work)
	Compact(work)
}
