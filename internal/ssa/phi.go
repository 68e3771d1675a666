package ssa

import (
	"fmt"
	"sort"
	"strings"

	"sassssa/internal/sir"
)

// SynthesizePhis materializes φ-instructions at the head of every
// block with a non-empty converged Φ set, after stripping any leading
// φ-instructions from a previous run (spec.md §4.4). work must be in
// the same order used throughout the pass (spec.md §5).
func SynthesizePhis(d *Driver, work []*sir.BasicBlock) {
	for _, b := range work {
		stripLeadingPhis(b)

		phis := d.Phi(b)
		if len(phis) == 0 {
			continue
		}

		bases := sortedBases(phis)
		var synthesized []*sir.Instruction
		for _, base := range bases {
			synthesized = append(synthesized, buildPhiInstruction(b, base, phis[base]))
		}
		b.Instructions = append(synthesized, b.Instructions...)
	}
}

// stripLeadingPhis removes any leading PHI instructions, making the
// pass idempotent across re-runs (spec.md §4.4 step 1, §5).
func stripLeadingPhis(b *sir.BasicBlock) {
	i := 0
	for i < len(b.Instructions) && b.Instructions[i].IsPhi() {
		i++
	}
	b.Instructions = b.Instructions[i:]
}

// sortedBases returns phis' base-register keys in a stable order so
// that re-synthesizing the same Φ set always produces φ-instructions
// in the same relative order (spec.md §4.4 step 3, §5).
func sortedBases(phis map[string]phiEntry) []string {
	bases := make([]string, 0, len(phis))
	for base := range phis {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}

// buildPhiInstruction creates one φ-instruction for base at b's head:
// a def operand named entry.version, followed by one use operand per
// incoming predecessor, ordered by that predecessor's index in
// b.Preds (spec.md §4.4 step 2).
func buildPhiInstruction(b *sir.BasicBlock, base string, entry phiEntry) *sir.Instruction {
	sorted := make([]incomingVersion, len(entry.incoming))
	copy(sorted, entry.incoming)
	sort.SliceStable(sorted, func(i, j int) bool {
		return b.PredIndex(sorted[i].pred) < b.PredIndex(sorted[j].pred)
	})

	def := sir.NewOperand(entry.version, entry.version, "NOTYPE", 0, true, false, false, false, nil)
	operands := []*sir.Operand{def}
	versions := make([]string, 0, len(sorted))
	for _, in := range sorted {
		operands = append(operands, sir.NewOperand(in.version, in.version, "NOTYPE", 0, true, false, false, false, nil))
		versions = append(versions, in.version)
	}

	return &sir.Instruction{
		ID:          fmt.Sprintf("phi_%s_%s", b.Addr, base),
		Opcodes:     []string{"PHI"},
		Operands:    operands,
		InstContent: fmt.Sprintf("PHI %s %s", entry.version, strings.Join(versions, " ")),
	}
}
