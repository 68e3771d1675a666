package ssa

import (
	"strings"

	"sassssa/internal/sir"
)

// versionSep separates a register's base name from its version suffix
// (spec.md §3: "base@<instruction-id>" or "base@phi_<block-addr>").
const versionSep = "@"

// baseOf strips any version suffix from a register identifier,
// recovering the original base name (spec.md §3).
func baseOf(reg string) string {
	if idx := strings.IndexByte(reg, '@'); idx >= 0 {
		return reg[:idx]
	}
	return reg
}

// versionedName mints the versioned name for an ordinary definition:
// base@<instruction-id> (spec.md §3, §4.2).
func versionedName(reg string, instID string) string {
	return baseOf(reg) + versionSep + instID
}

// phiVersionedName mints the versioned name for a φ-result:
// base@phi_<block-addr> (spec.md §3, §4.3).
func phiVersionedName(base, blockAddr string) string {
	return base + versionSep + "phi_" + blockAddr
}

// renameable reports whether op is a general-register operand subject
// to SSA renaming: not a predicate register and not the zero register
// (spec.md §4.2's edge cases, §3 invariant 4).
func renameable(inst *sir.Instruction, op *sir.Operand) bool {
	if op == nil || !op.IsReg() || op.Reg() == "" {
		return false
	}
	if op.IsZeroReg() || inst.IsPredicateReg(op.Reg()) {
		return false
	}
	return true
}

// RenameBlock walks b's instructions in program order, rewriting uses
// against curr (a copy of IN[b] on entry) and minting fresh versions
// at defs, per spec.md §4.2.
func RenameBlock(b *sir.BasicBlock, curr map[string]string) {
	for _, inst := range b.Instructions {
		updateUses(inst, curr)
		updateDef(inst, curr)
	}
}

// updateUses rewrites use operands, including the def operand when it
// is a memory-address "def-as-use" (spec.md §4.2 steps 1-2).
func updateUses(inst *sir.Instruction, curr map[string]string) {
	uses := inst.GetUses()

	if def := inst.GetDef(); def != nil && def.IsMemAddr() {
		uses = append(uses, def)
	}

	for _, op := range uses {
		if !renameable(inst, op) {
			continue
		}
		base := baseOf(op.Reg())
		if v, ok := curr[base]; ok {
			op.SetName(v)
			op.SetReg(v)
		}
	}
}

// updateDef rewrites the definition operand, minting a new version
// unless it is a memory-address operand (a use, not a def) or is
// otherwise excluded from renaming (spec.md §4.2 step 3).
func updateDef(inst *sir.Instruction, curr map[string]string) {
	def := inst.GetDef()
	if def == nil || !def.IsReg() {
		return
	}

	if def.IsMemAddr() {
		base := baseOf(def.Reg())
		if v, ok := curr[base]; ok {
			def.SetName(v)
			def.SetReg(v)
		}
		return
	}

	if !renameable(inst, def) {
		return
	}

	base := baseOf(def.Reg())
	v := versionedName(def.Reg(), inst.ID)
	curr[base] = v
	def.SetName(v)
	def.SetReg(v)
}
