package ssa

import (
	"fmt"
	"strconv"
	"strings"

	"sassssa/internal/sir"
)

// excludedFromCompaction reports whether op's register identifier
// should never be remapped by the compactor: predicate registers,
// RZ, and PT (spec.md §4.5).
func excludedFromCompaction(inst *sir.Instruction, op *sir.Operand) bool {
	if !op.IsReg() || op.Reg() == "" {
		return true
	}
	if op.IsPT() || op.IsZeroReg() || inst.IsPredicateReg(op.Reg()) {
		return true
	}
	return false
}

// Compact rewrites every versioned general-register name used across
// work into a dense R{n} identifier, then regenerates each
// instruction's textual content (spec.md §4.5).
func Compact(work []*sir.BasicBlock) {
	mapping := collectMapping(work)
	applyMapping(work, mapping)
	regenerateContent(work)
}

// collectMapping performs the "Collect" pass of spec.md §4.5: a
// versioned-name-to-R{n} mapping assigned in work-list/instruction
// order, starting at R1.
func collectMapping(work []*sir.BasicBlock) map[string]string {
	mapping := map[string]string{}
	counter := 1
	for _, b := range work {
		for _, inst := range b.Instructions {
			for _, op := range inst.Operands {
				if excludedFromCompaction(inst, op) {
					continue
				}
				if _, ok := mapping[op.Reg()]; !ok {
					mapping[op.Reg()] = fmt.Sprintf("R%d", counter)
					counter++
				}
			}
		}
	}
	return mapping
}

// applyMapping performs the "Apply" pass of spec.md §4.5: overwrite
// every mapped operand's name and register identifier.
func applyMapping(work []*sir.BasicBlock, mapping map[string]string) {
	for _, b := range work {
		for _, inst := range b.Instructions {
			for _, op := range inst.Operands {
				if !op.IsReg() || op.Reg() == "" {
					continue
				}
				if op.IsPT() || op.IsZeroReg() || inst.IsPredicateReg(op.Reg()) {
					continue
				}
				if mapped, ok := mapping[op.Reg()]; ok {
					op.SetName(mapped)
					op.SetReg(mapped)
				}
			}
		}
	}
}

// regenerateContent rewrites every instruction's InstContent using
// the operand rendering table of spec.md §4.5.
func regenerateContent(work []*sir.BasicBlock) {
	for _, b := range work {
		for _, inst := range b.Instructions {
			inst.InstContent = RenderInstruction(inst)
		}
	}
}

// RenderInstruction renders inst's opcodes and operands using the
// textual format of spec.md §4.5. It is exported so the printer and
// decoder collaborators (out of the SSA core's scope) can reuse the
// same rendering rules without duplicating them.
func RenderInstruction(inst *sir.Instruction) string {
	parts := make([]string, 0, len(inst.Operands))
	for _, op := range inst.Operands {
		parts = append(parts, RenderOperand(op))
	}
	return inst.OpcodeString() + " " + strings.Join(parts, " ")
}

// RenderOperand renders a single operand per the table in spec.md §4.5.
func RenderOperand(op *sir.Operand) string {
	switch {
	case op.IsMemAddr():
		if op.MemAddrOffset() != "" {
			return "[" + op.Reg() + "+" + op.MemAddrOffset() + "]"
		}
		return "[" + op.Reg() + "]"
	case op.IsReg():
		return op.Reg()
	case op.IsArg():
		return "c[0x0][0x" + strconv.FormatInt(int64(op.ArgOffset()), 16) + "]"
	case op.IsSpecialReg():
		return op.Name()
	default:
		if op.Name() != "" {
			return op.Name()
		}
		return "<??>"
	}
}
