package sir

import (
	"regexp"
	"strings"
)

var predicateRegPattern = regexp.MustCompile(`^P[0-6]$`)

// Instruction is a single decoded instruction: opcodes (mnemonic plus
// dot-joined modifiers), an ordered operand list, and a textual mirror
// that must be regenerated whenever operands mutate (spec.md §3).
type Instruction struct {
	ID          string
	Opcodes     []string
	Operands    []*Operand
	InstContent string
}

// GetDef returns the instruction's single definition operand: by
// convention the first operand, if any exist.
func (i *Instruction) GetDef() *Operand {
	if len(i.Operands) == 0 {
		return nil
	}
	return i.Operands[0]
}

// GetUses returns the operands read by this instruction: every
// operand after the def, in order. The caller may append to the
// returned slice (the SSA renamer does, for memory-address "defs");
// a copy is returned so that append cannot clobber i.Operands.
func (i *Instruction) GetUses() []*Operand {
	if len(i.Operands) <= 1 {
		return []*Operand{}
	}
	uses := make([]*Operand, len(i.Operands)-1)
	copy(uses, i.Operands[1:])
	return uses
}

// IsPredicateReg reports whether name identifies a predicate register
// (P0-P6 or PT) for this instruction. Predicate registers follow a
// separate renaming discipline and are never touched by the SSA pass
// (spec.md §4.2, §8.3).
func (i *Instruction) IsPredicateReg(name string) bool {
	return name == "PT" || predicateRegPattern.MatchString(name)
}

// OpcodeString returns the dot-joined opcode/modifier mnemonic, e.g.
// "STG.E" for opcodes []string{"STG", "E"}.
func (i *Instruction) OpcodeString() string {
	return strings.Join(i.Opcodes, ".")
}

// IsPhi reports whether this is a synthesized φ-instruction (spec.md
// §4.4: opcode list equal to ["PHI"]).
func (i *Instruction) IsPhi() bool {
	return len(i.Opcodes) == 1 && i.Opcodes[0] == "PHI"
}
