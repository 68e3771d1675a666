package sir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionGetDefAndUses(t *testing.T) {
	def := NewOperand("R1", "R1", "", 0, true, false, false, false, nil)
	u1 := NewOperand("R2", "R2", "", 0, true, false, false, false, nil)
	u2 := NewOperand("R3", "R3", "", 0, true, false, false, false, nil)

	inst := &Instruction{ID: "1", Opcodes: []string{"IADD"}, Operands: []*Operand{def, u1, u2}}

	require.Same(t, def, inst.GetDef())
	require.Equal(t, []*Operand{u1, u2}, inst.GetUses())
}

func TestInstructionGetDefNoOperands(t *testing.T) {
	inst := &Instruction{ID: "1", Opcodes: []string{"NOP"}}
	require.Nil(t, inst.GetDef())
	require.Empty(t, inst.GetUses())
}

func TestInstructionGetUsesReturnsACopy(t *testing.T) {
	def := NewOperand("R1", "R1", "", 0, true, false, false, false, nil)
	u1 := NewOperand("R2", "R2", "", 0, true, false, false, false, nil)
	inst := &Instruction{ID: "1", Opcodes: []string{"MOV"}, Operands: []*Operand{def, u1}}

	uses := inst.GetUses()
	uses = append(uses, NewOperand("R9", "R9", "", 0, true, false, false, false, nil))
	require.Len(t, inst.Operands, 2, "appending to GetUses must not mutate the instruction")
}

func TestIsPredicateReg(t *testing.T) {
	inst := &Instruction{ID: "1", Opcodes: []string{"ISETP"}}
	require.True(t, inst.IsPredicateReg("PT"))
	require.True(t, inst.IsPredicateReg("P0"))
	require.True(t, inst.IsPredicateReg("P6"))
	require.False(t, inst.IsPredicateReg("P7"))
	require.False(t, inst.IsPredicateReg("R1"))
	require.False(t, inst.IsPredicateReg("RZ"))
}

func TestOpcodeString(t *testing.T) {
	inst := &Instruction{Opcodes: []string{"STG", "E"}}
	require.Equal(t, "STG.E", inst.OpcodeString())
}

func TestIsPhi(t *testing.T) {
	phi := &Instruction{Opcodes: []string{"PHI"}}
	require.True(t, phi.IsPhi())

	notPhi := &Instruction{Opcodes: []string{"IADD"}}
	require.False(t, notPhi.IsPhi())
}
