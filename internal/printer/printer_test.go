package printer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sassssa/internal/sir"
)

func TestPrintRendersBlocksAndInstructions(t *testing.T) {
	inst := &sir.Instruction{
		ID:      "1",
		Opcodes: []string{"IADD"},
		Operands: []*sir.Operand{
			sir.NewOperand("R1", "R1", "NOTYPE", 0, true, false, false, false, nil),
			sir.NewOperand("R2", "R2", "NOTYPE", 0, true, false, false, false, nil),
			sir.NewOperand("R3", "R3", "NOTYPE", 0, true, false, false, false, nil),
		},
	}
	fn := &sir.Function{Name: "f", Blocks: []*sir.BasicBlock{
		{Addr: "B0", Instructions: []*sir.Instruction{inst}},
	}}

	out := Print(fn)
	require.Contains(t, out, "block B0:")
	require.Contains(t, out, "IADD R1 R2 R3")
}

func TestPrintMultipleBlocksSeparatedByBlankLine(t *testing.T) {
	fn := &sir.Function{Name: "f", Blocks: []*sir.BasicBlock{
		{Addr: "B0"},
		{Addr: "B1"},
	}}

	out := Print(fn)
	require.Equal(t, "block B0:\n\nblock B1:\n", out)
}
