package asmtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStringStraightLine(t *testing.T) {
	src := `
block B0:
  IADD R1 R2 R3
  STG.E [R4] R1
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)

	fn := m.Functions[0]
	require.Len(t, fn.Blocks, 1)
	b0 := fn.Blocks[0]
	require.Equal(t, "B0", b0.Addr)
	require.Len(t, b0.Instructions, 2)

	iadd := b0.Instructions[0]
	require.Equal(t, []string{"IADD"}, iadd.Opcodes)
	require.Len(t, iadd.Operands, 3)
	require.Equal(t, "R1", iadd.Operands[0].Reg())

	stg := b0.Instructions[1]
	require.Equal(t, []string{"STG", "E"}, stg.Opcodes)
	require.True(t, stg.Operands[0].IsMemAddr())
	require.Equal(t, "R4", stg.Operands[0].Reg())
}

func TestParseStringMemAddrWithOffset(t *testing.T) {
	src := `
block B0:
  LDG.E R1 [R2+0x10]
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	op := m.Functions[0].Blocks[0].Instructions[0].Operands[1]
	require.True(t, op.IsMemAddr())
	require.Equal(t, "R2", op.Reg())
	require.Equal(t, "0x10", op.MemAddrOffset())
}

func TestParseStringArgumentSlot(t *testing.T) {
	src := `
block B0:
  MOV R1 c[0x0][0x20]
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	op := m.Functions[0].Blocks[0].Instructions[0].Operands[1]
	require.True(t, op.IsArg())
	require.Equal(t, 0x20, op.ArgOffset())
}

func TestParseStringFallthroughEdge(t *testing.T) {
	src := `
block B0:
  IADD R1 R2 R3
block B1:
  IADD R4 R1 R1
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	blocks := m.Functions[0].Blocks
	require.Len(t, blocks[0].Succs, 1)
	require.Equal(t, "B1", blocks[0].Succs[0].Addr)
	require.Len(t, blocks[1].Preds, 1)
	require.Equal(t, "B0", blocks[1].Preds[0].Addr)
}

func TestParseStringJMPEdge(t *testing.T) {
	src := `
block B0:
  JMP B2
block B1:
  IADD R1 R2 R3
block B2:
  IADD R4 R1 R1
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	blocks := m.Functions[0].Blocks
	require.Len(t, blocks[0].Succs, 1)
	require.Equal(t, "B2", blocks[0].Succs[0].Addr)
}

func TestParseStringBRATwoTargets(t *testing.T) {
	src := `
block B0:
  BRA.U P0 B1 B2
block B1:
  IADD R1 R2 R3
block B2:
  IADD R4 R2 R3
`
	m, err := ParseString("t.sass", src)
	require.NoError(t, err)
	succs := m.Functions[0].Blocks[0].Succs
	require.Len(t, succs, 2)
	require.Equal(t, "B1", succs[0].Addr)
	require.Equal(t, "B2", succs[1].Addr)
}

func TestParseStringUnresolvedBranchIsError(t *testing.T) {
	src := `
block B0:
  JMP B99
`
	_, err := ParseString("t.sass", src)
	require.Error(t, err)
}

func TestParseStringDuplicateBlockIsError(t *testing.T) {
	src := `
block B0:
  IADD R1 R2 R3
block B0:
  IADD R4 R2 R3
`
	_, err := ParseString("t.sass", src)
	require.Error(t, err)
}
