package ssa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sassssa/internal/sir"
)

func TestTraverseBFSOrderFromEntry(t *testing.T) {
	b0 := block("B0")
	b1 := block("B1")
	b2 := block("B2")
	b3 := block("B3")
	link(b0, b1)
	link(b0, b2)
	link(b1, b3)
	link(b2, b3)

	f := fn(b0, b1, b2, b3)
	work := Traverse(f)

	require.Equal(t, []string{"B0", "B1", "B2", "B3"}, addrs(work))
}

func TestTraverseExcludesUnreachableBlocks(t *testing.T) {
	b0 := block("B0")
	b1 := block("B1")
	unreachable := block("B99")

	link(b0, b1)
	f := fn(b0, b1, unreachable)

	work := Traverse(f)
	require.Equal(t, []string{"B0", "B1"}, addrs(work))
}

func TestTraverseVisitsEachBlockOnce(t *testing.T) {
	// Loop: B0 -> B1, B1 -> {B1, B2}
	b0 := block("B0")
	b1 := block("B1")
	b2 := block("B2")
	link(b0, b1)
	link(b1, b1)
	link(b1, b2)

	f := fn(b0, b1, b2)
	work := Traverse(f)
	require.Equal(t, []string{"B0", "B1", "B2"}, addrs(work))
}

func TestTraverseEmptyFunction(t *testing.T) {
	f := &sir.Function{}
	require.Nil(t, Traverse(f))
}

func addrs(work []*sir.BasicBlock) []string {
	out := make([]string, len(work))
	for i, b := range work {
		out[i] = b.Addr
	}
	return out
}
