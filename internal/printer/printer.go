// Package printer renders a decoded sir.Function back to the textual
// "block <addr>:" / "OPCODE operand..." form internal/asmtext reads,
// using the same operand-rendering table as the SSA compactor
// (spec.md §4.5), so the CLI's before/after dump and round-trip tests
// (spec.md §8.8) see exactly the instruction content the core pass
// writes.
package printer

import (
	"fmt"
	"strings"

	"sassssa/internal/sir"
	"sassssa/internal/ssa"
)

// Printer accumulates a function's textual form, in the style of
// internal/ir.Printer's indent-and-builder pattern.
type Printer struct {
	indent int
	output strings.Builder
}

// New creates a Printer.
func New() *Printer {
	return &Printer{}
}

// Print renders fn's blocks and instructions.
func Print(fn *sir.Function) string {
	p := New()
	p.printFunction(fn)
	return p.output.String()
}

func (p *Printer) printFunction(fn *sir.Function) {
	for i, b := range fn.Blocks {
		if i > 0 {
			p.writeLine("")
		}
		p.writeLine("block %s:", b.Addr)
		p.indent++
		for _, inst := range b.Instructions {
			p.writeLine("%s", p.renderInstruction(inst))
		}
		p.indent--
	}
}

// renderInstruction reuses ssa.RenderInstruction so the printer can
// never drift from the core pass's own textual-regeneration rules.
func (p *Printer) renderInstruction(inst *sir.Instruction) string {
	return ssa.RenderInstruction(inst)
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}
