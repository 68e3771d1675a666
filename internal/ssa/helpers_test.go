package ssa

import "sassssa/internal/sir"

// reg builds a general-register operand.
func reg(name string) *sir.Operand {
	return sir.NewOperand(name, name, "NOTYPE", 0, true, false, false, false, nil)
}

// memAddr builds a memory-address operand (register used to compute
// an address).
func memAddr(name string) *sir.Operand {
	return sir.NewOperand(name, name, "NOTYPE", 0, true, false, true, false, nil)
}

// pred builds a predicate-register operand.
func pred(name string) *sir.Operand {
	return sir.NewOperand(name, name, "NOTYPE", 0, true, false, false, false, nil)
}

// inst builds an instruction with id, opcode, and operands (def first).
func inst(id, opcode string, operands ...*sir.Operand) *sir.Instruction {
	return &sir.Instruction{ID: id, Opcodes: []string{opcode}, Operands: operands}
}

// block builds a basic block at addr with the given instructions.
func block(addr string, instructions ...*sir.Instruction) *sir.BasicBlock {
	return &sir.BasicBlock{Addr: addr, Instructions: instructions}
}

// link wires pred -> succ (appends to both edge lists, preserving
// call order as the edge order).
func link(from, to *sir.BasicBlock) {
	from.Succs = append(from.Succs, to)
	to.Preds = append(to.Preds, from)
}

func fn(blocks ...*sir.BasicBlock) *sir.Function {
	return &sir.Function{Name: "f", Blocks: blocks}
}

// regNames returns the set of distinct non-excluded general-register
// identifiers appearing anywhere in work, for checking dense
// compaction (spec.md §8.4).
func regNames(work []*sir.BasicBlock) map[string]bool {
	names := map[string]bool{}
	for _, b := range work {
		for _, in := range b.Instructions {
			for _, op := range in.Operands {
				if excludedFromCompaction(in, op) {
					continue
				}
				names[op.Reg()] = true
			}
		}
	}
	return names
}
