package asmtext

import (
	"regexp"
	"strconv"
	"strings"

	"sassssa/internal/asmerr"
	"sassssa/internal/sir"
)

// Opcodes that transfer control, and the pattern a bare operand must
// match to be treated as one of their branch-target labels rather than
// an ordinary operand (e.g. BRA's leading predicate register is not a
// label). spec.md §3 keeps label-vs-register disambiguation out of the
// core's own scope; this decoder resolves it before sir ever sees it.
const (
	opJMP = "JMP"
	opBRA = "BRA"
)

var addrPattern = regexp.MustCompile(`^B[0-9]+$`)

// build walks the parsed program into a sir.Module: one instruction
// decode pass per block, then a label-resolution pass that fills
// Succs/fallthrough edges and a final pass that derives Preds from
// Succs (spec.md §3: "Preds/succs are ordered; this order is
// load-bearing").
func build(prog *program) (*sir.Module, error) {
	blocks := make([]*sir.BasicBlock, 0, len(prog.Blocks))
	byAddr := make(map[string]*sir.BasicBlock, len(prog.Blocks))
	targets := make(map[*sir.BasicBlock][]string)

	counter := 0
	for _, pb := range prog.Blocks {
		if _, dup := byAddr[pb.Addr]; dup {
			return nil, asmerr.Diagnostic{
				Level:   asmerr.Error,
				Code:    asmerr.CodeDuplicateBlock,
				Message: "duplicate block address " + pb.Addr,
			}
		}

		b := &sir.BasicBlock{Addr: pb.Addr}
		var labels []string
		for _, pinst := range pb.Instructions {
			counter++
			inst, instLabels, err := buildInstruction(strconv.Itoa(counter), pinst)
			if err != nil {
				return nil, err
			}
			b.Instructions = append(b.Instructions, inst)
			if len(instLabels) > 0 {
				labels = instLabels
			}
		}

		blocks = append(blocks, b)
		byAddr[pb.Addr] = b
		targets[b] = labels
	}

	if err := resolveSuccessors(blocks, byAddr, targets); err != nil {
		return nil, err
	}
	fillPredecessors(blocks)

	fn := &sir.Function{Name: "main", Blocks: blocks}
	return &sir.Module{Functions: []*sir.Function{fn}}, nil
}

// buildInstruction decodes one instruction. It returns any branch-target
// label strings found (JMP/BRA operands), which resolveSuccessors turns
// into CFG edges rather than sir.Operand register entries.
func buildInstruction(id string, pinst *instruction) (*sir.Instruction, []string, error) {
	inst := &sir.Instruction{ID: id, Opcodes: pinst.Opcodes}
	isTerminator := len(pinst.Opcodes) > 0 && (pinst.Opcodes[0] == opJMP || pinst.Opcodes[0] == opBRA)

	var labels []string
	for _, pop := range pinst.Operands {
		if isTerminator && pop.Bare != nil && pop.Bare.Immediate == nil {
			name := strings.Join(pop.Bare.NameParts, ".")
			if addrPattern.MatchString(name) {
				labels = append(labels, name)
				continue
			}
		}

		op, err := buildOperand(pop)
		if err != nil {
			return nil, nil, err
		}
		inst.Operands = append(inst.Operands, op)
	}

	return inst, labels, nil
}

func buildOperand(pop *operand) (*sir.Operand, error) {
	switch {
	case pop.MemAddr != nil:
		reg := pop.MemAddr.Reg
		if pop.MemAddr.Offset != nil {
			reg += "+" + *pop.MemAddr.Offset
		}
		return sir.NewOperand(reg, reg, "NOTYPE", 0, true, false, true, false, nil), nil

	case pop.Arg != nil:
		offset, err := strconv.ParseInt(pop.Arg.Offset, 0, 64)
		if err != nil {
			return nil, asmerr.Diagnostic{Level: asmerr.Error, Code: asmerr.CodeInvalidOperand, Message: "bad argument offset " + pop.Arg.Offset}
		}
		return sir.NewOperand("c[0x0][0x"+pop.Arg.Offset+"]", "", "NOTYPE", int(offset), false, true, false, false, nil), nil

	case pop.Bare != nil && pop.Bare.Immediate != nil:
		text := *pop.Bare.Immediate
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, asmerr.Diagnostic{Level: asmerr.Error, Code: asmerr.CodeInvalidOperand, Message: "bad immediate " + text}
		}
		return sir.NewOperand(text, "", "NOTYPE", 0, false, false, false, true, value), nil

	case pop.Bare != nil:
		name := strings.Join(pop.Bare.NameParts, ".")
		return sir.NewOperand(name, name, "NOTYPE", 0, true, false, false, false, nil), nil

	default:
		return nil, asmerr.Diagnostic{Level: asmerr.Error, Code: asmerr.CodeInvalidOperand, Message: "empty operand"}
	}
}

// resolveSuccessors turns each block's recorded branch-target labels
// into Succs edges. A block with no JMP/BRA terminator falls through
// to the next block in source order, matching SASS fall-through
// semantics.
func resolveSuccessors(blocks []*sir.BasicBlock, byAddr map[string]*sir.BasicBlock, targets map[*sir.BasicBlock][]string) error {
	for i, b := range blocks {
		labels := targets[b]
		if len(labels) == 0 {
			if i+1 < len(blocks) {
				b.Succs = append(b.Succs, blocks[i+1])
			}
			continue
		}
		for _, label := range labels {
			succ, ok := byAddr[label]
			if !ok {
				return asmerr.Diagnostic{
					Level:   asmerr.Error,
					Code:    asmerr.CodeUnresolvedBranch,
					Message: "branch to undefined block " + label,
				}
			}
			b.Succs = append(b.Succs, succ)
		}
	}
	return nil
}

// fillPredecessors derives every block's Preds from the Succs edges
// just resolved, in the order predecessors were visited.
func fillPredecessors(blocks []*sir.BasicBlock) {
	for _, b := range blocks {
		for _, succ := range b.Succs {
			succ.Preds = append(succ.Preds, b)
		}
	}
}
