// Package sir is the IR data model the SSA pass consumes: operands,
// instructions, basic blocks, functions and modules for a GPU assembly
// program (an IR resembling NVIDIA SASS).
package sir

import "strings"

// Special register name prefixes (spec.md §3).
const (
	PrefixThreadIdx = "SR_TID"
	PrefixBlockDim  = "SR_NTID"
	PrefixBlockIdx  = "SR_CTAID"
	PrefixLaneID    = "SR_LANE"
	PrefixWarpID    = "SR_WARP"
)

// Lifter is the downstream IR type/lifting collaborator. The SSA core
// never calls it; only Operand.GetIRType does (spec.md §6).
type Lifter interface {
	GetIRType(typeDesc string) (any, error)
}

// Operand is a single operand of an Instruction: a general register, a
// memory-address reference, a constant-bank argument slot, an
// immediate, or a special register. See spec.md §3.
type Operand struct {
	name          string
	reg           string
	memAddrOffset string // offset part of a "reg+offset" register identifier, if any
	suffix        string
	argOffset     int

	isReg       bool
	isArg       bool
	isMemAddr   bool
	isImmediate bool
	immediate   any

	typeDesc string
	skipped  bool

	irType    any
	irRegName string
	irResolved bool
}

// NewOperand builds an Operand, splitting a "reg+offset" register
// identifier on the first '+' the way original_source/sir/operand.py
// does (spec.md §3, §6).
func NewOperand(name, reg, suffix string, argOffset int, isReg, isArg, isMemAddr bool, isImmediate bool, immediate any) *Operand {
	o := &Operand{
		name:        name,
		suffix:      suffix,
		argOffset:   argOffset,
		isReg:       isReg,
		isArg:       isArg,
		isMemAddr:   isMemAddr,
		isImmediate: isImmediate,
		immediate:   immediate,
		typeDesc:    "NOTYPE",
	}
	if reg != "" {
		if idx := strings.IndexByte(reg, '+'); idx >= 0 {
			o.reg = reg[:idx]
			o.memAddrOffset = reg[idx+1:]
		} else {
			o.reg = reg
		}
	}
	return o
}

// Name returns the operand's display name.
func (o *Operand) Name() string { return o.name }

// Reg returns the register identifier (without any "+offset" suffix).
func (o *Operand) Reg() string { return o.reg }

// MemAddrOffset returns the address offset for a memory-address
// operand, or "" if there is none.
func (o *Operand) MemAddrOffset() string { return o.memAddrOffset }

// Suffix returns the operand's textual suffix.
func (o *Operand) Suffix() string { return o.suffix }

// ArgOffset returns the byte offset of an argument-slot operand.
func (o *Operand) ArgOffset() int { return o.argOffset }

// IsReg reports whether this operand is a general-register reference.
func (o *Operand) IsReg() bool { return o.isReg }

// IsArg reports whether this operand is a constant-bank argument slot.
func (o *Operand) IsArg() bool { return o.isArg }

// IsMemAddr reports whether this operand's register is used to
// compute a memory address (appears inside "[...]" in textual form).
func (o *Operand) IsMemAddr() bool { return o.isMemAddr }

// IsImmediate reports whether this operand is an immediate value.
func (o *Operand) IsImmediate() bool { return o.isImmediate }

// Immediate returns the immediate value, or nil if this is not an
// immediate operand.
func (o *Operand) Immediate() any { return o.immediate }

// IsZeroReg reports whether this operand names the zero register.
func (o *Operand) IsZeroReg() bool { return o.name == "RZ" || o.name == "SRZ" }

// IsPT reports whether this operand names the always-true predicate.
func (o *Operand) IsPT() bool { return o.name == "PT" }

// IsSpecialReg reports whether this operand names a thread-index,
// block-dim, block-index, lane-id, or warp-id special register.
func (o *Operand) IsSpecialReg() bool {
	if o.name == "" {
		return false
	}
	for _, prefix := range []string{PrefixThreadIdx, PrefixBlockDim, PrefixBlockIdx, PrefixLaneID, PrefixWarpID} {
		if strings.HasPrefix(o.name, prefix) {
			return true
		}
	}
	return false
}

// IsThreadIdx reports whether this is a thread-index special register.
func (o *Operand) IsThreadIdx() bool { return strings.HasPrefix(o.name, PrefixThreadIdx) }

// IsBlockDim reports whether this is a block-dimension special register.
func (o *Operand) IsBlockDim() bool { return strings.HasPrefix(o.name, PrefixBlockDim) }

// IsBlockIdx reports whether this is a block-index special register.
func (o *Operand) IsBlockIdx() bool { return strings.HasPrefix(o.name, PrefixBlockIdx) }

// IsLaneID reports whether this is a lane-id special register.
func (o *Operand) IsLaneID() bool { return strings.HasPrefix(o.name, PrefixLaneID) }

// IsWarpID reports whether this is a warp-id special register.
func (o *Operand) IsWarpID() bool { return strings.HasPrefix(o.name, PrefixWarpID) }

// TypeDesc returns the operand's type description (default "NOTYPE").
func (o *Operand) TypeDesc() string { return o.typeDesc }

// HasTypeDesc reports whether a type description has been set.
func (o *Operand) HasTypeDesc() bool { return o.typeDesc != "NOTYPE" }

// SetTypeDesc sets the operand's type description.
func (o *Operand) SetTypeDesc(desc string) { o.typeDesc = desc }

// Skipped reports whether the operand has been marked skipped.
func (o *Operand) Skipped() bool { return o.skipped }

// SetSkip marks the operand as skipped.
func (o *Operand) SetSkip() { o.skipped = true }

// SetName overwrites the operand's display name. Used only by the SSA
// renamer and compactor (spec.md §3: "mutated in place").
func (o *Operand) SetName(name string) { o.name = name }

// SetReg overwrites the operand's register identifier. Used only by
// the SSA renamer and compactor.
func (o *Operand) SetReg(reg string) { o.reg = reg }

// GetIRType lazily resolves and caches the operand's IR type via the
// lifter. The SSA core never calls this (spec.md §6).
func (o *Operand) GetIRType(lifter Lifter) (any, error) {
	if !o.irResolved {
		t, err := lifter.GetIRType(o.typeDesc)
		if err != nil {
			return nil, err
		}
		o.irType = t
		o.irResolved = true
	}
	return o.irType, nil
}

// GetIRRegName lazily computes and caches the lifted register name:
// the register identifier followed by the type description. It does
// not consult a Lifter.
func (o *Operand) GetIRRegName() string {
	if o.irRegName == "" {
		o.irRegName = o.reg + o.typeDesc
	}
	return o.irRegName
}
