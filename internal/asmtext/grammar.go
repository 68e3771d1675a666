package asmtext

// Grammar, participle struct tags over the Lexer's token stream. A
// single Ident covers both register-like tokens and block-address
// labels; the builder (builder.go) tells them apart: a bare JMP/BRA
// operand of the shape B<digits> is a label, and labels are resolved
// against the block symbol table once the whole program is built.

type program struct {
	Blocks []*block `@@*`
}

type block struct {
	Addr         string         `"block" @Ident ":"`
	Instructions []*instruction `@@*`
}

type instruction struct {
	Opcodes  []string  `@Ident { "." @Ident }`
	Operands []*operand `@@*`
}

type operand struct {
	MemAddr *memAddrOperand `  @@`
	Arg     *argOperand     `| @@`
	Bare    *bareOperand    `| @@`
}

// memAddrOperand is "[Reg]" or "[Reg+Offset]".
type memAddrOperand struct {
	Reg    string  `"[" @Ident`
	Offset *string `[ "+" @(Integer | Ident) ] "]"`
}

// argOperand is a constant-bank argument slot: c[0x0][0xOFF]. The bank
// index is always literal "0x0" in this IR (spec.md §3); only the byte
// offset is captured.
type argOperand struct {
	Offset string `"c" "[" "0x0" "]" "[" @Integer "]"`
}

// bareOperand is a general register, predicate register, special
// register (which may carry a dot-suffix, e.g. "SR_TID.X"), immediate,
// or branch-target label.
type bareOperand struct {
	NameParts []string `  @Ident { "." @Ident }`
	Immediate *string  `| @Integer`
}
