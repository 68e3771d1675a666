package asmtext

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the .sass text format: block headers, opcode mnemonics
// with dot-separated modifiers, and the handful of operand shapes
// spec.md §3 distinguishes (registers, memory addresses, argument
// slots, immediates, special registers).
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		// "block" is reserved as its own token type so the generic
		// Ident rule used for opcodes/operands can never swallow a
		// block header keyword (the grammar's instruction repetition
		// would otherwise greedily consume it).
		{"Keyword", `block\b`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Integer", `0[xX][0-9a-fA-F]+|-?[0-9]+`, nil},
		{"Punct", `[\[\]():+,.:]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
