package asmtext

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"sassssa/internal/asmerr"
	"sassssa/internal/sir"
)

func newParser() (*participle.Parser[program], error) {
	return participle.Build[program](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
}

// ParseFile reads path and decodes it into a sir.Module, reporting any
// decode error through internal/asmerr rather than returning a raw
// participle error (this is the decoder/CFG-builder collaborator
// spec.md §1 keeps out of the core's own scope).
func ParseFile(path string) (*sir.Module, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asmtext: read %s: %w", path, err)
	}
	return ParseString(path, string(source))
}

// ParseString decodes source (attributed to filename for diagnostics)
// into a sir.Module.
func ParseString(filename, source string) (*sir.Module, error) {
	parser, err := newParser()
	if err != nil {
		return nil, fmt.Errorf("asmtext: build parser: %w", err)
	}

	prog, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, reportParseError(filename, source, err)
	}

	return build(prog)
}

// reportParseError turns a raw participle error into a formatted,
// caret-annotated asmerr.Diagnostic, mirroring grammar.reportParseError
// in the teacher's CLI front end.
func reportParseError(filename, source string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return err
	}

	pos := pe.Position()
	d := asmerr.Diagnostic{
		Level:    asmerr.Error,
		Code:     asmerr.CodeMalformedInst,
		Message:  pe.Message(),
		Position: asmerr.Position{Line: pos.Line, Column: pos.Column},
		Length:   1,
	}
	reporter := asmerr.NewReporter(filename, source)
	fmt.Fprint(os.Stderr, reporter.Format(d))
	return d
}
