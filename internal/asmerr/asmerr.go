// Package asmerr reports decode-time diagnostics for internal/asmtext:
// malformed assembly, unresolved branch targets, and operands with
// inconsistent classification. The SSA core never raises diagnostics
// of its own (spec.md §7 treats malformed sir input as a programmer
// error, not a recoverable condition); this package exists solely for
// the decoder and its callers.
package asmerr

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a Diagnostic.
type Level string

const (
	Error Level = "error"
	Note  Level = "note"
)

// Position locates a diagnostic in the original .sass source text.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is a structured decode-time error with source context.
type Diagnostic struct {
	Level    Level
	Code     string // e.g. "D0001"
	Message  string
	Position Position
	Length   int
	Notes    []string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Code, d.Position.Line, d.Position.Column, d.Message)
}

// Decode error codes.
const (
	CodeDuplicateBlock   = "D0001"
	CodeUnresolvedBranch = "D0002"
	CodeInvalidOperand   = "D0003"
	CodeMalformedInst    = "D0004"
)

// Reporter formats Diagnostics against a source file, Rust-compiler
// style, the way internal/errors.ErrorReporter formats CompilerErrors.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a Reporter for filename's source text.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders d with a caret under the offending span.
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)
	out.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Position.Line >= 1 && d.Position.Line <= len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1]))
		out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker(d.Position.Column, d.Length)))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		out.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	out.WriteString("\n")
	return out.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
