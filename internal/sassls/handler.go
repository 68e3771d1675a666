// Package sassls implements a minimal language server over the .sass
// text format: on open/change it re-decodes the buffer with
// internal/asmtext, runs the SSA pass on a throwaway copy, and answers
// hover requests with the SSA renaming of the register token under the
// cursor. This is ambient developer tooling analogous to the teacher's
// own LSP (internal/lsp), not a core-semantics change — it only ever
// exposes read-only SSA information (spec.md §6's apply(module) is
// never run against the user's live buffer, only against a copy).
package sassls

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sassssa/internal/asmerr"
	"sassssa/internal/asmtext"
	"sassssa/internal/sir"
	"sassssa/internal/ssa"
)

// SemanticTokenTypes/Modifiers mirror the legend shape of the teacher's
// internal/lsp.SemanticTokenTypes, scoped to what a register-level
// hover needs.
var SemanticTokenTypes = []string{"register", "opcode", "label"}
var SemanticTokenModifiers = []string{"ssaRenamed", "phiResult"}

// renaming is the post-SSA information gathered for one base register
// name in one document: every versioned/compacted name it produced.
type renaming struct {
	base      string
	versioned []string
	compacted []string
}

// Handler implements the LSP handlers for the .sass text format.
type Handler struct {
	mu        sync.RWMutex
	content   map[string]string
	renamings map[string]map[string]*renaming // path -> base register -> renaming
}

// NewHandler creates a Handler.
func NewHandler() *Handler {
	return &Handler{
		content:   make(map[string]string),
		renamings: make(map[string]map[string]*renaming),
	}
}

func ptrBool(b bool) *bool { return &b }

// Initialize advertises hover and full-document sync support.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
		},
	}, nil
}

// Initialized is a no-op acknowledgement, as in the teacher's handler.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown clears all cached document state.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content = make(map[string]string)
	h.renamings = make(map[string]map[string]*renaming)
	return nil
}

// TextDocumentDidOpen decodes and SSA-analyzes the newly opened buffer.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange re-decodes the buffer after a full-document
// change notification.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	return h.refresh(ctx, params.TextDocument.URI, change.Text)
}

// TextDocumentDidClose forgets the document's cached state.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.renamings, path)
	return nil
}

var registerToken = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

// TextDocumentHover reports the SSA renaming of the register token
// under the cursor: its base name, every versioned name the pass
// minted for it, and its final compacted R{n} forms.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	word := h.wordAt(path, params.Position)
	if word == "" {
		return nil, nil
	}

	h.mu.RLock()
	r, ok := h.renamings[path][word]
	h.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	contents := fmt.Sprintf(
		"**%s** (%s)\n\nversioned: %s\n\ncompacted: %s",
		r.base, strcase.ToSnake(r.base),
		strings.Join(r.versioned, ", "),
		strings.Join(r.compacted, ", "),
	)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: contents},
	}, nil
}

// wordAt extracts the identifier-like token at line/column of the
// cached document text.
func (h *Handler) wordAt(path string, pos protocol.Position) string {
	h.mu.RLock()
	source := h.content[path]
	h.mu.RUnlock()

	lines := strings.Split(source, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 && isIdentByte(line[start-1]) {
		start--
	}
	tail := line[start:]
	return registerToken.FindString(tail)
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// refresh decodes source, runs the SSA pass on a throwaway copy, and
// rebuilds the per-base-register renaming index used by hover.
// Decode errors surface as LSP diagnostics rather than core-pass input,
// matching the rest of the repository's error-handling boundary.
func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.content[path] = text
	h.mu.Unlock()

	before, err := asmtext.ParseString(path, text)
	if err != nil {
		sendDiagnostic(ctx, uri, err)
		return nil
	}

	for _, fn := range before.Functions {
		h.indexFunction(path, fn)
	}
	return nil
}

// indexFunction snapshots each operand's pre-SSA base name by identity
// (SetName/SetReg mutate the same *sir.Operand in place, so identity
// survives the pass even though the name string doesn't), runs the
// pass step by step, and attributes each operand's versioned name (read
// before compaction) and compacted name (read after) back to its base.
func (h *Handler) indexFunction(path string, fn *sir.Function) {
	before := map[*sir.Operand]string{}
	for _, b := range fn.Blocks {
		for _, inst := range b.Instructions {
			for _, op := range inst.Operands {
				if op.IsReg() && op.Name() != "" {
					before[op] = op.Name()
				}
			}
		}
	}

	// The same steps as ssa.ProcessFunction, with the versioned names
	// captured between φ synthesis and compaction.
	versioned := map[*sir.Operand]string{}
	if work := ssa.Traverse(fn); len(work) > 0 {
		driver := ssa.NewDriver(work)
		driver.Run(fn.Entry(), work)
		ssa.SynthesizePhis(driver, work)
		for op := range before {
			versioned[op] = op.Name()
		}
		ssa.Compact(work)
	}

	after := map[string]*renaming{}
	for op, base := range before {
		r, ok := after[base]
		if !ok {
			r = &renaming{base: base}
			after[base] = r
		}
		r.versioned = append(r.versioned, versioned[op])
		r.compacted = append(r.compacted, op.Reg())
	}

	h.mu.Lock()
	h.renamings[path] = after
	h.mu.Unlock()
}

func sendDiagnostic(ctx *glsp.Context, uri protocol.DocumentUri, err error) {
	d, ok := err.(asmerr.Diagnostic)
	if !ok {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI: uri,
		Diagnostics: []protocol.Diagnostic{{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(max0(d.Position.Line - 1)), Character: uint32(max0(d.Position.Column - 1))},
				End:   protocol.Position{Line: uint32(max0(d.Position.Line - 1)), Character: uint32(max0(d.Position.Column + 3))},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("sassssa"),
			Message:  d.Message,
		}},
	})
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 2 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity     { return &s }
func ptrString(s string) *string                                                { return &s }
