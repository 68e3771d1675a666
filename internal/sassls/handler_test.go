package sassls_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sassssa/internal/sassls"
)

const testURI = "file:///tmp/t.sass"

func openDoc(t *testing.T, h *sassls.Handler, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(&glsp.Context{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesHover(t *testing.T) {
	h := sassls.NewHandler()
	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	require.True(t, init.Capabilities.HoverProvider.(bool))
}

func TestHoverReportsCompactedRegister(t *testing.T) {
	h := sassls.NewHandler()
	openDoc(t, h, "block B0:\n  IADD R10 R20 R21\n")

	hover, err := h.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 8},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	require.Contains(t, content.Value, "R10")
	require.Contains(t, content.Value, "compacted")
}

func TestHoverOnUnknownWordReturnsNil(t *testing.T) {
	h := sassls.NewHandler()
	openDoc(t, h, "block B0:\n  IADD R10 R20 R21\n")

	hover, err := h.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	})
	require.NoError(t, err)
	require.Nil(t, hover)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := sassls.NewHandler()
	openDoc(t, h, "block B0:\n  IADD R10 R20 R21\n")

	err := h.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	hover, err := h.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 8},
		},
	})
	require.NoError(t, err)
	require.Nil(t, hover)
}
