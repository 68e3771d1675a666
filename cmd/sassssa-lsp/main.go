// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sassssa/internal/sassls"
)

const lsName = "sassssa"

var version = "0.0.1"

func main() {
	commonlog.Configure(1, nil)

	sassHandler := sassls.NewHandler()

	handler := protocol.Handler{
		Initialize:            sassHandler.Initialize,
		Initialized:           sassHandler.Initialized,
		Shutdown:              sassHandler.Shutdown,
		TextDocumentDidOpen:   sassHandler.TextDocumentDidOpen,
		TextDocumentDidChange: sassHandler.TextDocumentDidChange,
		TextDocumentDidClose:  sassHandler.TextDocumentDidClose,
		TextDocumentHover:     sassHandler.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting sassssa LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting sassssa LSP server:", err)
		os.Exit(1)
	}
}
