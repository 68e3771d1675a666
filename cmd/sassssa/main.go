// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"sassssa/internal/asmtext"
	"sassssa/internal/printer"
	"sassssa/internal/ssa"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sassssa <file.sass>")
		os.Exit(1)
	}

	commonlog.Configure(1, nil)

	path := os.Args[1]
	module, err := asmtext.ParseFile(path)
	if err != nil {
		color.Red("Failed to decode %s: %s", path, err)
		os.Exit(1)
	}

	fmt.Println("Before:")
	for _, fn := range module.Functions {
		fmt.Print(printer.Print(fn))
	}

	ssa.Apply(module)

	fmt.Println("\nAfter:")
	for _, fn := range module.Functions {
		fmt.Print(printer.Print(fn))
	}

	color.Green("\n✅ Applied SSA construction to %s", path)
}
