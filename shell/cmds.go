// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("sicasm")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display help for a command",
		Description: "Display a list of commands, or help for a specific command.",
		Usage:       "help [<command>]",
		Data:        (*Shell).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Exit the shell",
		Description: "Exit the interactive shell.",
		Usage:       "quit",
		Data:        (*Shell).cmdQuit,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Display or change a session setting",
		Description: "With no arguments, display all session settings and" +
			" their current values. With a setting name and value, update" +
			" that setting. Setting names may be abbreviated to any" +
			" unambiguous prefix.",
		Usage: "set [<setting> <value>]",
		Data:  (*Shell).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:  "verbosity",
		Brief: "Get or set the assembly verbosity level",
		Description: "With no argument, display the current verbosity level." +
			" With an argument, set it: 0 is silent, 1 logs per-pass" +
			" summaries, and 2 logs per-line detail.",
		Usage: "verbosity [<0|1|2>]",
		Data:  (*Shell).cmdVerbosity,
	})

	assemble := cmd.NewTree("Assemble")
	root.AddCommand(cmd.Command{
		Name:    "assemble",
		Brief:   "Assemble commands",
		Subtree: assemble,
	})
	assemble.AddCommand(cmd.Command{
		Name:        "file",
		Brief:       "Assemble a file from disk",
		Description: "Run the two-pass assembler on the given file and print its object program records.",
		Usage:       "assemble file <path>",
		Data:        (*Shell).cmdAssembleFile,
	})
	assemble.AddCommand(cmd.Command{
		Name:  "stdin",
		Brief: "Assemble lines typed interactively",
		Description: "Read source lines until a line containing only \"END\"" +
			" is entered, then assemble them.",
		Usage: "assemble stdin",
		Data:  (*Shell).cmdAssembleStdin,
	})

	symbols := cmd.NewTree("Symbols")
	root.AddCommand(cmd.Command{
		Name:    "symbols",
		Brief:   "Symbol table commands",
		Subtree: symbols,
	})
	symbols.AddCommand(cmd.Command{
		Name:        "list",
		Brief:       "List all symbols",
		Description: "List every symbol defined by the most recently assembled program.",
		Usage:       "symbols list",
		Data:        (*Shell).cmdSymbolsList,
	})
	symbols.AddCommand(cmd.Command{
		Name:        "find",
		Brief:       "Find symbols by prefix",
		Description: "List symbols from the most recently assembled program whose name begins with the given prefix.",
		Usage:       "symbols find <prefix>",
		Data:        (*Shell).cmdSymbolsFind,
	})

	base := cmd.NewTree("Base register")
	root.AddCommand(cmd.Command{
		Name:    "base",
		Brief:   "Base register commands",
		Subtree: base,
	})
	base.AddCommand(cmd.Command{
		Name:        "show",
		Brief:       "Show the active base register value",
		Description: "Display the base register value left in effect at the end of the most recently assembled program.",
		Usage:       "base show",
		Data:        (*Shell).cmdBaseShow,
	})

	cmds = root
}
