// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell implements an interactive command-line session for
// assembling SIC/XE source, inspecting the resulting symbol table, and
// tweaking session settings through a tree of commands.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/sicxe/sicasm/asm"
	"github.com/sicxe/sicasm/config"
)

// Shell is an interactive sicasm session: it keeps the most recently
// assembled program's symbol table and base register state around so
// follow-up commands can inspect them.
type Shell struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	promptStr   string
	settings    *settings
	lastState   *asm.AssemblerState
}

// New creates an interactive shell seeded from cfg. A nil cfg uses the
// built-in defaults.
func New(cfg *config.Config) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}
	s := newSettings()
	s.Verbosity = cfg.Assemble.Verbosity
	s.TextRecordWidth = cfg.Assemble.TextRecordWidth
	return &Shell{settings: s, promptStr: cfg.Shell.Prompt}
}

// Run starts the read-eval-print loop, reading commands from r and
// writing output to w. If interactive, stdin is switched to raw input
// mode (when it is a real terminal) and the terminal is restored when Run
// returns. Lines are read as-is through a bufio.Scanner; the shell does
// no line editing and keeps no command history.
func (sh *Shell) Run(r io.Reader, w io.Writer, interactive bool) error {
	sh.input = bufio.NewScanner(r)
	sh.output = bufio.NewWriter(w)
	sh.interactive = interactive

	if interactive {
		restore, err := rawMode()
		if err != nil {
			return err
		}
		defer restore()
		sh.println("sicasm interactive shell. Type \"help\" for a command list.")
	}

	for {
		sh.prompt()
		line, err := sh.getLine()
		if err != nil {
			break
		}
		if err := sh.process(line); err != nil {
			if err.Error() == "exit" {
				break
			}
			sh.printf("ERROR: %v\n", err)
		}
	}
	return nil
}

func (sh *Shell) process(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	s, err := cmds.Lookup(line)
	switch {
	case err == cmd.ErrNotFound:
		sh.println("Command not found.")
		return nil
	case err == cmd.ErrAmbiguous:
		sh.println("Command is ambiguous.")
		return nil
	case err != nil:
		sh.printf("%v\n", err)
		return nil
	}

	if s.Command.Data == nil && s.Command.Subtree != nil {
		sh.displayCommands(s.Command.Subtree)
		return nil
	}

	handler := s.Command.Data.(func(*Shell, cmd.Selection) error)
	return handler(sh, s)
}

func (sh *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.output, format, args...)
	sh.output.Flush()
}

func (sh *Shell) println(args ...interface{}) {
	fmt.Fprintln(sh.output, args...)
	sh.output.Flush()
}

func (sh *Shell) getLine() (string, error) {
	if sh.input.Scan() {
		return sh.input.Text(), nil
	}
	if sh.input.Err() != nil {
		return "", sh.input.Err()
	}
	return "", io.EOF
}

func (sh *Shell) prompt() {
	if sh.interactive {
		sh.printf("%s", sh.promptStr)
	}
}

func (sh *Shell) displayCommands(t *cmd.Tree) {
	sh.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			sh.printf("    %-20s %s\n", c.Name, c.Brief)
		}
	}
}

func (sh *Shell) cmdAssembleFile(c cmd.Selection) error {
	if len(c.Args) < 1 {
		sh.printf("Usage: %s\n", c.Command.Usage)
		return nil
	}
	f, err := os.Open(c.Args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	return sh.assemble(f)
}

func (sh *Shell) cmdAssembleStdin(c cmd.Selection) error {
	sh.println("Enter source lines, terminated by a line containing only \"END\":")
	var b strings.Builder
	for {
		line, err := sh.getLine()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "END" {
			b.WriteString(line)
			b.WriteByte('\n')
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return sh.assemble(strings.NewReader(b.String()))
}

func (sh *Shell) assemble(r io.Reader) error {
	state := asm.NewAssemblerState(sh.settings.Verbosity, sh.output)
	state.TextRecordWidth = sh.settings.TextRecordWidth
	records, err := state.Assemble(r)
	sh.lastState = state
	if err != nil {
		return err
	}
	for _, rec := range records {
		sh.println(rec.String())
	}
	return nil
}

func (sh *Shell) cmdSymbolsList(c cmd.Selection) error {
	if sh.lastState == nil {
		return errors.New("no program has been assembled yet")
	}
	symbols := sh.lastState.Symtab.Symbols()
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)
	for _, name := range sorted {
		addr, _ := sh.lastState.Symtab.Lookup(name)
		sh.printf("    %-12s %06X\n", name, addr)
	}
	return nil
}

func (sh *Shell) cmdSymbolsFind(c cmd.Selection) error {
	if sh.lastState == nil {
		return errors.New("no program has been assembled yet")
	}
	if len(c.Args) < 1 {
		sh.printf("Usage: %s\n", c.Command.Usage)
		return nil
	}
	prefix := strings.ToUpper(c.Args[0])
	found := false
	for _, name := range sh.lastState.Symtab.Symbols() {
		if strings.HasPrefix(name, prefix) {
			addr, _ := sh.lastState.Symtab.Lookup(name)
			sh.printf("    %-12s %06X\n", name, addr)
			found = true
		}
	}
	if !found {
		sh.println("No symbols match that prefix.")
	}
	return nil
}

func (sh *Shell) cmdBaseShow(c cmd.Selection) error {
	if sh.lastState == nil || sh.lastState.Base == nil {
		sh.println("No base register is in effect.")
		return nil
	}
	sh.printf("BASE = %06X\n", *sh.lastState.Base)
	return nil
}

func (sh *Shell) cmdVerbosity(c cmd.Selection) error {
	if len(c.Args) < 1 {
		sh.printf("verbosity = %d\n", sh.settings.Verbosity)
		return nil
	}
	n, err := strconv.Atoi(c.Args[0])
	if err != nil || n < 0 || n > 2 {
		return errors.New("verbosity must be 0, 1, or 2")
	}
	return sh.settings.Set("Verbosity", n)
}

func (sh *Shell) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		sh.println("Settings:")
		sh.settings.Display(sh.output)
		sh.output.Flush()

	case 1:
		sh.printf("Usage: %s\n", c.Command.Usage)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")

		var err error
		switch sh.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.String:
			err = sh.settings.Set(key, value)
		default:
			var n int
			n, err = strconv.Atoi(value)
			if err == nil {
				err = sh.settings.Set(key, n)
			}
		}

		if err != nil {
			return err
		}
		sh.println("Setting updated.")
	}
	return nil
}

func (sh *Shell) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		sh.displayCommands(cmds)
		return nil
	}
	s, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		sh.printf("%v\n", err)
		return nil
	}
	if s.Command.Subtree != nil {
		sh.displayCommands(s.Command.Subtree)
		return nil
	}
	if s.Command.Usage != "" {
		sh.printf("Usage: %s\n", s.Command.Usage)
	}
	if s.Command.Description != "" {
		sh.printf("%s\n", s.Command.Description)
	}
	return nil
}

func (sh *Shell) cmdQuit(c cmd.Selection) error {
	return errors.New("exit")
}
