// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beevik/term"
	"github.com/sicxe/sicasm/asm"
	"github.com/sicxe/sicasm/config"
	"github.com/sicxe/sicasm/shell"
)

var (
	output      string
	verbosity   int
	interactive bool
)

func init() {
	flag.StringVar(&output, "o", "", "write object program to this file (default: stdout)")
	flag.IntVar(&verbosity, "v", -1, "verbosity level: 0=silent, 1=summary, 2=line detail (default: from config)")
	flag.BoolVar(&interactive, "i", false, "start the interactive shell instead of batch-assembling")
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sicasm [options] [source-file]\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exitOnError(err)
	}
	if verbosity < 0 {
		verbosity = cfg.Assemble.Verbosity
	}

	args := flag.Args()
	if interactive || (len(args) == 0 && cfg.Shell.AutoStart && term.IsTerminal(int(os.Stdin.Fd()))) {
		sh := shell.New(cfg)
		if err := sh.Run(os.Stdin, os.Stdout, true); err != nil {
			exitOnError(err)
		}
		return
	}

	var in *os.File
	switch len(args) {
	case 0:
		in = os.Stdin
	case 1:
		in, err = os.Open(args[0])
		if err != nil {
			exitOnError(err)
		}
		defer in.Close()
	default:
		flag.Usage()
		os.Exit(2)
	}

	out := os.Stdout
	if output != "" {
		out, err = os.Create(output)
		if err != nil {
			exitOnError(err)
		}
		defer out.Close()
	}

	state := asm.NewAssemblerState(verbosity, os.Stderr)
	state.TextRecordWidth = cfg.Assemble.TextRecordWidth
	records, err := state.Assemble(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sicasm: %v\n", err)
		os.Exit(1)
	}

	for _, rec := range records {
		fmt.Fprintln(out, rec.String())
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "sicasm: %v\n", err)
	os.Exit(1)
}
