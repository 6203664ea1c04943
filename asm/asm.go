// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sicxe/sicasm/sic"
)

// ObjectCode pairs a resolved location with its encoded payload. Encoded
// is nil for a RESW/RESB reservation: the location is real but no bytes
// are emitted, which forces a text record break.
type ObjectCode struct {
	Location int
	Encoded  sic.EncodedInstruction
	Reserve  int // byte count reserved, valid only when Encoded == nil
}

// AssemblerState holds everything accumulated across both passes of a
// single assembly: the symbol table, the location-annotated source
// lines pass 1 produced, the object code pass 2 produced, and the
// currently active base register.
type AssemblerState struct {
	ProgramName  string
	StartAddress int
	LocCtr       int
	Symtab       *SymbolTable
	Lines        []SourceLine
	Objects      []ObjectCode
	Base         *int
	Verbosity    int
	Log          *log.Logger

	// TextRecordWidth caps the number of object-code bytes packed into
	// one text record. It may be lowered below the loader maximum of 30
	// for loaders that read narrower records.
	TextRecordWidth int
}

// NewAssemblerState creates an assembler ready to process one program.
// verbosity follows the same 0/1/2 convention as the interactive shell's
// "verbosity" command: 0 is silent, 1 logs per-pass summaries, 2 logs
// per-line detail.
func NewAssemblerState(verbosity int, w io.Writer) *AssemblerState {
	if w == nil {
		w = os.Stderr
	}
	return &AssemblerState{
		Symtab:          NewSymbolTable(),
		Verbosity:       verbosity,
		Log:             log.New(w, "", 0),
		TextRecordWidth: maxTextRecordBytes,
	}
}

func (a *AssemblerState) logf(level int, format string, args ...interface{}) {
	if a.Verbosity >= level {
		a.Log.Printf(format, args...)
	}
}

// Assemble runs both passes over r and returns the object program
// records ready for textual rendering.
func (a *AssemblerState) Assemble(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	a.logf(1, "pass 1: scanning source")
	if err := a.pass1(scanner); err != nil {
		return nil, fmt.Errorf("pass 1: %w", err)
	}
	a.logf(1, "pass 1: %d symbols defined, program length %#x", a.Symtab.Len(), a.LocCtr-a.StartAddress)

	a.logf(1, "pass 2: resolving and encoding")
	if err := a.pass2(); err != nil {
		return nil, fmt.Errorf("pass 2: %w", err)
	}
	a.logf(1, "pass 2: %d objects emitted", len(a.Objects))

	records := a.buildRecords()
	a.logf(1, "emitted %d object records", len(records))
	return records, nil
}
