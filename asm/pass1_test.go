// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

func runPass1(t *testing.T, code string) *AssemblerState {
	t.Helper()
	state := NewAssemblerState(0, io.Discard)
	if err := state.pass1(bufio.NewScanner(strings.NewReader(code))); err != nil {
		t.Fatal(err)
	}
	return state
}

// Each label's address records the cumulative width of everything
// before it, covering every location counter advance rule.
func TestLocationCounterWidths(t *testing.T) {
	code := `WIDTHS  START   0
A1      LDA     ZERO
A2      +LDA    ZERO
A3      CLEAR   X
        FIX
A5      WORD    100
A6      BYTE    C''
A7      BYTE    X'0'
A8      BYTE    C'EOF'
A9      RESW    2
A10     RESB    3
ZERO    WORD    0
        END
`
	state := runPass1(t, code)

	expected := []struct {
		label string
		addr  int
	}{
		{"A1", 0x00},  // format 3: 3 bytes
		{"A2", 0x03},  // format 4: 4 bytes
		{"A3", 0x07},  // format 2: 2 bytes
		{"A5", 0x0A},  // after the unlabeled format 1 FIX (1 byte) at 0x09; WORD: 3 bytes
		{"A6", 0x0D},  // BYTE C'': 0 bytes
		{"A7", 0x0D},  // BYTE X'0': 1 byte
		{"A8", 0x0E},  // BYTE C'EOF': 3 bytes
		{"A9", 0x11},  // RESW 2: 6 bytes
		{"A10", 0x17}, // RESB 3: 3 bytes
		{"ZERO", 0x1A},
	}
	for _, e := range expected {
		addr, ok := state.Symtab.Lookup(e.label)
		if !ok {
			t.Errorf("symbol %s not defined", e.label)
			continue
		}
		if addr != e.addr {
			t.Errorf("symbol %s = %02X, exp %02X", e.label, addr, e.addr)
		}
	}
	if state.LocCtr != 0x1D {
		t.Errorf("final location counter = %02X, exp 1D", state.LocCtr)
	}
}

// The location counter never decreases across pass 1.
func TestLocationCounterMonotonic(t *testing.T) {
	state := runPass1(t, `PROG    START   100
A       LDA     B
B       RESW    10
C       BYTE    X'FF'
        RSUB
        END
`)
	prev := state.StartAddress
	for _, line := range state.Lines {
		if line.Location < prev {
			t.Errorf("location counter decreased at line %d: %X < %X",
				line.LineNumber, line.Location, prev)
		}
		prev = line.Location
	}
}

// Pass 1 stops at END: lines beyond it are never processed.
func TestPass1StopsAtEnd(t *testing.T) {
	state := runPass1(t, `PROG    START   0
A       WORD    1
        END
GARBAGE NOTANOP NOPE
`)
	if _, ok := state.Symtab.Lookup("GARBAGE"); ok {
		t.Error("symbols after END should not be defined")
	}
}

func TestPass1InvalidStart(t *testing.T) {
	state := NewAssemblerState(0, io.Discard)
	err := state.pass1(bufio.NewScanner(strings.NewReader("PROG START XYZ\n")))
	if err == nil {
		t.Error("expected error for non-hex START operand")
	}
}

func TestPass1InvalidReservation(t *testing.T) {
	for _, code := range []string{
		"PROG START 0\nA RESW FOO\n END\n",
		"PROG START 0\nA RESB FOO\n END\n",
	} {
		state := NewAssemblerState(0, io.Discard)
		err := state.pass1(bufio.NewScanner(strings.NewReader(code)))
		if err == nil {
			t.Errorf("expected error for %q", code)
		}
	}
}
