// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/sicxe/sicasm/sic"
)

// pass1 streams the source once, building the symbol table and the
// location-annotated SourceLine survivor list that pass 2 will consume.
func (a *AssemblerState) pass1(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("asm: source program is empty")
	}
	first, err := ParseLine(scanner.Text(), 1)
	if err != nil {
		return err
	}
	if first.Mnemonic == "START" {
		start, err := strconv.ParseInt(first.Operand, 16, 64)
		if err != nil {
			return &sic.LineFieldsError{Line: 1, Text: first.Text, Message: "invalid START address"}
		}
		a.StartAddress = int(start)
		a.LocCtr = int(start)
		a.ProgramName = first.Label
	}

	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		text := scanner.Text()
		if IsBlank(text) || IsComment(text) {
			continue
		}

		line, err := ParseLine(text, lineNumber)
		if err != nil {
			return err
		}
		line.Location = a.LocCtr

		if line.HasLabel() {
			if !a.Symtab.Define(line.Label, line.Location) {
				return &sic.DuplicateSymbolError{Line: lineNumber, Text: text, Symbol: line.Label}
			}
			a.logf(2, "pass 1: %04X  %s", line.Location, line.Label)
		}

		base := sic.BaseMnemonic(line.Mnemonic)
		switch {
		case isOpcode(base):
			format, _ := sic.Format(line.Mnemonic)
			a.LocCtr += format

		case base == "WORD":
			a.LocCtr += 3

		case base == "RESW":
			n, err := strconv.Atoi(line.Operand)
			if err != nil {
				return &sic.LineFieldsError{Line: lineNumber, Text: text, Message: "invalid RESW operand"}
			}
			a.LocCtr += 3 * n

		case base == "RESB":
			n, err := strconv.Atoi(line.Operand)
			if err != nil {
				return &sic.LineFieldsError{Line: lineNumber, Text: text, Message: "invalid RESB operand"}
			}
			a.LocCtr += n

		case base == "BYTE":
			width, err := sic.ByteWidth(line.Operand, lineNumber, text)
			if err != nil {
				return err
			}
			a.LocCtr += width

		case base == "END":
			return nil

		case base == "BASE" || base == "NOBASE":
			// No location counter advance; resolved in pass 2.

		default:
			return &sic.OpcodeLookupError{Line: lineNumber, Text: text, Mnemonic: line.Mnemonic}
		}

		a.Lines = append(a.Lines, line)
	}
	return nil
}

func isOpcode(base string) bool {
	_, ok := sic.OpTable[base]
	return ok
}
