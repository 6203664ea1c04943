// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strconv"

	"github.com/sicxe/sicasm/sic"
)

// pass2 walks the survivor lines pass 1 produced, resolving symbols and
// addressing modes and encoding each instruction or data directive into
// its final object code.
func (a *AssemblerState) pass2() error {
	for _, line := range a.Lines {
		base := sic.BaseMnemonic(line.Mnemonic)

		switch base {
		case "BASE":
			addr, ok := a.Symtab.Lookup(line.Operand)
			if !ok {
				return &sic.UndefinedSymbolError{Line: line.LineNumber, Text: line.Text, Symbol: line.Operand}
			}
			v := addr
			a.Base = &v
			continue

		case "NOBASE":
			a.Base = nil
			continue

		case "WORD":
			datum, err := sic.NewWordDatum(line.Operand, line.LineNumber, line.Text)
			if err != nil {
				return err
			}
			a.Objects = append(a.Objects, ObjectCode{Location: line.Location, Encoded: datum})
			continue

		case "BYTE":
			datum, err := sic.NewByteDatum(line.Operand, line.LineNumber, line.Text)
			if err != nil {
				return err
			}
			a.Objects = append(a.Objects, ObjectCode{Location: line.Location, Encoded: datum})
			continue

		case "RESW":
			width, err := reservedWidth(line, 3)
			if err != nil {
				return err
			}
			a.Objects = append(a.Objects, ObjectCode{Location: line.Location, Reserve: width})
			continue

		case "RESB":
			width, err := reservedWidth(line, 1)
			if err != nil {
				return err
			}
			a.Objects = append(a.Objects, ObjectCode{Location: line.Location, Reserve: width})
			continue
		}

		instr, ok := sic.OpTable[base]
		if !ok {
			return &sic.OpcodeLookupError{Line: line.LineNumber, Text: line.Text, Mnemonic: line.Mnemonic}
		}

		var encoded sic.EncodedInstruction
		var err error
		switch instr.Format {
		case 1:
			encoded, err = sic.NewFormat1(line.Mnemonic)
		case 2:
			encoded, err = sic.NewFormat2(line.Mnemonic, line.Operand, line.LineNumber, line.Text)
		case 3:
			if sic.IsExtended(line.Mnemonic) {
				encoded, err = sic.ResolveFormat4(line.Mnemonic, line.Operand, a.Symtab, line.LineNumber, line.Text)
			} else {
				encoded, err = sic.ResolveFormat3(line.Mnemonic, line.Operand, line.Location, a.Base, a.Symtab, line.LineNumber, line.Text)
			}
		}
		if err != nil {
			return err
		}

		a.logf(2, "pass 2: %04X  %-8s %s", line.Location, line.Mnemonic, encoded.HexString())
		a.Objects = append(a.Objects, ObjectCode{Location: line.Location, Encoded: encoded})
	}
	return nil
}

// reservedWidth parses a RESW/RESB operand's repeat count and scales it
// by unit (3 bytes per word, 1 per byte).
func reservedWidth(line SourceLine, unit int) (int, error) {
	n, err := strconv.Atoi(line.Operand)
	if err != nil {
		return 0, &sic.LineFieldsError{Line: line.LineNumber, Text: line.Text, Message: "invalid reservation count"}
	}
	return unit * n, nil
}
