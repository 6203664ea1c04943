// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sic

import "strconv"

// SymbolLookup resolves a symbol name to its assigned address. It is
// satisfied by the assembler's symbol table; sic does not depend on the
// asm package's concrete representation.
type SymbolLookup interface {
	Lookup(name string) (int, bool)
}

// flags holds the six addressing-mode bits of a format 3/4 instruction
// before they are packed into the xbpe nibble.
type flags struct {
	N, I, X, B, P, E bool
}

func (f flags) xbpe() byte {
	var v byte
	if f.X {
		v |= FlagX
	}
	if f.B {
		v |= FlagB
	}
	if f.P {
		v |= FlagP
	}
	if f.E {
		v |= FlagE
	}
	return v
}

// determineFlags computes the n, i, x and e flags for a format 3/4
// instruction from its mnemonic (for the extended prefix) and its raw
// operand text (for addressing mode prefixes/suffixes). p and b are
// decided later, once the operand has been resolved to an address.
func determineFlags(mnemonic, operand string, line int, text string) (flags, error) {
	var f flags

	switch {
	case Immediate(operand):
		f.I = true
	case Indirect(operand):
		f.N = true
	default:
		f.N, f.I = true, true
	}

	if Indexed(operand) {
		if Immediate(operand) || Indirect(operand) {
			return f, &LineFieldsError{
				Line: line, Text: text,
				Message: "indexed addressing cannot be used with immediate or indirect addressing modes",
			}
		}
		f.X = true
	}

	if IsExtended(mnemonic) {
		f.E = true
	}

	return f, nil
}

// resolveOperandValue strips the addressing-mode prefix/suffix from a raw
// operand and resolves the rest to an integer value: either a decimal
// literal (immediate addressing only) or a symbol table lookup.
func resolveOperandValue(operand string, symtab SymbolLookup, line int, text string) (value int, isImmediateDigit bool, err error) {
	stripped := StripAddressing(operand)

	if Immediate(operand) {
		if n, convErr := strconv.Atoi(stripped); convErr == nil {
			return n, true, nil
		}
	}

	addr, ok := symtab.Lookup(stripped)
	if !ok {
		return 0, false, &UndefinedSymbolError{Line: line, Text: text, Symbol: stripped}
	}
	return addr, false, nil
}

// ResolveFormat3 resolves and encodes a format 3 instruction. location is
// the address assigned to the instruction; base is the currently active
// BASE register value, or nil if no BASE is in effect.
func ResolveFormat3(mnemonic, operand string, location int, base *int, symtab SymbolLookup, line int, text string) (*Format3, error) {
	f, err := determineFlags(mnemonic, operand, line, text)
	if err != nil {
		return nil, err
	}

	instr, ok := OpTable[mnemonic]
	if !ok {
		return nil, &OpcodeLookupError{Line: line, Text: text, Mnemonic: mnemonic}
	}

	var disp int
	switch {
	case operand == "" || Literal(operand):
		// No operand, or an unresolved literal-pool reference: the hook
		// is acknowledged but literal emission is not implemented.
		disp = 0

	default:
		value, isDigit, rerr := resolveOperandValue(operand, symtab, line, text)
		if rerr != nil {
			return nil, rerr
		}
		if isDigit {
			disp = value
		} else {
			pcRel := value - (location + 3)
			switch {
			case pcRel >= -2048 && pcRel <= 2047:
				f.P = true
				disp = pcRel
			case base != nil && value-*base >= 0 && value-*base <= 4095:
				f.B = true
				disp = value - *base
			default:
				msg := "neither PC nor base relative addressing usable"
				if base == nil {
					msg += ": BASE directive not set"
				}
				return nil, &InstructionError{Line: line, Text: text, Message: msg}
			}
		}
	}

	opcodeByte := instr.Opcode
	if f.N {
		opcodeByte |= 0x02
	}
	if f.I {
		opcodeByte |= 0x01
	}

	value32 := uint32(opcodeByte)<<16 | uint32(f.xbpe())<<12 | uint32(disp)&0xFFF
	return &Format3{Mnemonic: mnemonic, value: value32}, nil
}

// ResolveFormat4 resolves and encodes a format 4 (extended) instruction.
// mnemonic must still carry its '+' prefix so the extended flag and base
// opcode lookup can both be derived from it.
func ResolveFormat4(mnemonic, operand string, symtab SymbolLookup, line int, text string) (*Format4, error) {
	f, err := determineFlags(mnemonic, operand, line, text)
	if err != nil {
		return nil, err
	}

	base := BaseMnemonic(mnemonic)
	instr, ok := OpTable[base]
	if !ok {
		return nil, &OpcodeLookupError{Line: line, Text: text, Mnemonic: mnemonic}
	}

	var addr int
	if operand != "" && !Literal(operand) {
		value, _, rerr := resolveOperandValue(operand, symtab, line, text)
		if rerr != nil {
			return nil, rerr
		}
		addr = value
	}

	opcodeByte := instr.Opcode
	if f.N {
		opcodeByte |= 0x02
	}
	if f.I {
		opcodeByte |= 0x01
	}

	value32 := uint32(opcodeByte)<<24 | uint32(f.xbpe())<<20 | uint32(addr)&0xFFFFF
	return &Format4{Mnemonic: mnemonic, value: value32}, nil
}
