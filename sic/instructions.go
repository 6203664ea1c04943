// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sic describes the SIC/XE instruction set architecture: its
// opcode table, register numbers, addressing-mode flag bits, and the
// machine-code encoders for each of the four instruction formats.
package sic

import "strings"

// Slot identifies the kind of operand a format expects.
type Slot byte

const (
	// SlotNone means the instruction takes no operand.
	SlotNone Slot = iota
	// SlotMemory is a memory-reference operand (format 3/4).
	SlotMemory
	// SlotR1 is the first register operand (format 2).
	SlotR1
	// SlotR2 is the second, optional register operand (format 2).
	SlotR2
	// SlotN is an immediate count/field operand (format 2, e.g. SVC, SHIFTL).
	SlotN
)

// Instr describes a single SIC/XE opcode entry: its opcode byte, its
// canonical format (1, 2 or 3 — format 4 is format 3 with the extended
// prefix), and the operand slots it expects.
type Instr struct {
	Opcode  byte
	Format  int
	Operand []Slot
}

// OpTable is the SIC/XE operation code table, found on page 496 of the
// reference text.
var OpTable = map[string]Instr{
	"ADD":    {0x18, 3, []Slot{SlotMemory}},
	"ADDF":   {0x58, 3, []Slot{SlotMemory}},
	"ADDR":   {0x90, 2, []Slot{SlotR1, SlotR2}},
	"AND":    {0x40, 3, []Slot{SlotMemory}},
	"CLEAR":  {0xB4, 2, []Slot{SlotR1}},
	"COMP":   {0x28, 3, []Slot{SlotMemory}},
	"COMPF":  {0x88, 3, []Slot{SlotMemory}},
	"COMPR":  {0xA0, 2, []Slot{SlotR1, SlotR2}},
	"DIV":    {0x24, 3, []Slot{SlotMemory}},
	"DIVF":   {0x64, 3, []Slot{SlotMemory}},
	"DIVR":   {0x9C, 2, []Slot{SlotR1, SlotR2}},
	"FIX":    {0xC4, 1, nil},
	"FLOAT":  {0xC0, 1, nil},
	"HIO":    {0xF4, 1, nil},
	"J":      {0x3C, 3, []Slot{SlotMemory}},
	"JEQ":    {0x30, 3, []Slot{SlotMemory}},
	"JGT":    {0x34, 3, []Slot{SlotMemory}},
	"JLT":    {0x38, 3, []Slot{SlotMemory}},
	"JSUB":   {0x48, 3, []Slot{SlotMemory}},
	"LDA":    {0x00, 3, []Slot{SlotMemory}},
	"LDB":    {0x68, 3, []Slot{SlotMemory}},
	"LDCH":   {0x50, 3, []Slot{SlotMemory}},
	"LDF":    {0x70, 3, []Slot{SlotMemory}},
	"LDL":    {0x08, 3, []Slot{SlotMemory}},
	"LDS":    {0x6C, 3, []Slot{SlotMemory}},
	"LDT":    {0x74, 3, []Slot{SlotMemory}},
	"LDX":    {0x04, 3, []Slot{SlotMemory}},
	"LPS":    {0xD0, 3, []Slot{SlotMemory}},
	"MULF":   {0x60, 3, []Slot{SlotMemory}},
	"MULR":   {0x98, 2, []Slot{SlotR1, SlotR2}},
	"NORM":   {0xC8, 1, nil},
	"OR":     {0x44, 3, []Slot{SlotMemory}},
	"RD":     {0xD8, 3, []Slot{SlotMemory}},
	"RMO":    {0xAC, 2, []Slot{SlotR1, SlotR2}},
	"RSUB":   {0x4C, 3, nil},
	"SHIFTL": {0xA4, 2, []Slot{SlotR1, SlotN}},
	"SHIFTR": {0xA8, 2, []Slot{SlotR1, SlotN}},
	"SIO":    {0xF0, 1, nil},
	"SSK":    {0xEC, 3, []Slot{SlotMemory}},
	"STA":    {0x0C, 3, []Slot{SlotMemory}},
	"STB":    {0x78, 3, []Slot{SlotMemory}},
	"STCH":   {0x54, 3, []Slot{SlotMemory}},
	"STF":    {0x80, 3, []Slot{SlotMemory}},
	"STI":    {0xD4, 3, []Slot{SlotMemory}},
	"STL":    {0x14, 3, []Slot{SlotMemory}},
	"STS":    {0x7C, 3, []Slot{SlotMemory}},
	"STSW":   {0xE8, 3, []Slot{SlotMemory}},
	"STT":    {0x84, 3, []Slot{SlotMemory}},
	"STX":    {0x10, 3, []Slot{SlotMemory}},
	"SUB":    {0x1C, 3, []Slot{SlotMemory}},
	"SUBF":   {0x5C, 3, []Slot{SlotMemory}},
	"SUBR":   {0x94, 2, []Slot{SlotR1, SlotR2}},
	"SVC":    {0xB0, 2, []Slot{SlotN}},
	"TD":     {0xE0, 3, []Slot{SlotMemory}},
	"TIO":    {0xF8, 1, nil},
	"TIX":    {0x2C, 3, []Slot{SlotMemory}},
	"TIXR":   {0xB8, 2, []Slot{SlotR1}},
	"WD":     {0xDC, 3, []Slot{SlotMemory}},
}

// Flag bit positions within the n,i,x,b,p,e nibble-pair of a format 3/4
// instruction.
const (
	FlagN byte = 0x20
	FlagI byte = 0x10
	FlagX byte = 0x08
	FlagB byte = 0x04
	FlagP byte = 0x02
	FlagE byte = 0x01
)

// Registers maps a SIC/XE register name to its 4-bit register number
// (page 5 and 7 of the reference text).
var Registers = map[string]byte{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// IsExtended reports whether a mnemonic carries the '+' extended-format
// prefix.
func IsExtended(mnemonic string) bool {
	return strings.HasPrefix(mnemonic, "+")
}

// BaseMnemonic strips the '+' extended-format prefix, if present.
func BaseMnemonic(mnemonic string) string {
	if IsExtended(mnemonic) {
		return mnemonic[1:]
	}
	return mnemonic
}

// Format reports the canonical instruction format (1, 2, 3 or 4) for the
// given mnemonic, applying the extended-format bump from 3 to 4. The
// mnemonic must already be present in OpTable (after stripping '+').
func Format(mnemonic string) (int, bool) {
	base := BaseMnemonic(mnemonic)
	instr, ok := OpTable[base]
	if !ok {
		return 0, false
	}
	format := instr.Format
	if IsExtended(mnemonic) {
		format++
	}
	return format, true
}
