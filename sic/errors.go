// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sic

import "fmt"

// LineFieldsError is raised when a source line has a malformed field
// count, a malformed BYTE operand, or uses indexed addressing together
// with immediate or indirect addressing.
type LineFieldsError struct {
	Line    int
	Text    string
	Message string
}

func (e *LineFieldsError) Error() string {
	return fmt.Sprintf("[LineFieldsError] line %d: %s\n\t%s", e.Line, e.Message, e.Text)
}

// DuplicateSymbolError is raised when a label is defined more than once
// during pass 1.
type DuplicateSymbolError struct {
	Line   int
	Text   string
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("[DuplicateSymbolError] line %d: duplicate symbol %q\n\t%s", e.Line, e.Symbol, e.Text)
}

// OpcodeLookupError is raised when a mnemonic is not a recognized
// instruction or directive.
type OpcodeLookupError struct {
	Line     int
	Text     string
	Mnemonic string
}

func (e *OpcodeLookupError) Error() string {
	return fmt.Sprintf("[OpcodeLookupError] line %d: unknown mnemonic %q\n\t%s", e.Line, e.Mnemonic, e.Text)
}

// UndefinedSymbolError is raised when an operand references a symbol that
// was never defined during pass 1.
type UndefinedSymbolError struct {
	Line   int
	Text   string
	Symbol string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("[UndefinedSymbolError] line %d: undefined symbol %q\n\t%s", e.Line, e.Symbol, e.Text)
}

// InstructionError is raised when neither PC-relative nor base-relative
// addressing can represent a format 3 displacement.
type InstructionError struct {
	Line    int
	Text    string
	Message string
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("[InstructionError] line %d: %s\n\t%s", e.Line, e.Message, e.Text)
}
