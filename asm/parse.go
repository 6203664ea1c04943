// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass SIC/XE assembler: it tokenizes
// source lines, resolves symbols and addresses across two passes, and
// emits the header/text/end object records a SIC/XE loader expects.
package asm

import (
	"strings"

	"github.com/sicxe/sicasm/sic"
)

// SourceLine is a single tokenized line of assembly source: an optional
// label, a mnemonic (including any leading '+' extended prefix), an
// optional operand, and the location counter value assigned to it by
// pass 1.
type SourceLine struct {
	LineNumber int    // 1-based
	Label      string // "" if absent
	Mnemonic   string
	Operand    string // "" if absent
	Text       string // original, unparsed line text
	Location   int    // assigned by pass 1
}

// HasLabel reports whether the line declared a label.
func (s *SourceLine) HasLabel() bool { return s.Label != "" }

// HasOperand reports whether the line has an operand field.
func (s *SourceLine) HasOperand() bool { return s.Operand != "" }

func isCommentField(field string) bool {
	return strings.HasPrefix(field, ".")
}

// IsBlank reports whether a raw source line contains no non-whitespace
// characters.
func IsBlank(line string) bool {
	return len(strings.Fields(line)) == 0
}

// IsComment reports whether a raw source line's first non-whitespace
// column begins a comment.
func IsComment(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && isCommentField(fields[0])
}

// ParseLine tokenizes a single physical source line into a SourceLine.
// Trailing comments (a field beginning with '.') truncate the field
// list, and a space erroneously inserted after a comma in a two-register
// operand is tolerated by re-joining the two fields it produced.
func ParseLine(line string, lineNumber int) (SourceLine, error) {
	fields := strings.Fields(line)

	for i, f := range fields {
		if isCommentField(f) {
			fields = fields[:i]
			break
		}
	}

	// Tolerate "A, S" (a stray space after the comma) in a two-register
	// operand by re-joining the field it split into two.
	switch {
	case len(fields) > 1 && strings.HasSuffix(fields[1], ",") && len(fields) > 2:
		merged := append([]string{fields[1] + fields[2]}, fields[3:]...)
		fields = append(fields[:1], merged...)
	case len(fields) > 2 && strings.HasSuffix(fields[2], ",") && len(fields) > 3:
		merged := append([]string{fields[2] + fields[3]}, fields[4:]...)
		fields = append(fields[:2], merged...)
	}

	sl := SourceLine{LineNumber: lineNumber, Text: line}
	switch len(fields) {
	case 3:
		sl.Label, sl.Mnemonic, sl.Operand = fields[0], fields[1], fields[2]
	case 2:
		sl.Mnemonic, sl.Operand = fields[0], fields[1]
	case 1:
		sl.Mnemonic = fields[0]
	default:
		return SourceLine{}, &sic.LineFieldsError{
			Line: lineNumber, Text: line,
			Message: "invalid number of fields on line",
		}
	}
	return sl, nil
}
