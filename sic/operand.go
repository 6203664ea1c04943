// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sic

import "strings"

// Indexed reports whether an operand uses indexed addressing (a trailing
// ",X").
func Indexed(operand string) bool {
	return strings.HasSuffix(operand, ",X")
}

// Indirect reports whether an operand uses indirect addressing (a leading
// '@').
func Indirect(operand string) bool {
	return strings.HasPrefix(operand, "@")
}

// Immediate reports whether an operand uses immediate addressing (a
// leading '#').
func Immediate(operand string) bool {
	return strings.HasPrefix(operand, "#")
}

// Literal reports whether an operand is a literal-pool reference (a
// leading '='). Literals are recognized, but no literal pool is
// emitted.
func Literal(operand string) bool {
	return strings.HasPrefix(operand, "=")
}

// StripAddressing removes the addressing-mode prefix/suffix from an
// operand, returning the bare symbol or decimal literal underneath.
func StripAddressing(operand string) string {
	switch {
	case Indexed(operand):
		return operand[:len(operand)-2]
	case Indirect(operand):
		return operand[1:]
	case Immediate(operand):
		return operand[1:]
	default:
		return operand
	}
}
