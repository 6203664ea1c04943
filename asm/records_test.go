// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func TestHeaderRecordString(t *testing.T) {
	h := HeaderRecord{ProgramName: "COPY", StartAddress: 0x1000, ProgramLength: 0x107A}
	if got := h.String(); got != "HCOPY  00100000107A" {
		t.Errorf("got %q", got)
	}

	// An absent program name still occupies the full 6-column field.
	h = HeaderRecord{ProgramName: "", StartAddress: 0, ProgramLength: 3}
	if got := h.String(); got != "H      000000000003" {
		t.Errorf("got %q", got)
	}

	// An overlong name is truncated to 6 characters.
	h = HeaderRecord{ProgramName: "TOOLONGNAME", StartAddress: 0, ProgramLength: 0}
	if got := h.String(); got != "HTOOLON000000000000" {
		t.Errorf("got %q", got)
	}
}

func TestTextRecordString(t *testing.T) {
	r := TextRecord{StartAddress: 0x1000, Data: "032000000005"}
	if got := r.String(); got != "T00100006032000000005" {
		t.Errorf("got %q", got)
	}
}

func TestEndRecordString(t *testing.T) {
	e := EndRecord{FirstExecAddress: 0x1000}
	if got := e.String(); got != "E001000" {
		t.Errorf("got %q", got)
	}
}
