// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "fmt"

const maxTextRecordBytes = 30

// Record is an object program record: a Header, Text, or End record in
// the classic SIC/XE loader format.
type Record interface {
	String() string
}

// HeaderRecord names the program and declares its load address and
// length.
type HeaderRecord struct {
	ProgramName   string
	StartAddress  int
	ProgramLength int
}

func (h HeaderRecord) String() string {
	name := h.ProgramName
	if len(name) > 6 {
		name = name[:6]
	}
	return fmt.Sprintf("H%-6s%06X%06X", name, h.StartAddress, h.ProgramLength)
}

// TextRecord carries a contiguous run of object code, at most 30 bytes.
type TextRecord struct {
	StartAddress int
	Data         string // hex, even-length, len(Data)/2 <= maxTextRecordBytes
}

func (t TextRecord) String() string {
	return fmt.Sprintf("T%06X%02X%s", t.StartAddress, len(t.Data)/2, t.Data)
}

// EndRecord names the program's first executable address.
type EndRecord struct {
	FirstExecAddress int
}

func (e EndRecord) String() string {
	return fmt.Sprintf("E%06X", e.FirstExecAddress)
}

// buildRecords renders the accumulated object code into the object
// program's record sequence, breaking text records at the 30-byte limit
// and wherever a RESW/RESB reservation interrupts contiguous data.
func (a *AssemblerState) buildRecords() []Record {
	width := a.TextRecordWidth
	if width <= 0 || width > maxTextRecordBytes {
		width = maxTextRecordBytes
	}

	records := []Record{
		HeaderRecord{
			ProgramName:   a.ProgramName,
			StartAddress:  a.StartAddress,
			ProgramLength: a.LocCtr - a.StartAddress,
		},
	}

	var cur *TextRecord
	nextAddr := -1

	flush := func() {
		if cur != nil {
			records = append(records, *cur)
			cur = nil
		}
	}

	for _, obj := range a.Objects {
		if obj.Encoded == nil {
			// A reservation has no bytes to emit; it just breaks
			// whatever text record was in progress.
			flush()
			nextAddr = obj.Location + obj.Reserve
			continue
		}

		hex := obj.Encoded.HexString()
		length := obj.Encoded.Len()

		if cur != nil && (obj.Location != nextAddr || len(cur.Data)/2+length > width) {
			flush()
		}
		if cur == nil {
			cur = &TextRecord{StartAddress: obj.Location}
		}
		cur.Data += hex
		nextAddr = obj.Location + length
	}
	flush()

	records = append(records, EndRecord{FirstExecAddress: a.StartAddress})
	return records
}
