// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// SymbolTable maps a label to the absolute address at which it was
// defined. Addresses are stored as integers and converted to hex only
// when rendered.
type SymbolTable struct {
	addrs map[string]int
	// order preserves insertion order for deterministic listings (e.g.
	// the interactive shell's "symbols find" command).
	order []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]int)}
}

// Define inserts a new label -> address mapping. It reports false if the
// label is already defined.
func (t *SymbolTable) Define(label string, addr int) bool {
	if _, exists := t.addrs[label]; exists {
		return false
	}
	t.addrs[label] = addr
	t.order = append(t.order, label)
	return true
}

// Lookup resolves a label to its address. It satisfies sic.SymbolLookup.
func (t *SymbolTable) Lookup(label string) (int, bool) {
	addr, ok := t.addrs[label]
	return addr, ok
}

// Len reports the number of defined symbols.
func (t *SymbolTable) Len() int { return len(t.order) }

// Symbols returns the defined labels in the order they were inserted.
func (t *SymbolTable) Symbols() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
