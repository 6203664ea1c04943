// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestSettingsSet(t *testing.T) {
	s := newSettings()
	if err := s.Set("verbosity", 2); err != nil {
		t.Fatal(err)
	}
	if s.Verbosity != 2 {
		t.Errorf("verbosity = %d, exp 2", s.Verbosity)
	}

	// Unambiguous prefixes resolve.
	if err := s.Set("text", 16); err != nil {
		t.Fatal(err)
	}
	if s.TextRecordWidth != 16 {
		t.Errorf("text record width = %d, exp 16", s.TextRecordWidth)
	}

	if err := s.Set("nosuch", 1); err == nil {
		t.Error("expected error for unknown setting")
	}
	if err := s.Set("verbosity", "two"); err == nil {
		t.Error("expected error for mistyped value")
	}
}

func TestSettingsKind(t *testing.T) {
	s := newSettings()
	if k := s.Kind("verbosity"); k != reflect.Int {
		t.Errorf("kind = %v, exp int", k)
	}
	if k := s.Kind("nosuch"); k != reflect.Invalid {
		t.Errorf("kind = %v, exp invalid", k)
	}
}

func TestSettingsDisplay(t *testing.T) {
	var buf bytes.Buffer
	newSettings().Display(&buf)
	out := buf.String()
	for _, name := range []string{"Verbosity", "TextRecordWidth"} {
		if !strings.Contains(out, name) {
			t.Errorf("display output missing %s:\n%s", name, out)
		}
	}
}
