// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runShell drives a non-interactive session and returns everything it
// wrote to its output.
func runShell(t *testing.T, commands string) string {
	t.Helper()
	sh := New(nil)
	var out strings.Builder
	if err := sh.Run(strings.NewReader(commands), &out, false); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestShellAssembleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copy.asm")
	src := `COPY    START   1000
FIRST   LDA     NUM
NUM     WORD    5
        END     FIRST
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	out := runShell(t, "assemble file "+path+"\nsymbols list\nquit\n")
	for _, want := range []string{
		"HCOPY  001000000006",
		"T00100006032000000005",
		"E001000",
		"FIRST",
		"NUM",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellAssembleStdin(t *testing.T) {
	commands := "assemble stdin\n" +
		"PROG    START   0\n" +
		"A       WORD    7\n" +
		"END\n" +
		"quit\n"
	out := runShell(t, commands)
	if !strings.Contains(out, "T00000003000007") {
		t.Errorf("output missing assembled record:\n%s", out)
	}
}

func TestShellSymbolsFind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.asm")
	src := `PROG    START   0
ALPHA   WORD    1
ALPHB   WORD    2
BETA    WORD    3
        END
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	out := runShell(t, "assemble file "+path+"\nsymbols find ALPH\nquit\n")
	if !strings.Contains(out, "ALPHA") || !strings.Contains(out, "ALPHB") {
		t.Errorf("prefix search missed a symbol:\n%s", out)
	}
	if strings.Contains(out, "    BETA") {
		t.Errorf("prefix search matched an unrelated symbol:\n%s", out)
	}
}

func TestShellSet(t *testing.T) {
	sh := New(nil)
	var out strings.Builder
	commands := "set verbosity 1\nset\nquit\n"
	if err := sh.Run(strings.NewReader(commands), &out, false); err != nil {
		t.Fatal(err)
	}
	if sh.settings.Verbosity != 1 {
		t.Errorf("verbosity = %d, exp 1", sh.settings.Verbosity)
	}
	if !strings.Contains(out.String(), "Verbosity") {
		t.Errorf("set with no arguments should display settings:\n%s", out.String())
	}
}

func TestShellAssembleError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.asm")
	src := `PROG    START   0
FIRST   LDA     MISSING
        END     FIRST
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	out := runShell(t, "assemble file "+path+"\nquit\n")
	if !strings.Contains(out, "UndefinedSymbolError") {
		t.Errorf("output missing assembler error:\n%s", out)
	}
}
