// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"os"

	"github.com/beevik/term"
)

// rawMode puts stdin into raw input mode when it's attached to a real
// terminal, returning a restore function that must be called before the
// shell exits. On a non-terminal stdin (e.g. piped input) it is a no-op.
func rawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}

	state, err := term.MakeRawInput(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, state) }, nil
}
