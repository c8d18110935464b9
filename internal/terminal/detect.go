// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsStdinTerminal reports whether stdin is an interactive terminal.
// Secret input uses no-echo reads only when this is true; piped stdin
// falls back to plain line reads.
func IsStdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadPassword reads a line from the terminal identified by fd without echo.
func ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}
