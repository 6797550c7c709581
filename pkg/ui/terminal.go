package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether f is attached to a terminal. Redirected
// output gets no control sequences unless the caller forces them.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
