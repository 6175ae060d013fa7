package controller

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fdWriter is an output backed by a file descriptor, such as *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// NewUI picks the styled TUI for terminals and plain tables otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Pipes, regular files
// and character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
