package ui

import (
	"io"
	"os"
)

type flusher interface {
	Flush() error
}

// WriteLine writes message to standard output, followed by a newline when
// lineBreak is set.
func WriteLine(message string, lineBreak bool) error {
	return WriteLineTo(os.Stdout, message, lineBreak)
}

// WriteLineTo writes message to w, followed by a newline when lineBreak is
// set, and flushes w before returning if it buffers output.
func WriteLineTo(w io.Writer, message string, lineBreak bool) error {
	if lineBreak {
		message += "\n"
	}
	if _, err := io.WriteString(w, message); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
