package ui

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// NewSpinner creates an indeterminate progress indicator for work whose size
// is not known up front, such as a stream read from stdin. ProgressBar needs
// a target, so this falls back to a byte-counting spinner instead. The
// returned bar is an io.Writer; write the streamed bytes through it and call
// Finish when done.
//
// Example:
//
//	spinner := ui.NewSpinner("Copying", os.Stdout)
//	_, err := io.Copy(io.MultiWriter(dst, spinner), os.Stdin)
//	spinner.Finish()
func NewSpinner(description string, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(DefaultWidth),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	)
}
