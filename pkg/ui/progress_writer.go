package ui

import (
	"fmt"
	"time"
)

// ProgressWriter is an io.Writer that advances a ProgressBar by the number of
// bytes written through it. It is meant to sit beside the real destination in
// an io.MultiWriter or io.TeeReader.
type ProgressWriter struct {
	bar      *ProgressBar
	written  int
	start    time.Time
	finished bool
	opts     []UpdateOption
}

// NewProgressWriter creates a ProgressWriter over bar, whose target is the
// expected number of bytes. opts are applied to every update.
//
// Example:
//
//	bar, _ := ui.NewProgressBar(int(size), ui.WithPrefix("Copying"))
//	pw := ui.NewProgressWriter(bar)
//	_, err := io.Copy(io.MultiWriter(dst, pw), src)
//	pw.Finish()
func NewProgressWriter(bar *ProgressBar, opts ...UpdateOption) *ProgressWriter {
	return &ProgressWriter{bar: bar, start: time.Now(), opts: opts}
}

// Write implements the io.Writer interface. A failure to render the bar is
// returned so that the copy driving it stops.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	if pw == nil || pw.bar == nil {
		return len(p), nil
	}
	pw.written += len(p)
	if err := pw.bar.Update(pw.written, pw.updateOptions()...); err != nil {
		return len(p), err
	}
	if pw.written >= pw.bar.Target() {
		pw.finished = true
	}
	return len(p), nil
}

// Written returns the number of bytes seen so far.
func (pw *ProgressWriter) Written() int {
	return pw.written
}

// Finish terminates the bar's line if the writes never reached the target.
func (pw *ProgressWriter) Finish() error {
	if pw == nil || pw.bar == nil || pw.finished {
		return nil
	}
	pw.finished = true
	return pw.bar.Update(pw.written, append(pw.updateOptions(), WithFinished(true))...)
}

func (pw *ProgressWriter) updateOptions() []UpdateOption {
	opts := make([]UpdateOption, 0, len(pw.opts)+1)
	opts = append(opts, pw.opts...)
	return append(opts, WithField("rate", formatRate(pw.written, time.Since(pw.start))))
}

// formatRate formats a byte throughput as a human-readable string.
func formatRate(n int, elapsed time.Duration) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	secs := elapsed.Seconds()
	if secs < 0.001 {
		secs = 0.001
	}
	rate := float64(n) / secs

	switch {
	case rate >= GB:
		return fmt.Sprintf("%.2f GB/s", rate/GB)
	case rate >= MB:
		return fmt.Sprintf("%.2f MB/s", rate/MB)
	case rate >= KB:
		return fmt.Sprintf("%.2f KB/s", rate/KB)
	default:
		return fmt.Sprintf("%.0f B/s", rate)
	}
}
