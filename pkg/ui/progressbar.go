package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// DefaultWidth is the number of glyph cells in the bar track when no width
// is given.
const DefaultWidth = 20

const barGlyph = "━"

var (
	// ErrInvalidTarget is returned when a bar is constructed with a target below 1.
	ErrInvalidTarget = errors.New("target must be at least 1")
	// ErrInvalidWidth is returned when a bar is constructed with a negative width.
	ErrInvalidWidth = errors.New("width must not be negative")
)

// ProgressBar renders an in-place, color-coded progress bar. Each call to
// Update redraws over the previous render using backspaces and a carriage
// return, so the bar stays on one line until it finishes.
//
// A ProgressBar is not safe for concurrent use; callers sharing one across
// goroutines must serialize calls to Update.
//
// Example:
//
//	bar, err := ui.NewProgressBar(100, ui.WithPrefix("Downloading"))
//	if err != nil {
//		// handle error
//	}
//	for i := 1; i <= 100; i++ {
//		bar.Update(i, ui.WithField("file", name))
//	}
type ProgressBar struct {
	target    int
	width     int
	prefix    string
	prevWidth int
	out       io.Writer

	label  *color.Color
	filled *color.Color
	empty  *color.Color
	color  bool
}

// Option configures a ProgressBar at construction.
type Option func(*ProgressBar)

// WithWidth sets the number of cells in the bar track.
func WithWidth(width int) Option {
	return func(b *ProgressBar) {
		b.width = width
	}
}

// WithPrefix sets a string rendered before the counter on every line.
func WithPrefix(prefix string) Option {
	return func(b *ProgressBar) {
		b.prefix = prefix
	}
}

// WithWriter sets the destination of rendered lines. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(b *ProgressBar) {
		b.out = w
	}
}

// WithColor enables or disables terminal control sequences. Default: enabled.
func WithColor(enabled bool) Option {
	return func(b *ProgressBar) {
		b.color = enabled
	}
}

// NewProgressBar creates a bar that completes when Update reaches target.
func NewProgressBar(target int, opts ...Option) (*ProgressBar, error) {
	b := &ProgressBar{
		target: target,
		width:  DefaultWidth,
		out:    os.Stdout,
		color:  true,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.target < 1 {
		return nil, fmt.Errorf("new progress bar: %w (got %d)", ErrInvalidTarget, b.target)
	}
	if b.width < 0 {
		return nil, fmt.Errorf("new progress bar: %w (got %d)", ErrInvalidWidth, b.width)
	}
	if b.prefix != "" {
		b.prefix += " "
	}

	b.label = color.New(color.Bold)
	b.filled = color.New(color.FgGreen)
	b.empty = color.New(color.FgWhite)
	for _, c := range []*color.Color{b.label, b.filled, b.empty} {
		if b.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return b, nil
}

// Target returns the value at which the bar is complete.
func (b *ProgressBar) Target() int {
	return b.target
}

// Width returns the number of cells in the bar track.
func (b *ProgressBar) Width() int {
	return b.width
}

// Prefix returns the normalized prefix, including its trailing space.
func (b *ProgressBar) Prefix() string {
	return b.prefix
}

// UpdateOption configures a single call to Update.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	info     Info
	extra    Info
	indent   int
	finished *bool
}

// WithInfo renders the given fields to the right of the bar.
func WithInfo(info Info) UpdateOption {
	return func(o *updateOptions) {
		o.info = info
	}
}

// WithField adds a single field to the right of the bar. Fields added this way
// replace WithInfo fields that share their key.
func WithField(key string, value any) UpdateOption {
	return func(o *updateOptions) {
		o.extra = o.extra.Set(key, value)
	}
}

// WithIndent prefixes the line with n spaces.
func WithIndent(n int) UpdateOption {
	return func(o *updateOptions) {
		o.indent = n
	}
}

// WithFinished overrides whether the render ends with a line break. By default
// the line is terminated once current reaches the target.
func WithFinished(finished bool) UpdateOption {
	return func(o *updateOptions) {
		o.finished = &finished
	}
}

// Update redraws the bar at current. The write error, if any, is returned.
func (b *ProgressBar) Update(current int, opts ...UpdateOption) error {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}

	var l line
	l.add(nil, strings.Repeat(" ", max(o.indent, 0)))
	l.add(nil, b.prefix)
	l.add(b.label, fmt.Sprintf("%*d/%d", len(strconv.Itoa(b.target)), current, b.target))
	l.add(nil, " ")

	progWidth := b.progressWidth(current)
	if progWidth > 0 {
		l.add(b.filled, strings.Repeat(barGlyph, progWidth))
	}
	l.add(b.empty, strings.Repeat(barGlyph, b.width-progWidth))

	if info := o.info.Merge(o.extra); info.Len() > 0 {
		l.add(nil, " ")
		l.add(nil, FormatInfo(info))
	}

	visible := l.width()
	if b.prevWidth > visible {
		l.add(nil, strings.Repeat(" ", b.prevWidth-visible))
	}

	msg := strings.Repeat("\b", b.prevWidth) + "\r" + l.styled.String()
	b.prevWidth = visible

	finished := current >= b.target
	if o.finished != nil {
		finished = *o.finished
	}
	return WriteLineTo(b.out, msg, finished)
}

// progressWidth is the number of filled cells for current, clamped to the track.
func (b *ProgressBar) progressWidth(current int) int {
	w := int(float64(b.width) * float64(current) / float64(b.target))
	return min(max(w, 0), b.width)
}

// line accumulates a render alongside its plain text so the visible width
// never depends on the control sequences in use.
type line struct {
	styled strings.Builder
	plain  strings.Builder
}

func (l *line) add(c *color.Color, s string) {
	if s == "" && c == nil {
		return
	}
	l.plain.WriteString(s)
	if c == nil {
		l.styled.WriteString(s)
		return
	}
	l.styled.WriteString(c.Sprint(s))
}

func (l *line) width() int {
	return uniseg.StringWidth(l.plain.String())
}
