package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// render runs update against bar and returns only what that update wrote.
func render(t *testing.T, buf *bytes.Buffer, update func() error) string {
	t.Helper()
	buf.Reset()
	if err := update(); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	return buf.String()
}

func newTestBar(t *testing.T, buf *bytes.Buffer, target int, opts ...Option) *ProgressBar {
	t.Helper()
	bar, err := NewProgressBar(target, append([]Option{WithWriter(buf)}, opts...)...)
	if err != nil {
		t.Fatalf("NewProgressBar(%d) failed: %v", target, err)
	}
	return bar
}

func TestNewProgressBar_Good(t *testing.T) {
	var buf bytes.Buffer
	bar := newTestBar(t, &buf, 10)
	if bar.Target() != 10 {
		t.Errorf("expected target 10, got %d", bar.Target())
	}
	if bar.Width() != DefaultWidth {
		t.Errorf("expected default width %d, got %d", DefaultWidth, bar.Width())
	}
	if bar.Prefix() != "" {
		t.Errorf("expected empty prefix, got %q", bar.Prefix())
	}

	bar = newTestBar(t, &buf, 10, WithPrefix("hello"), WithWidth(5))
	if bar.Prefix() != "hello " {
		t.Errorf("expected prefix to gain one trailing space, got %q", bar.Prefix())
	}
	if bar.Width() != 5 {
		t.Errorf("expected width 5, got %d", bar.Width())
	}
}

func TestNewProgressBar_Bad(t *testing.T) {
	for _, target := range []int{0, -1} {
		_, err := NewProgressBar(target)
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("NewProgressBar(%d): expected ErrInvalidTarget, got %v", target, err)
		}
	}

	_, err := NewProgressBar(10, WithWidth(-1))
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestUpdate_Good(t *testing.T) {
	t.Run("Counter", func(t *testing.T) {
		var buf bytes.Buffer
		total := 20
		bar := newTestBar(t, &buf, total)
		for i := 1; i < 5; i++ {
			out := render(t, &buf, func() error { return bar.Update(i) })
			if !strings.Contains(out, fmt.Sprintf("%d/%d", i, total)) {
				t.Errorf("expected %d/%d in %q", i, total, out)
			}
		}
	})

	t.Run("Counter is padded to the target's digits", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 100)
		out := render(t, &buf, func() error { return bar.Update(7) })
		if !strings.Contains(out, "  7/100") {
			t.Errorf("expected padded counter in %q", out)
		}
	})

	t.Run("Plain render", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(4), WithColor(false))
		out := render(t, &buf, func() error { return bar.Update(5) })
		if out != "\r 5/10 ━━━━" {
			t.Errorf("unexpected render %q", out)
		}
	})

	t.Run("Prefix and indent", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(4), WithColor(false), WithPrefix("hello"))
		out := render(t, &buf, func() error { return bar.Update(1, WithIndent(2)) })
		if out != "\r  hello  1/10 ━━━━" {
			t.Errorf("unexpected render %q", out)
		}
	})

	t.Run("Colors", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10)
		out := render(t, &buf, func() error { return bar.Update(5) })
		for _, seq := range []string{"\x1b[1m", "\x1b[32m", "\x1b[37m"} {
			if !strings.Contains(out, seq) {
				t.Errorf("expected control sequence %q in %q", seq, out)
			}
		}

		out = render(t, &buf, func() error { return bar.Update(0) })
		if strings.Contains(out, "\x1b[32m") {
			t.Errorf("expected no filled segment at zero progress, got %q", out)
		}
	})
}

func TestUpdate_Prefix(t *testing.T) {
	var buf bytes.Buffer
	bar := newTestBar(t, &buf, 10, WithPrefix("hello"))
	out := render(t, &buf, func() error { return bar.Update(1) })
	if !strings.Contains(out, "hello") {
		t.Errorf("expected prefix in %q", out)
	}
}

func TestUpdate_Interactive(t *testing.T) {
	var buf bytes.Buffer
	bar := newTestBar(t, &buf, 10)
	for i := 0; i < 5; i++ {
		if err := bar.Update(i + 1); err != nil {
			t.Fatalf("update failed: %v", err)
		}
	}
	// The bar must stay on the same line while it is unfinished.
	if strings.Contains(buf.String(), "\n") {
		t.Errorf("expected no newline before completion, got %q", buf.String())
	}
}

func TestUpdate_Finished(t *testing.T) {
	t.Run("Reaching the target", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10)
		out := render(t, &buf, func() error { return bar.Update(10) })
		if !strings.HasSuffix(out, "\n") {
			t.Errorf("expected newline at target, got %q", out)
		}
	})

	t.Run("Explicit finish", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10)
		out := render(t, &buf, func() error { return bar.Update(3, WithFinished(true)) })
		if !strings.HasSuffix(out, "\n") {
			t.Errorf("expected newline with WithFinished(true), got %q", out)
		}
	})

	t.Run("Explicit unfinished at target", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10)
		out := render(t, &buf, func() error { return bar.Update(10, WithFinished(false)) })
		if strings.Contains(out, "\n") {
			t.Errorf("expected no newline with WithFinished(false), got %q", out)
		}
	})
}

func TestUpdate_Info(t *testing.T) {
	t.Run("Info", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 1)
		info := NewInfo("test1", 123, "test2", 123)
		out := render(t, &buf, func() error { return bar.Update(1, WithInfo(info)) })
		if !strings.Contains(out, FormatInfo(info)) {
			t.Errorf("expected %q in %q", FormatInfo(info), out)
		}
	})

	t.Run("Field", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 1)
		out := render(t, &buf, func() error { return bar.Update(1, WithField("hello", 123)) })
		if !strings.Contains(out, FormatInfo(NewInfo("hello", 123))) {
			t.Errorf("expected field in %q", out)
		}
	})

	t.Run("Fields win on collision", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(2), WithColor(false))
		out := render(t, &buf, func() error {
			return bar.Update(1, WithInfo(NewInfo("a", 1, "b", 2)), WithField("a", 9), WithField("c", 3))
		})
		if out != "\r 1/10 ━━ a: 9, b: 2, c: 3" {
			t.Errorf("unexpected render %q", out)
		}
	})
}

func TestUpdate_Redraw(t *testing.T) {
	var buf bytes.Buffer
	bar := newTestBar(t, &buf, 10)

	// " 1/10" + " " + 20 cells of track
	const plainWidth = 26

	render(t, &buf, func() error { return bar.Update(1) })
	out := render(t, &buf, func() error { return bar.Update(2, WithField("status", "downloading")) })
	if !strings.HasPrefix(out, strings.Repeat("\b", plainWidth)+"\r") {
		t.Errorf("expected %d backspaces then a carriage return, got %q", plainWidth, out)
	}
	if n := strings.Count(out, "\b"); n != plainWidth {
		t.Errorf("expected %d backspaces, got %d", plainWidth, n)
	}

	// The previous render was len(" status: downloading") cells wider.
	pad := len(" status: downloading")
	out = render(t, &buf, func() error { return bar.Update(3) })
	if !strings.HasSuffix(out, "m"+strings.Repeat(" ", pad)) {
		t.Errorf("expected %d trailing spaces after the track, got %q", pad, out)
	}
	if n := strings.Count(out, "\b"); n != plainWidth+pad {
		t.Errorf("expected %d backspaces, got %d", plainWidth+pad, n)
	}
}

func TestUpdate_Ugly(t *testing.T) {
	t.Run("Overshoot is clamped", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(4), WithColor(false))
		out := render(t, &buf, func() error { return bar.Update(15) })
		if n := strings.Count(out, barGlyph); n != 4 {
			t.Errorf("expected 4 track cells, got %d in %q", n, out)
		}
		if !strings.HasSuffix(out, "\n") {
			t.Errorf("expected overshoot to finish the line, got %q", out)
		}
	})

	t.Run("Negative progress", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(4), WithColor(false))
		out := render(t, &buf, func() error { return bar.Update(-3) })
		if out != "\r-3/10 ━━━━" {
			t.Errorf("unexpected render %q", out)
		}
	})

	t.Run("Zero width", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newTestBar(t, &buf, 10, WithWidth(0), WithColor(false))
		out := render(t, &buf, func() error { return bar.Update(5) })
		if out != "\r 5/10 " {
			t.Errorf("unexpected render %q", out)
		}
	})

	t.Run("Write failure", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		bar, err := NewProgressBar(10, WithWriter(failingWriter{err: errBroken}))
		if err != nil {
			t.Fatalf("NewProgressBar failed: %v", err)
		}
		if err := bar.Update(1); !errors.Is(err, errBroken) {
			t.Errorf("expected write error to propagate, got %v", err)
		}
	})
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
