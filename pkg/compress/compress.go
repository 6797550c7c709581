package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ErrUnknownFormat is returned for a compression format this package does not
// support.
var ErrUnknownFormat = errors.New("unknown compression format")

// Formats lists the supported compression formats.
var Formats = []string{"none", "gz", "zst", "xz"}

// NewWriter wraps w so that everything written is compressed with format.
// Supported formats are "none" (or ""), "gz", "zst" and "xz". The caller must
// Close the returned writer to flush the compressed stream; closing never
// closes w itself.
//
// Example:
//
//	zw, err := compress.NewWriter(file, "xz")
//	if err != nil {
//		// handle error
//	}
//	defer zw.Close()
//	io.Copy(zw, src)
func NewWriter(w io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case "", "none":
		return nopCloser{w}, nil
	case "gz":
		return gzip.NewWriter(w), nil
	case "zst":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case "xz":
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		return xw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Extension returns the conventional file suffix for format, including the
// leading dot, or "" when format adds none.
func Extension(format string) string {
	switch format {
	case "gz", "zst", "xz":
		return "." + format
	default:
		return ""
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
