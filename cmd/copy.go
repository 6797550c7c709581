package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/Snider/gressbar/pkg/compress"
	"github.com/Snider/gressbar/pkg/ui"
	"github.com/spf13/cobra"
)

// NewCopyCmd returns the copy command, which copies a file while showing its
// progress.
func NewCopyCmd() *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy [src] [dst]",
		Short: "Copy a file with a progress bar.",
		Long: `Copy src to dst while showing a progress bar. Use - as src to read from
standard input; since its size is unknown, a spinner is shown instead.`,
		Example: `  gressbar copy image.iso /mnt/backup/image.iso
  gressbar copy --compression xz dump.sql dump.sql.xz
  pg_dump db | gressbar copy - db.sql.zst --compression zst`,
		Args: cobra.ExactArgs(2),
		RunE: runCopy,
	}
	copyCmd.Flags().String("compression", "none", "Compress the destination (none, gz, zst or xz)")
	return copyCmd
}

// copyProgress is satisfied by both the bar writer and the spinner.
type copyProgress interface {
	io.Writer
	Finish() error
}

func runCopy(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	format, _ := cmd.Flags().GetString("compression")
	if !slices.Contains(compress.Formats, format) {
		return fmt.Errorf("%w: %q", compress.ErrUnknownFormat, format)
	}
	colorOn, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	log := loggerFrom(cmd.Context())

	in, size, err := openSource(cmd, src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer out.Close()

	zw, err := compress.NewWriter(out, format)
	if err != nil {
		return err
	}

	label := "stdin"
	if src != "-" {
		label = filepath.Base(src)
	}
	progress, err := newCopyProgress(cmd, label, size, colorOn)
	if err != nil {
		return err
	}

	log.Debug("copying", "src", src, "dst", dst, "size", size, "compression", format)
	n, err := io.Copy(zw, io.TeeReader(in, progress))
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish %s stream: %w", format, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	if err := progress.Finish(); err != nil {
		return fmt.Errorf("render progress: %w", err)
	}

	log.Debug("copy complete", "bytes", n, "dst", dst)
	return nil
}

// openSource opens src for reading and reports its size, or -1 when the size
// cannot be known in advance.
func openSource(cmd *cobra.Command, src string) (io.ReadCloser, int64, error) {
	if src == "-" {
		return io.NopCloser(cmd.InOrStdin()), -1, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, 0, fmt.Errorf("open source: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return f, -1, nil
	}
	return f, info.Size(), nil
}

func newCopyProgress(cmd *cobra.Command, label string, size int64, colorOn bool) (copyProgress, error) {
	if size <= 0 {
		return ui.NewSpinner(label, cmd.OutOrStdout()), nil
	}

	bar, err := ui.NewProgressBar(int(size),
		ui.WithPrefix(label),
		ui.WithWriter(cmd.OutOrStdout()),
		ui.WithColor(colorOn),
	)
	if err != nil {
		return nil, err
	}
	return ui.NewProgressWriter(bar), nil
}
