package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Snider/gressbar/pkg/ui"
	"github.com/spf13/cobra"
)

type ctxKey string

const loggerKey ctxKey = "logger"

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// loggerFrom returns the logger stored in ctx, or one that discards everything.
func loggerFrom(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
			return log
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// colorEnabled resolves the --color flag. In auto mode colors are used only
// when the command writes to a terminal.
func colorEnabled(cmd *cobra.Command) (bool, error) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && ui.IsInteractive(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, always or never)", mode)
	}
}

// parseInfo turns repeated key=value flags into ordered bar info.
func parseInfo(pairs []string) (ui.Info, error) {
	var info ui.Info
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --info %q (want key=value)", pair)
		}
		info = info.Set(key, value)
	}
	return info, nil
}
