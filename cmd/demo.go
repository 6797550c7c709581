package cmd

import (
	"fmt"
	"time"

	"github.com/Snider/gressbar/pkg/ui"
	"github.com/spf13/cobra"
)

// NewDemoCmd returns the demo command, which walks a bar from zero to its
// target at a fixed pace.
func NewDemoCmd() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Drive a progress bar from zero to its target.",
		Long: `Drive a progress bar from zero to its target, redrawing it in place at
every step. Extra --info pairs are shown to the right of the bar.`,
		Example: `  gressbar demo --target 50 --prefix Building --info stage=compile`,
		Args:    cobra.NoArgs,
		RunE:    runDemo,
	}
	demoCmd.Flags().Int("target", 100, "Value at which the bar completes")
	demoCmd.Flags().Int("width", ui.DefaultWidth, "Number of cells in the bar track")
	demoCmd.Flags().Int("step", 1, "Amount added at every update")
	demoCmd.Flags().String("prefix", "", "Text shown before the counter")
	demoCmd.Flags().Int("indent", 0, "Number of spaces before the bar")
	demoCmd.Flags().Duration("delay", 20*time.Millisecond, "Pause between updates")
	demoCmd.Flags().StringArray("info", nil, "key=value pair shown next to the bar (repeatable)")
	return demoCmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetInt("target")
	width, _ := cmd.Flags().GetInt("width")
	step, _ := cmd.Flags().GetInt("step")
	prefix, _ := cmd.Flags().GetString("prefix")
	indent, _ := cmd.Flags().GetInt("indent")
	delay, _ := cmd.Flags().GetDuration("delay")
	pairs, _ := cmd.Flags().GetStringArray("info")

	if step < 1 {
		return fmt.Errorf("--step must be at least 1, got %d", step)
	}
	if indent < 0 {
		return fmt.Errorf("--indent must not be negative, got %d", indent)
	}
	info, err := parseInfo(pairs)
	if err != nil {
		return err
	}
	colorOn, err := colorEnabled(cmd)
	if err != nil {
		return err
	}

	bar, err := ui.NewProgressBar(target,
		ui.WithWidth(width),
		ui.WithPrefix(prefix),
		ui.WithWriter(cmd.OutOrStdout()),
		ui.WithColor(colorOn),
	)
	if err != nil {
		return err
	}

	log := loggerFrom(cmd.Context())
	log.Debug("starting demo", "target", target, "width", width, "step", step)

	start := time.Now()
	for current := 0; ; current += step {
		current = min(current, target)
		err := bar.Update(current,
			ui.WithInfo(info),
			ui.WithIndent(indent),
			ui.WithField("elapsed", time.Since(start).Round(time.Millisecond)),
		)
		if err != nil {
			return fmt.Errorf("render progress: %w", err)
		}
		if current == target {
			break
		}
		time.Sleep(delay)
	}

	log.Debug("demo finished", "elapsed", time.Since(start))
	return nil
}
