package cmd

import (
	"context"
	"log/slog"

	"github.com/Snider/gressbar/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the gressbar command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gressbar",
		Short: "Render in-place terminal progress bars.",
		Long: `gressbar draws a color-coded progress bar that redraws over itself on a
single line until it completes. Its subcommands drive the bar from the
command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cmd.SetContext(withLogger(cmd.Context(), logger.New(cmd.ErrOrStderr(), true)))
			}
			_, err := colorEnabled(cmd)
			return err
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().String("color", "auto", "Colorize the bar (auto, always or never)")

	root.AddCommand(NewDemoCmd())
	root.AddCommand(NewCopyCmd())
	return root
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// Execute runs the root command with log available to every subcommand.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute(log *slog.Logger) error {
	RootCmd.SetContext(withLogger(context.Background(), log))
	return RootCmd.Execute()
}
