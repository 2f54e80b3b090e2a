package cmd

import (
	"context"
	"time"

	"github.com/connorhough/lapse/internal/config"
	"github.com/connorhough/lapse/internal/stopwatch"
	"github.com/connorhough/lapse/internal/view"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		runFor   time.Duration
		interval time.Duration
		refresh  time.Duration
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a stopwatch in the terminal",
		Long: `Start a stopwatch and render the elapsed time until interrupted.
With --for, the stopwatch stops itself after the given duration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			settings.ApplyFlags(interval, refresh)
			if err := settings.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if runFor > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, runFor)
				defer cancel()
			}

			sw := stopwatch.New(stopwatch.WithInterval(settings.TickInterval))
			view.Watch(ctx, sw, view.NewIOStreams(), settings.RefreshInterval)
			return nil
		},
	}

	// Define flags
	runCmd.Flags().DurationVar(&runFor, "for", 0, "Stop automatically after this duration (0 runs until interrupted)")
	runCmd.Flags().DurationVar(&interval, "interval", 0, "Tick interval for the clock engine (overrides config)")
	runCmd.Flags().DurationVar(&refresh, "refresh", 0, "Redraw interval for the display (overrides config)")

	return runCmd
}
