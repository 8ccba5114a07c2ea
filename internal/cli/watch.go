package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/config"
	"github.com/example/mclock/internal/wire"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live mission board",
		Long: `Load the missions, lay them out one row each (most urgent first) and
refresh elapsed and remaining time every tick until interrupted.

Row order is fixed when the board starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getwd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().Duration("interval", 0, "Refresh period (default from config, 1s)")
	return cmd
}

// runWatch wires the board to a scheduler and blocks until ctx is done.
func runWatch(ctx context.Context, cfg *config.Config, out, logOut io.Writer) error {
	a, err := wire.New(cfg, out, logOut)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.MissionAdapter().Load(ctx); err != nil {
		return err
	}

	board := a.Board(true)
	sched, err := a.Scheduler(board)
	if err != nil {
		return err
	}
	if err := board.Attach(sched, a.Registry.Missions()); err != nil {
		return err
	}

	return sched.Run(ctx)
}
