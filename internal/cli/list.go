package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/config"
	"github.com/example/mclock/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the mission board once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getwd)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func runList(ctx context.Context, cfg *config.Config, out, logOut io.Writer) error {
	a, err := wire.New(cfg, out, logOut)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.MissionAdapter().Load(ctx)
	if err != nil {
		return err
	}
	if len(result.Missions) == 0 {
		return nil
	}

	board := a.Board(false)
	sched, err := a.Scheduler(board)
	if err != nil {
		return err
	}
	if err := board.Attach(sched, result.Missions); err != nil {
		return err
	}
	sched.Tick(a.Clock.Now())
	return nil
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [mission-id]",
		Short: "Show one mission in detail",
		Long:  `Show one mission. The id may be given as MISSION-007, mission-7 or 7.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getwd)
			if err != nil {
				return err
			}

			a, err := wire.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			adapter := a.MissionAdapter()
			if _, err := adapter.Load(cmd.Context()); err != nil {
				return err
			}
			_, err = adapter.Show(args[0], a.Clock.Now(), a.Style())
			return err
		},
	}
	addSourceFlags(cmd)
	return cmd
}
