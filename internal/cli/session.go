package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/ports/secondary"
	"github.com/example/mclock/internal/wire"
)

// DefaultSessionName is the tmux session used when --name is not given.
const DefaultSessionName = "mclock"

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run the mission board in a detached tmux session",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			kill, _ := cmd.Flags().GetBool("kill")
			source, _ := cmd.Flags().GetString("source")

			launcher, err := wire.SessionLauncher()
			if err != nil {
				return err
			}
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to locate mclock binary: %w", err)
			}

			return sessionRunE(launcher, os.Getwd, cmd.OutOrStdout(), sessionOptions{
				name:   name,
				binary: exe,
				source: source,
				kill:   kill,
			})
		},
	}
	cmd.Flags().String("name", DefaultSessionName, "tmux session name")
	cmd.Flags().String("source", "", "Mission file passed to the board")
	cmd.Flags().Bool("kill", false, "Stop the board session instead of starting it")
	return cmd
}

type sessionOptions struct {
	name   string
	binary string
	source string
	kill   bool
}

func sessionRunE(launcher secondary.SessionLauncher, getwd getwdFunc, out io.Writer, opts sessionOptions) error {
	if opts.kill {
		if err := launcher.KillSession(opts.name); err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}
		fmt.Fprintf(out, "✓ Session %s stopped\n", opts.name)
		return nil
	}

	if launcher.SessionExists(opts.name) {
		fmt.Fprintf(out, "Session %s is already running\n\n", opts.name)
		fmt.Fprint(out, launcher.AttachInstructions(opts.name))
		return nil
	}

	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := launcher.StartBoardSession(opts.name, dir, watchCommand(opts.binary, opts.source)); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	fmt.Fprintf(out, "✓ Board running in tmux session %s\n\n", opts.name)
	fmt.Fprint(out, launcher.AttachInstructions(opts.name))
	return nil
}

// watchCommand is the shell command the session pane runs.
func watchCommand(binary, source string) string {
	parts := []string{shellQuote(binary), "watch"}
	if source != "" {
		parts = append(parts, "--source", shellQuote(source))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
