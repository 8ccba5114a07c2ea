// Package tmux runs the mission board inside a detached tmux session.
package tmux

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/GianlucaP106/gotmux/gotmux"

	"github.com/example/mclock/internal/ports/secondary"
)

// BoardWindowName is the name given to the window that hosts the board.
const BoardWindowName = "board"

// GotmuxAdapter wraps the gotmux library for board session lifecycle.
type GotmuxAdapter struct {
	tmux *gotmux.Tmux
}

// NewGotmuxAdapter creates a new gotmux adapter.
func NewGotmuxAdapter() (*GotmuxAdapter, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &GotmuxAdapter{
		tmux: tmux,
	}, nil
}

// StartBoardSession creates a detached session whose first pane runs command
// as its root process, so the session ends when the board exits.
func (g *GotmuxAdapter) StartBoardSession(name, dir, command string) error {
	if g.SessionExists(name) {
		return fmt.Errorf("session %s already exists", name)
	}

	session, err := g.tmux.NewSession(&gotmux.SessionOptions{
		Name:           name,
		StartDirectory: dir,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	windows, err := session.ListWindows()
	if err != nil {
		return fmt.Errorf("failed to list windows: %w", err)
	}
	if len(windows) == 0 {
		return fmt.Errorf("no windows found in new session")
	}
	window := windows[0]
	if err := window.Rename(BoardWindowName); err != nil {
		return fmt.Errorf("failed to rename window: %w", err)
	}

	panes, err := window.ListPanes()
	if err != nil || len(panes) == 0 {
		return fmt.Errorf("failed to get initial pane: %w", err)
	}

	// SessionOptions has no per-pane command, so replace the shell.
	if err := exec.Command("tmux", respawnArgs(panes[0].Id, command)...).Run(); err != nil {
		return fmt.Errorf("failed to start board in pane: %w", err)
	}
	return nil
}

// respawnArgs builds the tmux arguments that replace a pane's process.
// respawn-pane hands the command to the shell as one string.
func respawnArgs(paneID, command string) []string {
	return []string{"respawn-pane", "-t", paneID, "-k", strings.TrimSpace(command)}
}

// SessionExists checks if a tmux session exists.
func (g *GotmuxAdapter) SessionExists(name string) bool {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return false
	}
	for _, s := range sessions {
		if s.Name == name {
			return true
		}
	}
	return false
}

// KillSession terminates a tmux session.
func (g *GotmuxAdapter) KillSession(name string) error {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == name {
			return s.Kill()
		}
	}
	return fmt.Errorf("session %s not found", name)
}

// AttachInstructions returns user-friendly instructions for attaching to the board.
func (g *GotmuxAdapter) AttachInstructions(name string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Attach to session: tmux attach -t %s\n", name)
	b.WriteString("\n")
	b.WriteString("TMux Commands:\n")
	b.WriteString("  Detach session: Ctrl+b then d\n")
	fmt.Fprintf(&b, "  Stop the board: tmux kill-session -t %s\n", name)

	return b.String()
}

var _ secondary.SessionLauncher = (*GotmuxAdapter)(nil)
