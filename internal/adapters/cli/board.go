package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	coremission "github.com/example/mclock/internal/core/mission"
	"github.com/example/mclock/internal/ports/primary"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// BoardOptions configures a Board.
type BoardOptions struct {
	WarnWithin time.Duration // yellow threshold; zero means coremission.DefaultWarnWithin
	Redraw     bool          // clear the screen before each frame
	NoColor    bool
}

// Board is a terminal display collaborator. It owns one row per mission,
// receives faces through scheduler subscriptions and writes a full frame
// when a refresh cycle completes.
type Board struct {
	out        io.Writer
	warnWithin time.Duration
	redraw     bool

	rows     []boardRow
	nameW    int
	frames   int
	palette  map[coremission.UrgencyBand]*color.Color
	dimColor *color.Color
}

type boardRow struct {
	mission *coremission.Mission // read-only view; the registry owns it
	faces   coremission.Faces
	filled  bool
}

// NewBoard creates a board writing to out.
func NewBoard(out io.Writer, opts BoardOptions) *Board {
	if opts.WarnWithin <= 0 {
		opts.WarnWithin = coremission.DefaultWarnWithin
	}

	palette := map[coremission.UrgencyBand]*color.Color{
		coremission.BandRelaxed:  color.New(color.FgGreen),
		coremission.BandWarning:  color.New(color.FgYellow),
		coremission.BandCritical: color.New(color.FgHiRed, color.Bold),
		coremission.BandExpired:  color.New(color.FgRed),
	}
	dim := color.New(color.Faint)
	if opts.NoColor {
		dim.DisableColor()
		for _, c := range palette {
			c.DisableColor()
		}
	}

	return &Board{
		out:        out,
		warnWithin: opts.WarnWithin,
		redraw:     opts.Redraw,
		palette:    palette,
		dimColor:   dim,
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Attach lays the missions out one per row, in the order given, and
// subscribes each row to the scheduler.
func (b *Board) Attach(s primary.RefreshScheduler, missions []*coremission.Mission) error {
	b.rows = make([]boardRow, len(missions))
	b.nameW = len("MISSION")
	for i, m := range missions {
		b.rows[i] = boardRow{mission: m}
		if n := len(m.Name()); n > b.nameW {
			b.nameW = n
		}
		if err := s.Subscribe(primary.Subscription{
			Row:       i,
			MissionID: m.ID(),
			Notify:    b.Notify,
		}); err != nil {
			return fmt.Errorf("failed to subscribe %s: %w", m.ID(), err)
		}
	}
	return nil
}

// Notify stores the latest faces for a row.
func (b *Board) Notify(row int, faces coremission.Faces) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].faces = faces
	b.rows[row].filled = true
}

// Flush writes one frame. It is meant to be the scheduler's OnCycle hook.
func (b *Board) Flush(report primary.CycleReport) {
	b.frames++

	var sb strings.Builder
	if b.redraw {
		sb.WriteString(clearScreen)
	}

	fmt.Fprintf(&sb, "\n%-12s %-*s %-9s %14s %14s %-9s\n",
		"ID", b.nameW, "MISSION", "START", "ELAPSED", "REMAINING", "END")
	sb.WriteString(strings.Repeat("─", 12+b.nameW+9+14+14+9+5))
	sb.WriteString("\n")

	for _, row := range b.rows {
		if !row.filled {
			continue
		}
		band := coremission.BandOf(row.mission.Remaining(), b.warnWithin)
		line := fmt.Sprintf("%-12s %-*s %-9s %14s %14s %-9s",
			row.mission.ID(), b.nameW, row.mission.Name(),
			row.faces.Start, row.faces.Elapsed, row.faces.Remaining, row.faces.End)
		sb.WriteString(b.palette[band].Sprint(line))
		sb.WriteString("\n")
	}

	sb.WriteString(b.dimColor.Sprintf("\n%d missions · refreshed %s · cycle %d\n",
		report.Missions, report.Now.Format("2006-01-02 15:04:05"), report.Cycle))

	io.WriteString(b.out, sb.String()) //nolint:errcheck // display output is best effort
}

// Frames returns how many frames have been written.
func (b *Board) Frames() int { return b.frames }
