// Package wire provides dependency injection for the mclock application.
// It builds the services for one command invocation from the loaded config.
package wire

import (
	"fmt"
	"io"
	"log/slog"

	cliadapter "github.com/example/mclock/internal/adapters/cli"
	"github.com/example/mclock/internal/adapters/filesystem"
	"github.com/example/mclock/internal/adapters/sqlite"
	"github.com/example/mclock/internal/adapters/tmux"
	"github.com/example/mclock/internal/app"
	"github.com/example/mclock/internal/clock"
	"github.com/example/mclock/internal/config"
	coremission "github.com/example/mclock/internal/core/mission"
	"github.com/example/mclock/internal/db"
	"github.com/example/mclock/internal/ports/primary"
	"github.com/example/mclock/internal/ports/secondary"
)

// App holds the wired services. It is created per command; Close
// releases the database when the sqlite source is in use.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Clock    clock.Clock
	Source   secondary.MissionSource
	Registry *app.Registry

	out    io.Writer
	ownsDB bool
}

// New wires the mission source and registry described by cfg. User output
// goes to out, log records to logOut.
func New(cfg *config.Config, out, logOut io.Writer) (*App, error) {
	return NewWithClock(cfg, clock.Real(), out, logOut)
}

// NewWithClock is New with an injected clock.
func NewWithClock(cfg *config.Config, clk clock.Clock, out, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.NewLogger(logOut)

	a := &App{
		Config: cfg,
		Logger: logger,
		Clock:  clk,
		out:    out,
	}

	switch cfg.SourceKind {
	case config.SourceSQLite:
		store, err := MissionStore(cfg)
		if err != nil {
			return nil, err
		}
		a.Source = store
		a.ownsDB = true
	default:
		file, err := filesystem.NewMissionFile(cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve mission file: %w", err)
		}
		a.Source = file
	}

	policy, err := primary.ParseParsePolicy(cfg.ParsePolicy)
	if err != nil {
		return nil, err
	}
	a.Registry = app.NewRegistry(a.Source, clk, app.RegistryOptions{
		Policy: policy,
		Logger: logger,
	})

	logger.Debug("wired mission source", "kind", cfg.SourceKind, "source", a.Source.Describe())
	return a, nil
}

// Style returns the configured rendering of negative durations.
func (a *App) Style() coremission.NegativeStyle {
	style, err := coremission.ParseNegativeStyle(a.Config.NegativeStyle)
	if err != nil {
		return coremission.NegativeSign
	}
	return style
}

// MissionAdapter returns a new MissionAdapter writing to the app's output.
func (a *App) MissionAdapter() *cliadapter.MissionAdapter {
	return cliadapter.NewMissionAdapter(a.Registry, a.out)
}

// Board returns a display board writing to the app's output. Frames are
// redrawn in place only when redraw is set and the output is a terminal.
func (a *App) Board(redraw bool) *cliadapter.Board {
	return cliadapter.NewBoard(a.out, cliadapter.BoardOptions{
		WarnWithin: a.Config.WarnWithin,
		Redraw:     redraw && cliadapter.IsTerminal(a.out),
		NoColor:    a.Config.NoColor,
	})
}

// Scheduler returns an idle scheduler over the registry whose cycles
// flush the given board. board may be nil.
func (a *App) Scheduler(board *cliadapter.Board) (*app.Scheduler, error) {
	opts := app.SchedulerOptions{
		Interval: a.Config.TickInterval,
		Style:    a.Style(),
		Logger:   a.Logger,
	}
	if board != nil {
		opts.OnCycle = board.Flush
	}
	return app.NewScheduler(a.Registry, a.Clock, opts)
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.ownsDB {
		return db.Close()
	}
	return nil
}

// MissionStore opens the SQLite mission store at cfg.DBPath (or the default path).
func MissionStore(cfg *config.Config) (secondary.MissionStore, error) {
	db.SetPath(cfg.DBPath)
	conn, err := db.GetDB()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	label := cfg.DBPath
	if label == "" {
		if label, err = db.GetDBPath(); err != nil {
			label = "sqlite"
		}
	}
	return sqlite.NewMissionRepository(conn, label), nil
}

// SessionLauncher returns the tmux launcher for the board session.
func SessionLauncher() (secondary.SessionLauncher, error) {
	adapter, err := tmux.NewGotmuxAdapter()
	if err != nil {
		return nil, err
	}
	return adapter, nil
}
