// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	coremission "github.com/example/mclock/internal/core/mission"
	"github.com/example/mclock/internal/ports/primary"
)

// MissionAdapter is a thin adapter that translates CLI operations to
// MissionRegistry calls.
type MissionAdapter struct {
	registry primary.MissionRegistry
	out      io.Writer
}

// NewMissionAdapter creates a new MissionAdapter with the given registry.
func NewMissionAdapter(registry primary.MissionRegistry, out io.Writer) *MissionAdapter {
	return &MissionAdapter{
		registry: registry,
		out:      out,
	}
}

// Load loads the registry and reports every skipped record.
func (a *MissionAdapter) Load(ctx context.Context) (*primary.LoadResult, error) {
	result, err := a.registry.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range result.Skipped {
		fmt.Fprintf(a.out, "⚠ Skipped %s line %d: %v\n", rec.Source, rec.Line, rec.Err)
	}
	if len(result.Missions) == 0 {
		fmt.Fprintln(a.out, "No missions found")
	}
	return result, nil
}

// Show displays details for a single loaded mission.
func (a *MissionAdapter) Show(missionID string, now time.Time, style coremission.NegativeStyle) (*coremission.Mission, error) {
	m, ok := a.registry.Lookup(coremission.NormalizeID(missionID))
	if !ok {
		return nil, fmt.Errorf("failed to get mission: %w: %s", primary.ErrUnknownMission, missionID)
	}

	faces := m.Render(now, style)
	fmt.Fprintf(a.out, "\nMission:   %s\n", m.ID())
	fmt.Fprintf(a.out, "Name:      %s\n", m.Name())
	fmt.Fprintf(a.out, "Status:    %s\n", m.Status())
	fmt.Fprintf(a.out, "Start:     %s\n", faces.Start)
	fmt.Fprintf(a.out, "End:       %s\n", faces.End)
	fmt.Fprintf(a.out, "Elapsed:   %s\n", faces.Elapsed)
	fmt.Fprintf(a.out, "Remaining: %s\n", faces.Remaining)
	fmt.Fprintf(a.out, "Progress:  %.0f%%\n", m.Progress()*100)
	fmt.Fprintln(a.out)

	return m, nil
}
