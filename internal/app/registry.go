package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/example/mclock/internal/clock"
	coremission "github.com/example/mclock/internal/core/mission"
	"github.com/example/mclock/internal/ports/primary"
	"github.com/example/mclock/internal/ports/secondary"
)

// recordFields is the shape of a well-formed record: name, start, end.
const recordFields = 3

// RegistryOptions configures how records become missions.
type RegistryOptions struct {
	Policy   primary.ParsePolicy
	Location *time.Location // nil means host local time
	Logger   *slog.Logger
}

// Registry implements primary.MissionRegistry. It exclusively owns the
// loaded missions; order is fixed at load time and never re-sorted by the
// refresh loop.
type Registry struct {
	source secondary.MissionSource
	clock  clock.Clock
	policy primary.ParsePolicy
	loc    *time.Location
	logger *slog.Logger

	missions []*coremission.Mission
	byID     map[string]*coremission.Mission
}

// NewRegistry creates a Registry reading from source.
func NewRegistry(source secondary.MissionSource, clk clock.Clock, opts RegistryOptions) *Registry {
	if opts.Policy == "" {
		opts.Policy = primary.PolicyPermissive
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Registry{
		source: source,
		clock:  clk,
		policy: opts.Policy,
		loc:    opts.Location,
		logger: opts.Logger,
		byID:   make(map[string]*coremission.Mission),
	}
}

// Load reads every record, builds missions, refreshes them once against the
// clock and sorts them soonest-expiring first.
func (r *Registry) Load(ctx context.Context) (*primary.LoadResult, error) {
	records, err := r.source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}

	result := &primary.LoadResult{}
	missions := make([]*coremission.Mission, 0, len(records))

	for i, rec := range records {
		m, err := buildMission(rec, i+1, r.loc)
		if err != nil {
			recErr := &primary.RecordError{
				Source: r.source.Describe(),
				Line:   rec.Line,
				Raw:    rec.Raw,
				Err:    err,
			}
			if r.policy == primary.PolicyStrict {
				return nil, recErr
			}
			r.logger.Warn("skipping mission record",
				"source", recErr.Source,
				"line", recErr.Line,
				"error", err)
			result.Skipped = append(result.Skipped, recErr)
			continue
		}
		missions = append(missions, m)
	}

	now := r.clock.Now()
	for _, m := range missions {
		m.Refresh(now)
	}
	coremission.SortByUrgency(missions)

	r.missions = missions
	r.byID = make(map[string]*coremission.Mission, len(missions))
	for _, m := range missions {
		r.byID[m.ID()] = m
	}

	r.logger.Info("missions loaded",
		"source", r.source.Describe(),
		"loaded", len(missions),
		"skipped", len(result.Skipped))

	result.Missions = r.Missions()
	return result, nil
}

// buildMission turns one record into a mission. position is the record's
// 1-based index among records and becomes the mission id.
func buildMission(rec secondary.MissionRecord, position int, loc *time.Location) (*coremission.Mission, error) {
	if len(rec.Fields) != recordFields {
		return nil, fmt.Errorf("%w: got %d fields, want %d", primary.ErrMalformedRecord, len(rec.Fields), recordFields)
	}

	start, err := coremission.ParseDate(rec.Fields[1])
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := coremission.ParseDate(rec.Fields[2])
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	return coremission.New(coremission.GenerateMissionID(position), rec.Fields[0], start, end, loc)
}

// Missions returns the loaded missions in urgency order. The slice is a
// copy; the missions themselves are shared with the registry.
func (r *Registry) Missions() []*coremission.Mission {
	return slices.Clone(r.missions)
}

// Lookup finds a loaded mission by id.
func (r *Registry) Lookup(id string) (*coremission.Mission, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// Resort refreshes every mission at now and re-applies urgency order.
// The refresh loop never calls it; load-time order is kept for a run.
func (r *Registry) Resort(now time.Time) {
	for _, m := range r.missions {
		m.Refresh(now)
	}
	coremission.SortByUrgency(r.missions)
}
