package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/mclock/internal/ports/primary"
	"github.com/example/mclock/internal/ports/secondary"
)

// ImportResult is the outcome of copying a mission source into a store.
type ImportResult struct {
	Imported int
	Skipped  []*primary.RecordError
}

// ImportMissions validates every record of source the way Registry.Load
// does and replaces the store's contents with the valid ones, in source
// order. Under PolicyStrict the first bad record aborts the import and the
// store is left untouched.
func ImportMissions(ctx context.Context, source secondary.MissionSource, store secondary.MissionStore, policy primary.ParsePolicy, logger *slog.Logger) (*ImportResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	records, err := source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read import source: %w", err)
	}

	result := &ImportResult{}
	defs := make([]secondary.MissionDefinition, 0, len(records))
	for i, rec := range records {
		// Validation only; the store keeps the original date text.
		if _, err := buildMission(rec, i+1, nil); err != nil {
			recErr := &primary.RecordError{
				Source: source.Describe(),
				Line:   rec.Line,
				Raw:    rec.Raw,
				Err:    err,
			}
			if policy == primary.PolicyStrict {
				return nil, recErr
			}
			logger.Warn("skipping mission record", "source", recErr.Source, "line", recErr.Line, "error", err)
			result.Skipped = append(result.Skipped, recErr)
			continue
		}
		defs = append(defs, secondary.MissionDefinition{
			Name:      rec.Fields[0],
			StartDate: rec.Fields[1],
			EndDate:   rec.Fields[2],
		})
	}

	if err := store.Replace(ctx, defs); err != nil {
		return nil, fmt.Errorf("failed to store missions: %w", err)
	}
	result.Imported = len(defs)

	logger.Info("missions imported", "source", source.Describe(), "imported", result.Imported, "skipped", len(result.Skipped))
	return result, nil
}
