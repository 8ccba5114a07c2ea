package secondary

import "context"

// MissionDefinition is a mission as stored: a name and two DD-MM-YYYY dates.
// Only definitions are stored; elapsed and remaining are never persisted.
type MissionDefinition struct {
	Name      string
	StartDate string
	EndDate   string
}

// MissionStore is a database-backed MissionSource that can be (re)populated.
type MissionStore interface {
	MissionSource

	// Replace swaps the stored definitions for defs in one transaction.
	Replace(ctx context.Context, defs []MissionDefinition) error

	// Count returns the number of stored definitions.
	Count(ctx context.Context) (int, error)
}
