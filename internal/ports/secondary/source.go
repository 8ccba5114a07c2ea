// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"errors"
)

// ErrSourceUnavailable is wrapped by every source adapter when the
// underlying file or database cannot be opened or read.
var ErrSourceUnavailable = errors.New("mission source unavailable")

// MissionRecord is one raw record from a mission source, before any parsing.
type MissionRecord struct {
	Line   int      // 1-based position in the source
	Raw    string   // original text, for diagnostics
	Fields []string // name, start date, end date when well formed
}

// MissionSource yields mission records in source order.
// A source is read once, synchronously, at startup.
type MissionSource interface {
	// Records returns every record. Blank and comment lines are not records.
	// An error means the source itself could not be read.
	Records(ctx context.Context) ([]MissionRecord, error)

	// Describe names the source for logs and error messages.
	Describe() string
}
