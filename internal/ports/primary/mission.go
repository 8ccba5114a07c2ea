// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"errors"
	"fmt"

	coremission "github.com/example/mclock/internal/core/mission"
)

// ErrMalformedRecord marks a source record that does not have exactly
// three fields.
var ErrMalformedRecord = errors.New("malformed mission record")

// ParsePolicy decides what happens to a bad record.
type ParsePolicy string

const (
	// PolicyPermissive skips bad records and reports them in LoadResult.Skipped.
	PolicyPermissive ParsePolicy = "permissive"
	// PolicyStrict fails the whole load on the first bad record.
	PolicyStrict ParsePolicy = "strict"
)

// ParseParsePolicy converts a config value into a ParsePolicy.
// The empty string selects PolicyPermissive.
func ParseParsePolicy(s string) (ParsePolicy, error) {
	switch ParsePolicy(s) {
	case "", PolicyPermissive:
		return PolicyPermissive, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown parse policy %q (want %q or %q)", s, PolicyPermissive, PolicyStrict)
	}
}

// RecordError describes one record that could not become a mission.
// It unwraps to ErrMalformedRecord or to the core date/interval error.
type RecordError struct {
	Source string
	Line   int
	Raw    string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v (record %q)", e.Source, e.Line, e.Err, e.Raw)
}

func (e *RecordError) Unwrap() error { return e.Err }

// LoadResult is the outcome of loading a mission source.
type LoadResult struct {
	// Missions in urgency order: least remaining time first.
	Missions []*coremission.Mission
	// Skipped holds the records dropped under the permissive policy.
	Skipped []*RecordError
}

// MissionRegistry loads missions and owns them for the process lifetime.
type MissionRegistry interface {
	// Load reads the source once, builds every mission, refreshes them
	// against the current time and orders them by urgency.
	Load(ctx context.Context) (*LoadResult, error)

	// Missions returns the missions from the last Load, in urgency order.
	Missions() []*coremission.Mission

	// Lookup finds a loaded mission by id.
	Lookup(id string) (*coremission.Mission, bool)
}
