// Package mission contains the pure business logic for mission clocks.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

import "time"

// MissionStatus is where a mission sits relative to the current time.
type MissionStatus string

const (
	StatusPending MissionStatus = "pending" // not yet begun
	StatusActive  MissionStatus = "active"
	StatusExpired MissionStatus = "expired"
)

// StatusOf derives the status from refreshed times.
// A mission whose remaining time is exactly zero has expired.
func StatusOf(t Times) MissionStatus {
	switch {
	case t.Elapsed < 0:
		return StatusPending
	case t.Remaining <= 0:
		return StatusExpired
	default:
		return StatusActive
	}
}

// UrgencyBand buckets a mission for display colouring.
type UrgencyBand int

const (
	BandRelaxed  UrgencyBand = iota // more than the warn threshold left
	BandWarning                     // within the warn threshold
	BandCritical                    // within a day
	BandExpired
)

// DefaultWarnWithin is the usual BandWarning threshold.
const DefaultWarnWithin = 7 * 24 * time.Hour

// BandOf returns the urgency band for the remaining duration.
func BandOf(remaining, warnWithin time.Duration) UrgencyBand {
	switch {
	case remaining <= 0:
		return BandExpired
	case remaining <= 24*time.Hour:
		return BandCritical
	case remaining <= warnWithin:
		return BandWarning
	default:
		return BandRelaxed
	}
}
