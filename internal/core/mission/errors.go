package mission

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when a calendar date is out of range or unparseable.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInterval is returned when a mission does not start before it ends.
	ErrInvalidInterval = errors.New("mission must start before it ends")

	// ErrEmptyName is returned when a mission has no display name.
	ErrEmptyName = errors.New("mission name must not be empty")
)

// DateError describes a calendar date that could not be turned into an instant.
type DateError struct {
	Input  string
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}

func (e *DateError) Unwrap() error { return ErrInvalidDate }
