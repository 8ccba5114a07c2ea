package mission

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Source dates carry no time of day; every date is anchored at 23:59 local.
const (
	EndOfDayHour   = 23
	EndOfDayMinute = 59
)

// Accepted years. Elapsed and remaining are time.Durations, which saturate
// at about 292 years; this window keeps both the span and the distance from
// any present-day clock well inside that.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Endpoint is one end of a mission interval: either a calendar date that
// still needs a location to become absolute, or an absolute Instant.
type Endpoint interface {
	Resolve(loc *time.Location) (time.Time, error)
}

// Instant is an already-absolute point in time.
type Instant time.Time

// Resolve returns the instant unchanged; loc is ignored.
func (i Instant) Resolve(*time.Location) (time.Time, error) {
	return time.Time(i), nil
}

// Unix builds an Instant from seconds since the Unix epoch.
func Unix(sec int64) Instant {
	return Instant(time.Unix(sec, 0))
}

// CalendarDate is a wall-clock moment with minute precision.
type CalendarDate struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

func (c CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d %02d:%02d", c.Day, c.Month, c.Year, c.Hour, c.Minute)
}

// Validate reports whether every field is in range. time.Date would
// normalise 31-02 into March; we refuse instead.
func (c CalendarDate) Validate() error {
	if reason := c.outOfRange(); reason != "" {
		return &DateError{Input: c.String(), Reason: reason}
	}
	return nil
}

func (c CalendarDate) outOfRange() string {
	switch {
	case c.Year < MinYear || c.Year > MaxYear:
		return fmt.Sprintf("year %d out of range %d-%d", c.Year, MinYear, MaxYear)
	case c.Month < 1 || c.Month > 12:
		return fmt.Sprintf("month %d out of range 1-12", c.Month)
	case c.Day < 1 || c.Day > daysIn(time.Month(c.Month), c.Year):
		return fmt.Sprintf("day %d out of range for %s %d", c.Day, time.Month(c.Month), c.Year)
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Sprintf("hour %d out of range 0-23", c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Sprintf("minute %d out of range 0-59", c.Minute)
	}
	return ""
}

// Resolve converts the date into an absolute instant using loc's zone rules.
// A nil loc means the host's local zone.
func (c CalendarDate) Resolve(loc *time.Location) (time.Time, error) {
	if err := c.Validate(); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, 0, 0, loc), nil
}

// ParseDate parses a DD-MM-YYYY source date and anchors it at 23:59.
func ParseDate(s string) (CalendarDate, error) {
	fields := strings.Split(strings.TrimSpace(s), "-")
	if len(fields) != 3 {
		return CalendarDate{}, &DateError{Input: s, Reason: "want DD-MM-YYYY"}
	}

	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return CalendarDate{}, &DateError{Input: s, Reason: fmt.Sprintf("%q is not a number", f)}
		}
		nums[i] = n
	}

	date := CalendarDate{
		Day:    nums[0],
		Month:  nums[1],
		Year:   nums[2],
		Hour:   EndOfDayHour,
		Minute: EndOfDayMinute,
	}
	if reason := date.outOfRange(); reason != "" {
		return CalendarDate{}, &DateError{Input: s, Reason: reason}
	}
	return date, nil
}

func daysIn(m time.Month, year int) int {
	// Day 0 of the following month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
