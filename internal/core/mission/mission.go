package mission

import (
	"fmt"
	"strings"
	"time"
)

// Times is the result of a refresh: the absolute bounds and the durations
// derived from them at one reading of the clock.
type Times struct {
	Start     time.Time
	End       time.Time
	Elapsed   time.Duration
	Remaining time.Duration
}

// Faces holds the four rendered strings shown for a mission.
type Faces struct {
	Start     string
	Elapsed   string
	Remaining string
	End       string
}

// Mission is a named interval being counted through.
// Only Refresh mutates it; all other methods are read-only.
type Mission struct {
	id   string
	name string
	loc  *time.Location

	start time.Time
	end   time.Time

	elapsed   time.Duration
	remaining time.Duration
	refreshed time.Time
}

// New constructs a mission. Calendar endpoints are resolved in loc
// (nil means the host's local zone).
func New(id, name string, start, end Endpoint, loc *time.Location) (*Mission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if loc == nil {
		loc = time.Local
	}

	startAt, err := start.Resolve(loc)
	if err != nil {
		return nil, fmt.Errorf("start of %s: %w", name, err)
	}
	endAt, err := end.Resolve(loc)
	if err != nil {
		return nil, fmt.Errorf("end of %s: %w", name, err)
	}
	if err := checkYear(startAt.In(loc)); err != nil {
		return nil, fmt.Errorf("start of %s: %w", name, err)
	}
	if err := checkYear(endAt.In(loc)); err != nil {
		return nil, fmt.Errorf("end of %s: %w", name, err)
	}
	if !startAt.Before(endAt) {
		return nil, fmt.Errorf("%s (%s to %s): %w", name, FormatDate(startAt.In(loc)), FormatDate(endAt.In(loc)), ErrInvalidInterval)
	}

	return &Mission{
		id:    id,
		name:  name,
		loc:   loc,
		start: startAt,
		end:   endAt,
	}, nil
}

// checkYear applies the calendar year window to absolute endpoints too.
func checkYear(t time.Time) error {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return &DateError{
			Input:  t.Format(time.RFC3339),
			Reason: fmt.Sprintf("year %d out of range %d-%d", y, MinYear, MaxYear),
		}
	}
	return nil
}

// Refresh recomputes elapsed and remaining against now.
// Invariant: Elapsed + Remaining == End - Start.
func (m *Mission) Refresh(now time.Time) Times {
	m.elapsed = now.Sub(m.start)
	m.remaining = m.end.Sub(now)
	m.refreshed = now
	return m.Times()
}

// Render refreshes the mission and formats the result.
func (m *Mission) Render(now time.Time, style NegativeStyle) Faces {
	t := m.Refresh(now)
	return Faces{
		Start:     FormatDate(t.Start.In(m.loc)),
		Elapsed:   FormatDurationStyle(t.Elapsed, style),
		Remaining: FormatDurationStyle(t.Remaining, style),
		End:       FormatDate(t.End.In(m.loc)),
	}
}

// Times returns the values computed by the most recent Refresh.
func (m *Mission) Times() Times {
	return Times{
		Start:     m.start,
		End:       m.end,
		Elapsed:   m.elapsed,
		Remaining: m.remaining,
	}
}

func (m *Mission) ID() string               { return m.id }
func (m *Mission) Name() string             { return m.name }
func (m *Mission) Start() time.Time         { return m.start }
func (m *Mission) End() time.Time           { return m.end }
func (m *Mission) Elapsed() time.Duration   { return m.elapsed }
func (m *Mission) Remaining() time.Duration { return m.remaining }
func (m *Mission) Length() time.Duration    { return m.end.Sub(m.start) }
func (m *Mission) RefreshedAt() time.Time   { return m.refreshed }
func (m *Mission) Status() MissionStatus    { return StatusOf(m.Times()) }
func (m *Mission) Location() *time.Location { return m.loc }

// Progress is the elapsed fraction of the interval, clamped to [0, 1].
func (m *Mission) Progress() float64 {
	p := float64(m.elapsed) / float64(m.Length())
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (m *Mission) String() string {
	return fmt.Sprintf("Mission(%s %q Start: %s End: %s)",
		m.id, m.name,
		m.start.In(m.loc).Format(time.ANSIC),
		m.end.In(m.loc).Format(time.ANSIC))
}
