package mission

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// DateLayout is the display layout for mission start and end dates (DD/MM/YY).
const DateLayout = "02/01/06"

// NegativeStyle selects how a negative duration is rendered.
type NegativeStyle string

const (
	// NegativeSign prefixes the magnitude with a single '-'.
	NegativeSign NegativeStyle = "sign"
	// NegativeClamp renders any negative duration as zero.
	NegativeClamp NegativeStyle = "clamp"
)

// ParseNegativeStyle converts a config value into a NegativeStyle.
// The empty string selects NegativeSign.
func ParseNegativeStyle(s string) (NegativeStyle, error) {
	switch NegativeStyle(s) {
	case "", NegativeSign:
		return NegativeSign, nil
	case NegativeClamp:
		return NegativeClamp, nil
	default:
		return "", fmt.Errorf("unknown negative style %q (want %q or %q)", s, NegativeSign, NegativeClamp)
	}
}

// Parts is a duration split into days, hours, minutes and seconds.
// The components always describe the magnitude; Negative carries the sign.
type Parts struct {
	Negative bool
	Days     int64
	Hours    int64
	Minutes  int64
	Seconds  int64
}

// Decompose splits d into whole days, hours, minutes and seconds.
// Fractional seconds are truncated toward zero, so -1.5s becomes -1s and
// -0.5s becomes zero (not negative).
func Decompose(d time.Duration) Parts {
	secs := int64(d / time.Second)

	var p Parts
	if secs < 0 {
		p.Negative = true
		secs = -secs
	}

	p.Days = secs / secondsPerDay
	secs -= p.Days * secondsPerDay
	p.Hours = secs / secondsPerHour
	secs -= p.Hours * secondsPerHour
	p.Minutes = secs / secondsPerMinute
	p.Seconds = secs - p.Minutes*secondsPerMinute

	return p
}

// TotalSeconds recombines the parts into a signed number of seconds.
func (p Parts) TotalSeconds() int64 {
	total := p.Days*secondsPerDay + p.Hours*secondsPerHour + p.Minutes*secondsPerMinute + p.Seconds
	if p.Negative {
		return -total
	}
	return total
}

// FormatDuration renders d as D:HH:MM:SS with a leading '-' when negative.
//
//	FormatDuration(90061 * time.Second) == "1:01:01:01"
func FormatDuration(d time.Duration) string {
	return FormatDurationStyle(d, NegativeSign)
}

// FormatDurationStyle renders d as D:HH:MM:SS using the given negative style.
func FormatDurationStyle(d time.Duration, style NegativeStyle) string {
	p := Decompose(d)
	if p.Negative && style == NegativeClamp {
		p = Parts{}
	}

	sign := ""
	if p.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d:%02d:%02d:%02d", sign, p.Days, p.Hours, p.Minutes, p.Seconds)
}

// FormatDate renders t as DD/MM/YY in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
