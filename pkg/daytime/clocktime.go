package daytime

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a time of day without a date, as used for task deadlines.
type ClockTime struct {
	Hour   int
	Minute int
}

// EndOfDay is the ordering placeholder for tasks without a deadline.
// It is used for sorting only, never for lateness checks.
var EndOfDay = ClockTime{Hour: 23, Minute: 59}

// ParseClockTime parses "HH:MM" into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// String renders the time as "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the minute-of-day, for ordering.
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t ClockTime) Before(other ClockTime) bool {
	return t.Minutes() < other.Minutes()
}

// After reports whether t is strictly later than other.
func (t ClockTime) After(other ClockTime) bool {
	return t.Minutes() > other.Minutes()
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// NormalizeWeekday maps a weekday name in any casing to its canonical
// English form ("monday" → "Monday"). ok is false for unknown names.
func NormalizeWeekday(name string) (string, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return wd.String(), true
}
