package daytime

import (
	"fmt"
	"time"
)

// Clock provides wall-clock readings pinned to one IANA timezone.
// Callers read the time once per logical operation and pass it down, so a
// single computation never straddles a clock tick.
type Clock struct {
	location *time.Location
}

// NewClock creates a Clock for the given IANA timezone string.
// e.g. "Europe/Riga"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc}, nil
}

// Now returns the current localized time.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.location)
}

// Date returns the ISO calendar date of t, e.g. "2026-08-30".
func (c *Clock) Date(t time.Time) string {
	return t.In(c.location).Format("2006-01-02")
}

// Weekday returns the English weekday name of t, e.g. "Friday".
func (c *Clock) Weekday(t time.Time) string {
	return t.In(c.location).Weekday().String()
}

// DateHeader returns t formatted for message headers, e.g. "30 August (Friday)".
func (c *Clock) DateHeader(t time.Time) string {
	return t.In(c.location).Format("02 January (Monday)")
}

// HourMinute returns t's time of day as a ClockTime.
func (c *Clock) HourMinute(t time.Time) ClockTime {
	lt := t.In(c.location)
	return ClockTime{Hour: lt.Hour(), Minute: lt.Minute()}
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func (c *Clock) IsWeekend(t time.Time) bool {
	wd := t.In(c.location).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Location exposes the pinned timezone, for calendar event payloads.
func (c *Clock) Location() *time.Location {
	return c.location
}
