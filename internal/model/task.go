package model

import (
	"strings"

	"slack-routine-bot/pkg/daytime"
)

// Period groups a task into a section of the daily checklist.
type Period string

const (
	PeriodNone    Period = ""
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

// DaysAll marks a task as applicable every weekday.
const DaysAll = "all"

// TaskDefinition is one catalog entry describing a routine task.
// Name is the human-facing match key and must be unique in the catalog
// case-insensitively.
type TaskDefinition struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Deadline *daytime.ClockTime `json:"deadline,omitempty"`
	Days     []string           `json:"days,omitempty"` // empty means "all"
	Period   Period             `json:"period,omitempty"`
	AsanaURL string             `json:"asana_url,omitempty"`
	Comments string             `json:"comments,omitempty"`
	Assignee string             `json:"assignee,omitempty"`
}

// AppliesTo reports whether the task runs on the given canonical weekday
// name ("Monday").
func (t TaskDefinition) AppliesTo(weekday string) bool {
	if len(t.Days) == 0 {
		return true
	}
	for _, d := range t.Days {
		if d == DaysAll || strings.EqualFold(d, weekday) {
			return true
		}
	}
	return false
}

// SortDeadline returns the deadline used for ordering only: tasks without
// a deadline sort last via the end-of-day placeholder.
func (t TaskDefinition) SortDeadline() daytime.ClockTime {
	if t.Deadline == nil {
		return daytime.EndOfDay
	}
	return *t.Deadline
}

// NormalizeTaskName is the canonical form used as completion-map and
// assignment key.
func NormalizeTaskName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
