package routine

import (
	"context"
	"time"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/pkg/gcalendar"
	"slack-routine-bot/pkg/slack"
)

// UseCase is the routine engine: daily checklist construction, session
// lifecycle, completion recording and the reminder evaluator.
type UseCase interface {
	// BuildChecklist selects and groups the tasks applicable to now's
	// weekday. dayOverride simulates another weekday (debug runs).
	BuildChecklist(ctx context.Context, mode model.Mode, now time.Time, dayOverride string) (Checklist, error)

	// OpenSession posts the day's checklist and replaces the mode's session
	// with a fresh one anchored to the new message. Called once per weekday
	// by the external scheduler, and on demand in debug mode.
	OpenSession(ctx context.Context, mode model.Mode, now time.Time, dayOverride string) (OpenSessionOutput, error)

	// RecordTaskDone resolves a task reference in text and records its
	// completion against the mode's current session.
	RecordTaskDone(ctx context.Context, sc model.Scope, mode model.Mode, text string, now time.Time) (RecordResult, error)

	// ResolveMode decides which mode an inbound event targets by its thread
	// anchor and returns the anchor replies should go to. Unknown anchors
	// default to production.
	ResolveMode(ctx context.Context, threadTS string) (model.Mode, string)

	// ComputeOutstanding derives the still-open and overdue tasks for the
	// reminder run. An empty result means "send nothing".
	ComputeOutstanding(ctx context.Context, mode model.Mode, now time.Time) (Outstanding, error)

	// FindTask looks a task up by a case-insensitive name fragment.
	FindTask(ctx context.Context, fragment string) (model.TaskDefinition, error)

	// Assign sets a task's assignee by name; an empty userID clears it.
	Assign(ctx context.Context, taskName, userID string) error

	// CreateTask adds a catalog entry (administrative surface).
	CreateTask(ctx context.Context, def model.TaskDefinition) (model.TaskDefinition, error)
}

// ChatClient is the narrow slice of the chat platform the engine needs:
// post a message and get back its thread anchor.
type ChatClient interface {
	PostMessage(ctx context.Context, req slack.PostMessageRequest) (string, error)
}

// CalendarMirror mirrors deadline tasks into an external calendar.
// Optional; a nil mirror disables the feature.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
