package repository

import (
	"context"

	"slack-routine-bot/internal/model"
)

// CatalogRepository is read-mostly access to the task catalog.
type CatalogRepository interface {
	// ListTasks returns all catalog entries. Malformed entries are skipped
	// individually during decoding, never aborting the whole load.
	ListTasks(ctx context.Context) ([]model.TaskDefinition, error)

	// SaveTask inserts or replaces one catalog entry by id.
	SaveTask(ctx context.Context, def model.TaskDefinition) error
}

// SessionRepository is the per-mode daily session store. Each mode owns an
// entirely independent record.
type SessionRepository interface {
	// OpenSession unconditionally replaces the mode's session with a fresh
	// one covering date, anchored to threadTS, with no completions.
	OpenSession(ctx context.Context, mode model.Mode, threadTS, date string) error

	// GetSession returns the mode's current session, or ErrSessionNotFound.
	GetSession(ctx context.Context, mode model.Mode) (model.Session, error)

	// RecordCompletion atomically records a completion: the load-check-
	// mutate-save cycle runs under a compare-and-swap so concurrent
	// completions for different tasks cannot lose each other. Fails with
	// ErrSessionNotFound / ErrStaleSession when no session covers date, and
	// ErrAlreadyCompleted when the task is already in the completion map.
	RecordCompletion(ctx context.Context, mode model.Mode, taskName string, completion model.Completion, date string) error

	// GetCompletions returns the mode's completion map keyed by normalized
	// task name. A missing session yields an empty map.
	GetCompletions(ctx context.Context, mode model.Mode) (map[string]model.Completion, error)
}

// AssignmentRepository is the task → assignee overlay. It persists across
// days, independent of sessions.
type AssignmentRepository interface {
	// SetAssignee maps a normalized task name to a user; an empty userID
	// clears the mapping.
	SetAssignee(ctx context.Context, taskName, userID string) error

	// GetAssignments returns the full overlay keyed by normalized task name.
	GetAssignments(ctx context.Context) (map[string]string, error)
}
