package routine

import (
	"slack-routine-bot/internal/model"
)

// Checklist is one day's applicable tasks, grouped for presentation.
// Each group is sorted ascending by deadline; tasks without a deadline
// sort last.
type Checklist struct {
	Date       string // ISO date the checklist is for
	Weekday    string // canonical weekday name
	DateHeader string // human form, e.g. "30 August (Friday)"

	Ungrouped []model.TaskDefinition
	Morning   []model.TaskDefinition
	Evening   []model.TaskDefinition
}

// IsEmpty reports whether no task applies to the day.
func (c Checklist) IsEmpty() bool {
	return len(c.Ungrouped) == 0 && len(c.Morning) == 0 && len(c.Evening) == 0
}

// Flatten returns all tasks in presentation order.
func (c Checklist) Flatten() []model.TaskDefinition {
	out := make([]model.TaskDefinition, 0, len(c.Ungrouped)+len(c.Morning)+len(c.Evening))
	out = append(out, c.Ungrouped...)
	out = append(out, c.Morning...)
	out = append(out, c.Evening...)
	return out
}

// RecordStatus classifies the outcome of a completion attempt.
type RecordStatus string

const (
	StatusOnTime   RecordStatus = "on_time"
	StatusLate     RecordStatus = "late"
	StatusRejected RecordStatus = "rejected"
)

// RecordResult is the outcome of RecordTaskDone.
type RecordResult struct {
	Status RecordStatus
	Task   model.TaskDefinition // valid unless the text matched nothing
	Reason error                // set when Status is StatusRejected

	// ReactionNeeded is true when the completion deserves the checkmark
	// reaction (on time). Late completions get a notice reply instead.
	ReactionNeeded bool
}

// OpenSessionOutput is the result of opening a day's session.
type OpenSessionOutput struct {
	ThreadTS  string
	Checklist Checklist
	Message   string // the posted checklist text
}

// Outstanding is the reminder evaluator's result: tasks not yet completed,
// split by whether their deadline has passed. Both slices are sorted
// ascending by deadline.
type Outstanding struct {
	Overdue []model.TaskDefinition
	Pending []model.TaskDefinition
}

// IsEmpty means there is nothing to remind about; callers must not send a
// message in that case.
func (o Outstanding) IsEmpty() bool {
	return len(o.Overdue) == 0 && len(o.Pending) == 0
}
