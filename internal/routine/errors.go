package routine

import "errors"

// Domain-specific errors for the routine package.
var (
	ErrNoTaskMatch      = errors.New("no known task referenced in text")
	ErrStoreWriteFailed = errors.New("failed to persist routine state")
	ErrTaskNotFound     = errors.New("task not found in catalog")
	ErrTaskNameTaken    = errors.New("task name already exists in catalog")
	ErrEmptyTaskName    = errors.New("task name is empty")
)
