package repository

import "errors"

// Sentinel errors shared by all repository implementations.
var (
	ErrSessionNotFound  = errors.New("no session exists for mode")
	ErrStaleSession     = errors.New("session covers a prior date")
	ErrAlreadyCompleted = errors.New("task already completed in session")
	ErrWriteFailed      = errors.New("store write failed")
)
