package redis

import (
	"context"
	"fmt"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine/repository"
)

// Assignments live in one hash keyed by normalized task name, separate
// from any session so they survive day rollovers.

func (r *implRepository) SetAssignee(ctx context.Context, taskName, userID string) error {
	norm := model.NormalizeTaskName(taskName)
	if norm == "" {
		return fmt.Errorf("task name is empty")
	}

	var err error
	if userID == "" {
		err = r.client.HDel(ctx, keyAssignments, norm).Err()
	} else {
		err = r.client.HSet(ctx, keyAssignments, norm, userID).Err()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return nil
}

func (r *implRepository) GetAssignments(ctx context.Context) (map[string]string, error) {
	assignments, err := r.client.HGetAll(ctx, keyAssignments).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	return assignments, nil
}
