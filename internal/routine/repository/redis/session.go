package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine/repository"
)

// casAttempts bounds the optimistic-transaction retry on concurrent
// writers. Conflicts are rare (a handful of humans per day), so a small
// bound is plenty.
const casAttempts = 3

func (r *implRepository) OpenSession(ctx context.Context, mode model.Mode, threadTS, date string) error {
	session := model.Session{
		Date:      date,
		ThreadTS:  threadTS,
		Completed: map[string]model.Completion{},
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, stateKey(mode), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, mode model.Mode) (model.Session, error) {
	raw, err := r.client.Get(ctx, stateKey(mode)).Bytes()
	if err == goredis.Nil {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.Session{}, fmt.Errorf("session record is corrupt: %w", err)
	}
	if session.Completed == nil {
		session.Completed = map[string]model.Completion{}
	}
	return session, nil
}

// RecordCompletion runs the load-check-mutate-save cycle under a WATCH
// transaction, so two near-simultaneous completions for different tasks
// both land instead of the later save clobbering the earlier one.
func (r *implRepository) RecordCompletion(ctx context.Context, mode model.Mode, taskName string, completion model.Completion, date string) error {
	key := stateKey(mode)
	norm := model.NormalizeTaskName(taskName)

	txn := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err == goredis.Nil {
			return repository.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		var session model.Session
		if err := json.Unmarshal(raw, &session); err != nil {
			return fmt.Errorf("session record is corrupt: %w", err)
		}

		if !session.CoversDate(date) {
			return repository.ErrStaleSession
		}
		if session.Completed == nil {
			session.Completed = map[string]model.Completion{}
		}
		if _, done := session.Completed[norm]; done {
			return repository.ErrAlreadyCompleted
		}

		session.Completed[norm] = completion

		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < casAttempts; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			// Another writer got in between; reload and try again.
			continue
		}
		if errors.Is(err, repository.ErrSessionNotFound) ||
			errors.Is(err, repository.ErrStaleSession) ||
			errors.Is(err, repository.ErrAlreadyCompleted) {
			return err
		}
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return fmt.Errorf("%w: gave up after %d contended attempts", repository.ErrWriteFailed, casAttempts)
}

func (r *implRepository) GetCompletions(ctx context.Context, mode model.Mode) (map[string]model.Completion, error) {
	session, err := r.GetSession(ctx, mode)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return map[string]model.Completion{}, nil
	}
	if err != nil {
		return nil, err
	}
	return session.Completed, nil
}
