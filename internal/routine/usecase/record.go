package usecase

import (
	"context"
	"errors"
	"time"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/internal/routine/repository"
)

func (uc *implUseCase) RecordTaskDone(ctx context.Context, sc model.Scope, mode model.Mode, text string, now time.Time) (routine.RecordResult, error) {
	tasks := uc.loadCatalog(ctx)

	task, ok := matchTaskInText(tasks, text)
	if !ok {
		return routine.RecordResult{
			Status: routine.StatusRejected,
			Reason: routine.ErrNoTaskMatch,
		}, nil
	}

	completion := model.Completion{
		User: sc.UserID,
		Time: uc.clock.HourMinute(now).String(),
	}

	err := uc.sessions.RecordCompletion(ctx, mode, task.Name, completion, uc.clock.Date(now))
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrSessionNotFound), errors.Is(err, repository.ErrStaleSession):
		return routine.RecordResult{
			Status: routine.StatusRejected,
			Task:   task,
			Reason: repository.ErrStaleSession,
		}, nil
	case errors.Is(err, repository.ErrAlreadyCompleted):
		return routine.RecordResult{
			Status: routine.StatusRejected,
			Task:   task,
			Reason: repository.ErrAlreadyCompleted,
		}, nil
	default:
		// A failed write must reach the caller: the user cannot be
		// acknowledged when we do not know whether the state stuck.
		uc.l.Errorf(ctx, "routine: record completion for %q failed: %v", task.Name, err)
		return routine.RecordResult{}, errors.Join(routine.ErrStoreWriteFailed, err)
	}

	uc.l.Infof(ctx, "routine: %s completed %q in %s mode at %s", sc.UserID, task.Name, mode, completion.Time)

	if task.Deadline == nil {
		return routine.RecordResult{Status: routine.StatusOnTime, Task: task, ReactionNeeded: true}, nil
	}

	// Boundary is inclusive: completing at the deadline minute is on time.
	if uc.clock.HourMinute(now).After(*task.Deadline) {
		return routine.RecordResult{Status: routine.StatusLate, Task: task}, nil
	}
	return routine.RecordResult{Status: routine.StatusOnTime, Task: task, ReactionNeeded: true}, nil
}

// ResolveMode maps an inbound event's thread anchor to the session it
// targets. Debug wins on exact match, production on exact match, anything
// else defaults to production with its anchor so replies never float
// outside the tracked thread when one exists.
func (uc *implUseCase) ResolveMode(ctx context.Context, threadTS string) (model.Mode, string) {
	debugAnchor := uc.threadAnchor(ctx, model.ModeDebug)
	prodAnchor := uc.threadAnchor(ctx, model.ModeProduction)

	if threadTS != "" && threadTS == debugAnchor {
		return model.ModeDebug, debugAnchor
	}
	if threadTS != "" && threadTS == prodAnchor {
		return model.ModeProduction, prodAnchor
	}
	return model.ModeProduction, prodAnchor
}

func (uc *implUseCase) threadAnchor(ctx context.Context, mode model.Mode) string {
	session, err := uc.sessions.GetSession(ctx, mode)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			uc.l.Warnf(ctx, "routine: reading %s session anchor: %v", mode, err)
		}
		return ""
	}
	return session.ThreadTS
}
