package usecase

import (
	"context"
	"time"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
)

func (uc *implUseCase) ComputeOutstanding(ctx context.Context, mode model.Mode, now time.Time) (routine.Outstanding, error) {
	cl, err := uc.BuildChecklist(ctx, mode, now, "")
	if err != nil {
		return routine.Outstanding{}, err
	}

	// Read failures degrade to "nothing completed yet": a reminder that
	// repeats a finished task beats one that never arrives.
	completions, err := uc.sessions.GetCompletions(ctx, mode)
	if err != nil {
		uc.l.Errorf(ctx, "routine: completions unavailable, degrading to empty: %v", err)
		completions = map[string]model.Completion{}
	}

	nowCT := uc.clock.HourMinute(now)
	var out routine.Outstanding

	for _, t := range cl.Flatten() {
		if _, done := completions[model.NormalizeTaskName(t.Name)]; done {
			continue
		}

		if t.Deadline == nil {
			out.Pending = append(out.Pending, t)
			continue
		}

		// At the cutoff-hour run, late-period tasks are suppressed
		// entirely: the early-afternoon reminder should not nag about
		// evening work.
		if nowCT.Hour == uc.reminder.CutoffHour && t.Deadline.Hour >= uc.reminder.LateBoundaryHour {
			continue
		}

		if nowCT.After(*t.Deadline) {
			out.Overdue = append(out.Overdue, t)
		} else {
			out.Pending = append(out.Pending, t)
		}
	}

	sortByDeadline(out.Overdue)
	sortByDeadline(out.Pending)

	return out, nil
}
