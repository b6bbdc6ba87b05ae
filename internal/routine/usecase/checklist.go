package usecase

import (
	"context"
	"time"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/daytime"
)

func (uc *implUseCase) BuildChecklist(ctx context.Context, mode model.Mode, now time.Time, dayOverride string) (routine.Checklist, error) {
	weekday := uc.clock.Weekday(now)
	dateHeader := uc.clock.DateHeader(now)

	if dayOverride != "" {
		wd, ok := daytime.NormalizeWeekday(dayOverride)
		if !ok {
			uc.l.Warnf(ctx, "routine: ignoring unknown day override %q", dayOverride)
		} else {
			weekday = wd
			// The date part stays real; only the weekday is simulated.
			dateHeader = now.Format("02 January") + " (" + wd + ")"
		}
	}

	cl := routine.Checklist{
		Date:       uc.clock.Date(now),
		Weekday:    weekday,
		DateHeader: dateHeader,
	}

	tasks := uc.loadCatalog(ctx)
	if len(tasks) == 0 {
		return cl, nil
	}

	assignments, err := uc.assignments.GetAssignments(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "routine: assignments unavailable, omitting: %v", err)
		assignments = nil
	}

	for _, t := range tasks {
		if !t.AppliesTo(weekday) {
			continue
		}
		if user, ok := assignments[model.NormalizeTaskName(t.Name)]; ok {
			t.Assignee = user
		}

		switch t.Period {
		case model.PeriodMorning:
			cl.Morning = append(cl.Morning, t)
		case model.PeriodEvening:
			cl.Evening = append(cl.Evening, t)
		default:
			cl.Ungrouped = append(cl.Ungrouped, t)
		}
	}

	sortByDeadline(cl.Ungrouped)
	sortByDeadline(cl.Morning)
	sortByDeadline(cl.Evening)

	return cl, nil
}
