package usecase

import (
	"context"
	"fmt"
	"time"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/gcalendar"
	"slack-routine-bot/pkg/slack"
)

func (uc *implUseCase) OpenSession(ctx context.Context, mode model.Mode, now time.Time, dayOverride string) (routine.OpenSessionOutput, error) {
	cl, err := uc.BuildChecklist(ctx, mode, now, dayOverride)
	if err != nil {
		return routine.OpenSessionOutput{}, err
	}

	message := uc.formatter.FormatDaily(cl, mode)

	ts, err := uc.chat.PostMessage(ctx, slack.PostMessageRequest{
		Channel: uc.channelID,
		Text:    message,
	})
	if err != nil {
		return routine.OpenSessionOutput{}, fmt.Errorf("failed to post checklist: %w", err)
	}

	// The new anchor replaces the previous session wholesale: fresh date,
	// fresh thread, empty completion map.
	if err := uc.sessions.OpenSession(ctx, mode, ts, cl.Date); err != nil {
		return routine.OpenSessionOutput{}, fmt.Errorf("%w: %v", routine.ErrStoreWriteFailed, err)
	}

	uc.l.Infof(ctx, "routine: opened %s session for %s anchored at %s", mode, cl.Date, ts)

	if uc.calendar != nil && mode == model.ModeProduction {
		uc.mirrorDeadlines(ctx, cl, now)
	}

	return routine.OpenSessionOutput{
		ThreadTS:  ts,
		Checklist: cl,
		Message:   message,
	}, nil
}

// mirrorDeadlines creates a calendar event per deadline task. Failures are
// logged and skipped: the calendar is a convenience view, never a reason
// to fail the session open.
func (uc *implUseCase) mirrorDeadlines(ctx context.Context, cl routine.Checklist, now time.Time) {
	loc := uc.clock.Location()
	for _, t := range cl.Flatten() {
		if t.Deadline == nil {
			continue
		}

		end := time.Date(now.Year(), now.Month(), now.Day(), t.Deadline.Hour, t.Deadline.Minute, 0, 0, loc)
		start := end.Add(-30 * time.Minute)

		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     t.Name,
			Description: t.Comments,
			StartTime:   start,
			EndTime:     end,
			Timezone:    loc.String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "routine: calendar mirror failed for %q: %v", t.Name, err)
		}
	}
}
