package usecase

import (
	"slack-routine-bot/config"
	"slack-routine-bot/internal/checklist"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/internal/routine/repository"
	"slack-routine-bot/pkg/daytime"
	pkgLog "slack-routine-bot/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	catalog     repository.CatalogRepository
	sessions    repository.SessionRepository
	assignments repository.AssignmentRepository
	chat        routine.ChatClient
	calendar    routine.CalendarMirror // nil disables deadline mirroring
	formatter   checklist.Service
	clock       *daytime.Clock

	channelID  string
	calendarID string
	reminder   config.ReminderConfig
}

// New creates the routine engine. calendar may be nil.
func New(
	l pkgLog.Logger,
	catalog repository.CatalogRepository,
	sessions repository.SessionRepository,
	assignments repository.AssignmentRepository,
	chat routine.ChatClient,
	calendar routine.CalendarMirror,
	formatter checklist.Service,
	clock *daytime.Clock,
	channelID string,
	calendarID string,
	reminder config.ReminderConfig,
) *implUseCase {
	return &implUseCase{
		l:           l,
		catalog:     catalog,
		sessions:    sessions,
		assignments: assignments,
		chat:        chat,
		calendar:    calendar,
		formatter:   formatter,
		clock:       clock,
		channelID:   channelID,
		calendarID:  calendarID,
		reminder:    reminder,
	}
}
