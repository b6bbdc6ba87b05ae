package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
)

func (uc *implUseCase) FindTask(ctx context.Context, fragment string) (model.TaskDefinition, error) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return model.TaskDefinition{}, routine.ErrEmptyTaskName
	}

	for _, t := range uc.loadCatalog(ctx) {
		if strings.Contains(strings.ToLower(t.Name), fragment) {
			return t, nil
		}
	}
	return model.TaskDefinition{}, routine.ErrTaskNotFound
}

func (uc *implUseCase) Assign(ctx context.Context, taskName, userID string) error {
	if strings.TrimSpace(taskName) == "" {
		return routine.ErrEmptyTaskName
	}

	if err := uc.assignments.SetAssignee(ctx, taskName, userID); err != nil {
		uc.l.Errorf(ctx, "routine: set assignee for %q failed: %v", taskName, err)
		return routine.ErrStoreWriteFailed
	}

	if userID == "" {
		uc.l.Infof(ctx, "routine: cleared assignee of %q", taskName)
	} else {
		uc.l.Infof(ctx, "routine: assigned %q to %s", taskName, userID)
	}
	return nil
}

func (uc *implUseCase) CreateTask(ctx context.Context, def model.TaskDefinition) (model.TaskDefinition, error) {
	if strings.TrimSpace(def.Name) == "" {
		return model.TaskDefinition{}, routine.ErrEmptyTaskName
	}

	// Reject names that would collide case-insensitively: the display name
	// is the match key, so ambiguity here breaks completion matching.
	norm := model.NormalizeTaskName(def.Name)
	for _, t := range uc.loadCatalog(ctx) {
		if model.NormalizeTaskName(t.Name) == norm {
			return model.TaskDefinition{}, routine.ErrTaskNameTaken
		}
	}

	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	if err := uc.catalog.SaveTask(ctx, def); err != nil {
		uc.l.Errorf(ctx, "routine: save task %q failed: %v", def.Name, err)
		return model.TaskDefinition{}, routine.ErrStoreWriteFailed
	}
	return def, nil
}
