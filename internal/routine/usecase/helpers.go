package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"slack-routine-bot/internal/model"
)

// doneMarker is the completion token users append after a task name,
// e.g. "@bot LPB done".
const doneMarker = "done"

// matchTaskInText finds the catalog task whose display name appears in
// text followed (anywhere later) by the done marker. The pattern is
// rebuilt from the catalog the caller passed in, which may lag a rename
// by one cache refresh; names are escaped since they may contain
// punctuation. Alternatives are ordered longest-first so a name that is
// a prefix of another never shadows the longer one. An empty catalog
// yields no match, never an error.
func matchTaskInText(tasks []model.TaskDefinition, text string) (model.TaskDefinition, bool) {
	if len(tasks) == 0 {
		return model.TaskDefinition{}, false
	}

	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	escaped := make([]string, 0, len(names))
	for _, n := range names {
		escaped = append(escaped, regexp.QuoteMeta(n))
	}

	pattern, err := regexp.Compile(`(?i)(` + strings.Join(escaped, "|") + `).*` + doneMarker)
	if err != nil {
		return model.TaskDefinition{}, false
	}

	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return model.TaskDefinition{}, false
	}

	found := model.NormalizeTaskName(m[1])
	for _, t := range tasks {
		if model.NormalizeTaskName(t.Name) == found {
			return t, true
		}
	}
	return model.TaskDefinition{}, false
}

// sortByDeadline orders tasks ascending by deadline, missing deadlines
// last, name as tie-break so output is stable.
func sortByDeadline(tasks []model.TaskDefinition) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].SortDeadline().Minutes(), tasks[j].SortDeadline().Minutes()
		if di != dj {
			return di < dj
		}
		return tasks[i].Name < tasks[j].Name
	})
}

// loadCatalog reads the catalog, degrading to an empty list on read
// failure so callers see "no tasks today" instead of an error.
func (uc *implUseCase) loadCatalog(ctx context.Context) []model.TaskDefinition {
	tasks, err := uc.catalog.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "routine: catalog unavailable, degrading to empty: %v", err)
		return nil
	}
	return tasks
}
