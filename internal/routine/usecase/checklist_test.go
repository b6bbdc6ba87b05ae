package usecase_test

import (
	"context"
	"strings"
	"testing"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
)

func taskNames(tasks []model.TaskDefinition) []string {
	names := make([]string, 0, len(tasks))
	for _, task := range tasks {
		names = append(names, task.Name)
	}
	return names
}

func TestBuildChecklistFiltersByWeekday(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))
	ctx := context.Background()

	cl, err := env.uc.BuildChecklist(ctx, model.ModeProduction, env.at(t, 8, 0), "")
	if err != nil {
		t.Fatalf("BuildChecklist: %v", err)
	}

	for _, task := range cl.Flatten() {
		if task.Name == "Monday report" {
			t.Fatal("Monday-only task must not appear on a Tuesday")
		}
	}
	if cl.Weekday != "Tuesday" {
		t.Fatalf("weekday = %q, want Tuesday", cl.Weekday)
	}
	if cl.Date != "2026-09-01" {
		t.Fatalf("date = %q, want 2026-09-01", cl.Date)
	}
}

func TestBuildChecklistDayOverride(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))
	ctx := context.Background()

	cl, err := env.uc.BuildChecklist(ctx, model.ModeDebug, env.at(t, 8, 0), "monday")
	if err != nil {
		t.Fatalf("BuildChecklist: %v", err)
	}

	found := false
	for _, task := range cl.Flatten() {
		if task.Name == "Monday report" {
			found = true
		}
	}
	if !found {
		t.Fatal("override to Monday must include the Monday-only task")
	}
	if cl.Weekday != "Monday" {
		t.Fatalf("weekday = %q, want Monday", cl.Weekday)
	}
}

func TestBuildChecklistUnknownOverrideIgnored(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))

	cl, err := env.uc.BuildChecklist(context.Background(), model.ModeDebug, env.at(t, 8, 0), "someday")
	if err != nil {
		t.Fatalf("BuildChecklist: %v", err)
	}
	if cl.Weekday != "Tuesday" {
		t.Fatalf("unknown override must fall back to the real weekday, got %q", cl.Weekday)
	}
}

func TestBuildChecklistGroupsAndSorts(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))

	cl, err := env.uc.BuildChecklist(context.Background(), model.ModeProduction, env.at(t, 8, 0), "")
	if err != nil {
		t.Fatalf("BuildChecklist: %v", err)
	}

	got := taskNames(cl.Ungrouped)
	// LPB has 12:00, the deadline-less task sorts last.
	want := []string{"LPB", "Statements - выгрузки"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("ungrouped = %v, want %v", got, want)
	}
	if names := taskNames(cl.Morning); len(names) != 1 || names[0] != "KYC-1" {
		t.Fatalf("morning = %v, want [KYC-1]", names)
	}
	if names := taskNames(cl.Evening); len(names) != 1 || names[0] != "KYC-2" {
		t.Fatalf("evening = %v, want [KYC-2]", names)
	}
}

func TestBuildChecklistCatalogUnavailableDegradesToEmpty(t *testing.T) {
	env := newTestEnv(t, nil)
	env.catalog.listErr = context.DeadlineExceeded

	cl, err := env.uc.BuildChecklist(context.Background(), model.ModeProduction, env.at(t, 8, 0), "")
	if err != nil {
		t.Fatalf("catalog read failures must degrade, got %v", err)
	}
	if !cl.IsEmpty() {
		t.Fatal("expected an empty checklist")
	}
}

func TestBuildChecklistAppliesAssignments(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))
	if err := env.assignments.SetAssignee(context.Background(), "LPB", "U777"); err != nil {
		t.Fatalf("SetAssignee: %v", err)
	}

	cl, err := env.uc.BuildChecklist(context.Background(), model.ModeProduction, env.at(t, 8, 0), "")
	if err != nil {
		t.Fatalf("BuildChecklist: %v", err)
	}
	for _, task := range cl.Ungrouped {
		if task.Name == "LPB" && task.Assignee != "U777" {
			t.Fatalf("assignee = %q, want U777", task.Assignee)
		}
	}
}

func TestOpenSessionReplacesCompletions(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))
	ctx := context.Background()
	now := env.at(t, 7, 0)

	if _, err := env.uc.OpenSession(ctx, model.ModeProduction, now, ""); err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	res, err := env.uc.RecordTaskDone(ctx, model.Scope{UserID: "U1"}, model.ModeProduction, "LPB done", env.at(t, 9, 0))
	if err != nil {
		t.Fatalf("RecordTaskDone: %v", err)
	}
	if res.Status != routine.StatusOnTime {
		t.Fatalf("status = %q, want on_time", res.Status)
	}

	// Re-opening starts a clean slate, earlier completions are gone.
	if _, err := env.uc.OpenSession(ctx, model.ModeProduction, now, ""); err != nil {
		t.Fatalf("re-open: %v", err)
	}
	res, err = env.uc.RecordTaskDone(ctx, model.Scope{UserID: "U1"}, model.ModeProduction, "LPB done", env.at(t, 9, 5))
	if err != nil {
		t.Fatalf("RecordTaskDone after re-open: %v", err)
	}
	if res.Status != routine.StatusOnTime {
		t.Fatalf("completion after re-open: status = %q, want on_time", res.Status)
	}
}

func TestOpenSessionPostsChecklist(t *testing.T) {
	env := newTestEnv(t, sampleCatalog(t))

	out, err := env.uc.OpenSession(context.Background(), model.ModeDebug, env.at(t, 7, 0), "")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if out.ThreadTS == "" {
		t.Fatal("expected a thread anchor")
	}
	if len(env.chat.posted) != 1 {
		t.Fatalf("posted %d messages, want 1", len(env.chat.posted))
	}
	if !strings.HasPrefix(env.chat.posted[0].Text, "🔧 DEBUG: ") {
		t.Fatalf("debug checklist must carry the debug prefix, got %q", env.chat.posted[0].Text)
	}
}
