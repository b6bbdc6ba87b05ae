package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slack-routine-bot/config"
	"slack-routine-bot/internal/checklist"
	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/internal/routine/repository"
	"slack-routine-bot/internal/routine/usecase"
	"slack-routine-bot/pkg/daytime"
	"slack-routine-bot/pkg/slack"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockCatalog struct {
	tasks   []model.TaskDefinition
	listErr error
	saved   []model.TaskDefinition
	saveErr error
}

func (m *mockCatalog) ListTasks(ctx context.Context) ([]model.TaskDefinition, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockCatalog) SaveTask(ctx context.Context, def model.TaskDefinition) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, def)
	return nil
}

// mockSessions is an in-memory SessionRepository honoring the store
// contract: stale and duplicate completions are rejected.
type mockSessions struct {
	store          map[model.Mode]model.Session
	recordErr      error
	completionsErr error
}

func newMockSessions() *mockSessions {
	return &mockSessions{store: map[model.Mode]model.Session{}}
}

func (m *mockSessions) OpenSession(ctx context.Context, mode model.Mode, threadTS, date string) error {
	m.store[mode] = model.Session{Date: date, ThreadTS: threadTS, Completed: map[string]model.Completion{}}
	return nil
}

func (m *mockSessions) GetSession(ctx context.Context, mode model.Mode) (model.Session, error) {
	s, ok := m.store[mode]
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return s, nil
}

func (m *mockSessions) RecordCompletion(ctx context.Context, mode model.Mode, taskName string, completion model.Completion, date string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	s, ok := m.store[mode]
	if !ok {
		return repository.ErrSessionNotFound
	}
	if !s.CoversDate(date) {
		return repository.ErrStaleSession
	}
	norm := model.NormalizeTaskName(taskName)
	if _, done := s.Completed[norm]; done {
		return repository.ErrAlreadyCompleted
	}
	s.Completed[norm] = completion
	m.store[mode] = s
	return nil
}

func (m *mockSessions) GetCompletions(ctx context.Context, mode model.Mode) (map[string]model.Completion, error) {
	if m.completionsErr != nil {
		return nil, m.completionsErr
	}
	s, ok := m.store[mode]
	if !ok {
		return map[string]model.Completion{}, nil
	}
	return s.Completed, nil
}

type mockAssignments struct {
	byName map[string]string
	err    error
}

func (m *mockAssignments) SetAssignee(ctx context.Context, taskName, userID string) error {
	if m.err != nil {
		return m.err
	}
	if m.byName == nil {
		m.byName = map[string]string{}
	}
	norm := model.NormalizeTaskName(taskName)
	if userID == "" {
		delete(m.byName, norm)
		return nil
	}
	m.byName[norm] = userID
	return nil
}

func (m *mockAssignments) GetAssignments(ctx context.Context) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byName, nil
}

type mockChat struct {
	posted  []slack.PostMessageRequest
	nextTS  string
	postErr error
}

func (m *mockChat) PostMessage(ctx context.Context, req slack.PostMessageRequest) (string, error) {
	if m.postErr != nil {
		return "", m.postErr
	}
	m.posted = append(m.posted, req)
	if m.nextTS == "" {
		return "1726000000.000100", nil
	}
	return m.nextTS, nil
}

// ── Environment ────────────────────────────────────────────────────────────

type testEnv struct {
	uc          routine.UseCase
	catalog     *mockCatalog
	sessions    *mockSessions
	assignments *mockAssignments
	chat        *mockChat
	clock       *daytime.Clock
}

func newTestEnv(t *testing.T, tasks []model.TaskDefinition) *testEnv {
	t.Helper()

	clock, err := daytime.NewClock("Europe/Riga")
	if err != nil {
		t.Fatalf("clock: %v", err)
	}

	env := &testEnv{
		catalog:     &mockCatalog{tasks: tasks},
		sessions:    newMockSessions(),
		assignments: &mockAssignments{},
		chat:        &mockChat{},
		clock:       clock,
	}
	env.uc = usecase.New(
		&mockLogger{},
		env.catalog,
		env.sessions,
		env.assignments,
		env.chat,
		nil,
		checklist.New(),
		clock,
		"C-TEST",
		"",
		config.ReminderConfig{CutoffHour: 13, LateBoundaryHour: 16},
	)
	return env
}

// at returns a localized time on a fixed Tuesday at the given clock time.
func (env *testEnv) at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	// 2026-09-01 is a Tuesday.
	return time.Date(2026, 9, 1, hour, minute, 0, 0, env.clock.Location())
}

func deadline(t *testing.T, s string) *daytime.ClockTime {
	t.Helper()
	ct, err := daytime.ParseClockTime(s)
	if err != nil {
		t.Fatalf("bad deadline %q: %v", s, err)
	}
	return &ct
}

func sampleCatalog(t *testing.T) []model.TaskDefinition {
	t.Helper()
	return []model.TaskDefinition{
		{ID: "t1", Name: "LPB", Deadline: deadline(t, "12:00")},
		{ID: "t2", Name: "KYC-1", Deadline: deadline(t, "11:00"), Period: model.PeriodMorning},
		{ID: "t3", Name: "KYC-2", Deadline: deadline(t, "16:00"), Period: model.PeriodEvening},
		{ID: "t4", Name: "Statements - выгрузки"},
		{ID: "t5", Name: "Monday report", Days: []string{"Monday"}},
	}
}

func mustBeRejected(t *testing.T, res routine.RecordResult, want error) {
	t.Helper()
	if res.Status != routine.StatusRejected {
		t.Fatalf("expected rejection, got status %q", res.Status)
	}
	if !errors.Is(res.Reason, want) {
		t.Fatalf("expected reason %v, got %v", want, res.Reason)
	}
	if res.ReactionNeeded {
		t.Fatal("rejected completions must not request a reaction")
	}
}
