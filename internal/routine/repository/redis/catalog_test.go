package redis

import (
	"context"
	"encoding/json"
	"testing"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/pkg/daytime"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func testRepo() *implRepository {
	return New(nil, nopLogger{})
}

func mustClockTime(t *testing.T, s string) daytime.ClockTime {
	t.Helper()
	ct, err := daytime.ParseClockTime(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ct
}

func TestDecodeRecord(t *testing.T) {
	r := testRepo()
	ctx := context.Background()

	def, err := r.decodeRecord(ctx, "t1", taskRecord{
		Name:     "  LPB  ",
		Deadline: "12:00",
		Days:     json.RawMessage(`"all"`),
		Period:   "morning",
		AsanaURL: "https://app.asana.com/0/1/2",
	})
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if def.Name != "LPB" {
		t.Fatalf("name = %q, want trimmed LPB", def.Name)
	}
	if def.Deadline == nil || def.Deadline.String() != "12:00" {
		t.Fatalf("deadline = %v", def.Deadline)
	}
	if def.Days != nil {
		t.Fatalf("days = %v, want nil for %q", def.Days, model.DaysAll)
	}
	if def.Period != model.PeriodMorning {
		t.Fatalf("period = %q", def.Period)
	}
}

func TestDecodeRecordBadDeadlineDegrades(t *testing.T) {
	r := testRepo()

	def, err := r.decodeRecord(context.Background(), "t1", taskRecord{Name: "LPB", Deadline: "25:99"})
	if err != nil {
		t.Fatalf("entry with a bad deadline must survive: %v", err)
	}
	if def.Deadline != nil {
		t.Fatalf("deadline = %v, want none", def.Deadline)
	}
}

func TestDecodeRecordRejects(t *testing.T) {
	r := testRepo()
	ctx := context.Background()

	cases := []struct {
		name string
		rec  taskRecord
	}{
		{"missing name", taskRecord{Deadline: "12:00"}},
		{"blank name", taskRecord{Name: "   "}},
		{"unknown period", taskRecord{Name: "LPB", Period: "midnight"}},
		{"unknown weekday", taskRecord{Name: "LPB", Days: json.RawMessage(`["someday"]`)}},
		{"days wrong type", taskRecord{Name: "LPB", Days: json.RawMessage(`42`)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.decodeRecord(ctx, "t1", tc.rec); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDecodeDays(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"all", `"all"`, nil},
		{"single", `"monday"`, []string{"Monday"}},
		{"list", `["monday", "Friday"]`, []string{"Monday", "Friday"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var raw json.RawMessage
			if tc.raw != "" {
				raw = json.RawMessage(tc.raw)
			}
			got, err := decodeDays(raw)
			if err != nil {
				t.Fatalf("decodeDays: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("days = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("days = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestEncodeRecordRoundTrip(t *testing.T) {
	r := testRepo()

	ct := mustClockTime(t, "16:30")
	original := model.TaskDefinition{
		ID:       "t9",
		Name:     "KYC-2",
		Deadline: &ct,
		Days:     []string{"Monday", "Wednesday"},
		Period:   model.PeriodEvening,
		Comments: "после обеда",
	}

	decoded, err := r.decodeRecord(context.Background(), original.ID, encodeRecord(original))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if decoded.Name != original.Name || decoded.Period != original.Period || decoded.Comments != original.Comments {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Deadline == nil || decoded.Deadline.String() != "16:30" {
		t.Fatalf("deadline = %v", decoded.Deadline)
	}
	if len(decoded.Days) != 2 || decoded.Days[0] != "Monday" {
		t.Fatalf("days = %v", decoded.Days)
	}
}
