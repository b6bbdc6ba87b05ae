package daytime

import "testing"

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"12:00", ClockTime{12, 0}, false},
		{"09:05", ClockTime{9, 5}, false},
		{" 16:30 ", ClockTime{16, 30}, false},
		{"24:00", ClockTime{}, true},
		{"12:60", ClockTime{}, true},
		{"noon", ClockTime{}, true},
		{"", ClockTime{}, true},
	}

	for _, tc := range cases {
		got, err := ParseClockTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClockTimeOrdering(t *testing.T) {
	noon := ClockTime{12, 0}
	morning := ClockTime{11, 0}

	if !morning.Before(noon) {
		t.Error("11:00 should be before 12:00")
	}
	if !noon.After(morning) {
		t.Error("12:00 should be after 11:00")
	}
	if noon.After(noon) || noon.Before(noon) {
		t.Error("equal times must not compare strictly")
	}
	if EndOfDay.Minutes() != 23*60+59 {
		t.Errorf("EndOfDay placeholder drifted: %v", EndOfDay)
	}
}

func TestNormalizeWeekday(t *testing.T) {
	if got, ok := NormalizeWeekday("MONDAY"); !ok || got != "Monday" {
		t.Errorf("NormalizeWeekday(MONDAY) = %q, %v", got, ok)
	}
	if got, ok := NormalizeWeekday(" friday "); !ok || got != "Friday" {
		t.Errorf("NormalizeWeekday(friday) = %q, %v", got, ok)
	}
	if _, ok := NormalizeWeekday("someday"); ok {
		t.Error("unknown weekday should not normalize")
	}
}

func TestClockCalendar(t *testing.T) {
	c, err := NewClock("Europe/Riga")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}

	now := c.Now()
	if got := c.Date(now); len(got) != 10 {
		t.Errorf("Date() = %q, expected ISO date", got)
	}
	if _, ok := NormalizeWeekday(c.Weekday(now)); !ok {
		t.Errorf("Weekday() = %q, not a weekday name", c.Weekday(now))
	}

	if _, err := NewClock("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
