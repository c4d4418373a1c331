package planner

import (
	"strings"
	"testing"

	"github.com/quietstack/studypulse/internal/config"
)

func summarySchedule(t *testing.T) Schedule {
	t.Helper()
	return BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 2,
	})
}

func TestSummarize_DominantTag(t *testing.T) {
	got := Summarize(SummaryInput{
		Schedule:           summarySchedule(t),
		TodaySessions:      3,
		DominantTag:        "Linear Algebra",
		Objective:          "pass finals",
		DailyTargetMinutes: 150,
		Energy:             config.DefaultEnergy,
	})

	if !strings.Contains(got, "3 session(s)") {
		t.Errorf("summary should mention session count: %q", got)
	}
	if !strings.Contains(got, "Linear Algebra") {
		t.Errorf("summary should prefer the dominant tag: %q", got)
	}
	if strings.Contains(got, "pass finals") {
		t.Errorf("objective should be suppressed when a tag dominates: %q", got)
	}
	if !strings.Contains(got, "2h 30m") {
		t.Errorf("summary should format the daily target: %q", got)
	}
}

func TestSummarize_ObjectiveFallback(t *testing.T) {
	got := Summarize(SummaryInput{
		Schedule:           summarySchedule(t),
		DominantTag:        "",
		Objective:          "pass finals",
		DailyTargetMinutes: 120,
		Energy:             config.DefaultEnergy,
	})

	if !strings.Contains(got, "pass finals") {
		t.Errorf("summary should fall back to the objective: %q", got)
	}
	if !strings.Contains(got, "2h.") {
		t.Errorf("whole-hour target should format without minutes: %q", got)
	}
}

func TestSummarize_AvailableAndCalendarHours(t *testing.T) {
	sched := summarySchedule(t)
	sched.CalendarHours = 3
	sched.SleepHours = 8

	got := Summarize(SummaryInput{
		Schedule:           sched,
		DailyTargetMinutes: 120,
		Energy:             config.DefaultEnergy,
	})

	if !strings.Contains(got, "13 hour(s) are free") {
		t.Errorf("expected 24-8-3=13 available hours: %q", got)
	}
	if !strings.Contains(got, "3 blocked by calendar") {
		t.Errorf("expected calendar-blocked note: %q", got)
	}
}

func TestSummarize_EnergyAdvisory(t *testing.T) {
	base := SummaryInput{
		Schedule:           summarySchedule(t),
		DailyTargetMinutes: 120,
		Energy:             config.Energy{LowThreshold: 40, HighThreshold: 75},
	}

	low := 30.0
	base.RecentEnergy = &low
	if got := Summarize(base); !strings.Contains(got, "schedule breaks") {
		t.Errorf("low energy should advise breaks: %q", got)
	}

	high := 80.0
	base.RecentEnergy = &high
	if got := Summarize(base); !strings.Contains(got, "maximize your focus") {
		t.Errorf("high energy should advise focus: %q", got)
	}

	mid := 60.0
	base.RecentEnergy = &mid
	got := Summarize(base)
	if strings.Contains(got, "Energy has been") {
		t.Errorf("mid-band energy should add no advisory: %q", got)
	}

	base.RecentEnergy = nil
	got = Summarize(base)
	if strings.Contains(got, "Energy has been") {
		t.Errorf("missing energy data should add no advisory: %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		45:  "45m",
		60:  "1h",
		120: "2h",
		150: "2h 30m",
	}
	for minutes, want := range cases {
		if got := formatMinutes(minutes); got != want {
			t.Errorf("formatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}
