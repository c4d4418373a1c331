package planner

import (
	"testing"
	"time"

	"github.com/quietstack/studypulse/internal/config"
	"github.com/quietstack/studypulse/internal/session"
)

// defaultPrefs mirrors the library defaults without loading a config file.
func defaultPrefs() config.Preferences {
	return config.Preferences{
		Sleep:    config.DefaultSleep,
		Meals:    config.DefaultMeals,
		Work:     config.DefaultWork,
		Social:   config.DefaultSocial,
		Calendar: config.DefaultCalendar,
		Goals:    config.DefaultGoals,
		Energy:   config.DefaultEnergy,
	}
}

// tuesday is an arbitrary fixed target day.
var tuesday = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

func hourCount(s Schedule, a ActivityType) int {
	n := 0
	for _, t := range s.Hours {
		if t == a {
			n++
		}
	}
	return n
}

func TestBuildSchedule_BlocksCoverDay(t *testing.T) {
	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 2,
	})

	var total int
	prevEnd := 0
	for _, b := range sched.Blocks {
		if b.StartHour != prevEnd {
			t.Errorf("block starting at %d is not contiguous with previous end %d", b.StartHour, prevEnd)
		}
		if b.DurationHours() <= 0 {
			t.Errorf("block %+v has non-positive duration", b)
		}
		total += b.DurationHours()
		prevEnd = b.EndHour
	}
	if total != 24 {
		t.Errorf("block durations sum to %d, want 24", total)
	}
}

func TestBuildSchedule_EmptyHistoryDefaults(t *testing.T) {
	// No history, default preferences, two target hours: the default
	// curve peaks at 09-11, and with no per-hour history nothing
	// qualifies as deep study.
	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 2,
	})

	// Night window 23-07 is sleep.
	for _, h := range []int{23, 0, 1, 2, 3, 4, 5, 6} {
		if sched.Hours[h] != ActivitySleep {
			t.Errorf("hour %d: expected sleep, got %s", h, sched.Hours[h])
		}
	}

	if got := hourCount(sched, ActivityLightStudy); got != 2 {
		t.Errorf("expected 2 light study hours, got %d", got)
	}
	if got := hourCount(sched, ActivityDeepStudy); got != 0 {
		t.Errorf("no history means no deep study, got %d hours", got)
	}

	// The 85-peak hours win; breakfast claims 8, so 9 and 10 are the
	// two best free hours.
	if !sched.Hours[9].IsStudy() || !sched.Hours[10].IsStudy() {
		t.Errorf("expected study at 9 and 10, got %s and %s", sched.Hours[9], sched.Hours[10])
	}

	// Everything neither slept, eaten, nor studied is a break.
	for h, a := range sched.Hours {
		if a == "" {
			t.Errorf("hour %d left unassigned", h)
		}
	}
}

func TestBuildSchedule_HistoryPromotesDeepStudy(t *testing.T) {
	var history []session.Record
	for i := 0; i < 4; i++ {
		history = append(history, session.Record{
			StartTime:       tuesday.AddDate(0, 0, -i-1).Add(15 * time.Hour),
			DurationMinutes: 50,
			FocusScore:      92,
		})
	}

	sched := BuildSchedule(Input{
		Date:             tuesday,
		History:          history,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 1,
	})

	if sched.Hours[15] != ActivityDeepStudy {
		t.Errorf("hour 15 with strong history should be deep study, got %s", sched.Hours[15])
	}
}

func TestBuildSchedule_SessionCountAlonePromotesDeep(t *testing.T) {
	// Three historical sessions in one hour qualify it for deep study
	// even with a sub-75 mean focus.
	var history []session.Record
	for i := 0; i < 3; i++ {
		history = append(history, session.Record{
			StartTime:       tuesday.AddDate(0, 0, -i-1).Add(10 * time.Hour),
			DurationMinutes: 30,
			FocusScore:      60,
		})
	}

	sched := BuildSchedule(Input{
		Date:             tuesday,
		History:          history,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 9,
	})

	if sched.Hours[10] != ActivityDeepStudy {
		t.Errorf("hour 10 with 3 historical sessions should be deep study, got %s", sched.Hours[10])
	}
}

func TestBuildSchedule_ProtectedLayersNeverRelabeled(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Calendar.BufferBeforeHours = 1
	prefs.Calendar.BufferAfterHours = 1

	events := []session.CalendarEvent{{
		Start: tuesday.Add(10 * time.Hour),
		End:   tuesday.Add(12 * time.Hour),
		Title: "Seminar",
	}}

	sched := BuildSchedule(Input{
		Date:             tuesday,
		Events:           events,
		Prefs:            prefs,
		TargetStudyHours: 12,
	})

	// Event 10-12 with one-hour buffers covers 9-13.
	for h := 9; h < 13; h++ {
		if sched.Hours[h] != ActivityCalendarEvent {
			t.Errorf("hour %d: expected calendar event, got %s", h, sched.Hours[h])
		}
	}
	for _, h := range []int{23, 0, 1, 2, 3, 4, 5, 6} {
		if sched.Hours[h] != ActivitySleep {
			t.Errorf("hour %d: sleep was relabeled to %s", h, sched.Hours[h])
		}
	}
}

func TestBuildSchedule_StudyCappedByFreeHours(t *testing.T) {
	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 40,
	})

	// 24 hours minus 8 sleep and 3 meals leaves 13 free hours; an
	// oversized target allocates all of them without error.
	free := 24 - 8 - 3
	if sched.StudyHoursPlanned != free {
		t.Errorf("expected %d study hours, got %d", free, sched.StudyHoursPlanned)
	}
	if got := hourCount(sched, ActivityBreaks); got != 0 {
		t.Errorf("expected no breaks when study consumes all free hours, got %d", got)
	}
}

func TestBuildSchedule_WorkLayer(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Work.Enabled = true

	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            prefs,
		TargetStudyHours: 2,
	})

	for h := 9; h < 17; h++ {
		if h == 13 {
			// Lunch was placed before the work layer ran.
			if sched.Hours[h] != ActivityMeals {
				t.Errorf("hour 13: expected meals, got %s", sched.Hours[h])
			}
			continue
		}
		if sched.Hours[h] != ActivityWork {
			t.Errorf("hour %d: expected work, got %s", h, sched.Hours[h])
		}
	}

	// Allowing study during work leaves those hours unassigned for the
	// study layer.
	prefs.Work.AllowStudy = true
	sched = BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            prefs,
		TargetStudyHours: 2,
	})
	if got := hourCount(sched, ActivityWork); got != 0 {
		t.Errorf("allow_study should suppress work hours, got %d", got)
	}
	if !sched.Hours[9].IsStudy() || !sched.Hours[10].IsStudy() {
		t.Errorf("expected study at the freed 9 and 10 hours")
	}
}

func TestBuildSchedule_WorkSkippedOnOffDays(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Work.Enabled = true

	saturday := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)
	sched := BuildSchedule(Input{
		Date:             saturday,
		Prefs:            prefs,
		TargetStudyHours: 2,
	})

	if got := hourCount(sched, ActivityWork); got != 0 {
		t.Errorf("Saturday is not a work day, got %d work hours", got)
	}
}

func TestBuildSchedule_ExerciseAndSocialLayers(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Exercise = []config.HourSpan{{StartHour: 17, EndHour: 18}}
	prefs.Social.Enabled = true
	prefs.Social.Days = []string{"Tuesday"}
	prefs.Social.Hours = []int{20, 21}

	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            prefs,
		TargetStudyHours: 2,
	})

	if sched.Hours[17] != ActivityExercise {
		t.Errorf("hour 17: expected exercise, got %s", sched.Hours[17])
	}
	if sched.Hours[20] != ActivitySocial || sched.Hours[21] != ActivitySocial {
		t.Errorf("expected social at 20-21, got %s and %s", sched.Hours[20], sched.Hours[21])
	}

	// Unprotected social time is not reserved.
	prefs.Social.Protected = false
	sched = BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            prefs,
		TargetStudyHours: 2,
	})
	if got := hourCount(sched, ActivitySocial); got != 0 {
		t.Errorf("unprotected social should not reserve hours, got %d", got)
	}
}

func TestBuildSchedule_SleepWindowWrapsMidnight(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Sleep = config.Sleep{BedtimeHour: 22, WakeHour: 6}

	sched := BuildSchedule(Input{Date: tuesday, Prefs: prefs})

	if sched.SleepHours != 8 {
		t.Errorf("expected 8 sleep hours, got %d", sched.SleepHours)
	}
	if sched.Hours[22] != ActivitySleep || sched.Hours[5] != ActivitySleep {
		t.Error("wrap-around window should cover 22 and 5")
	}
	if sched.Hours[6] == ActivitySleep {
		t.Error("wake hour should not be asleep")
	}
}

func TestBuildSchedule_ConfidenceAndReasons(t *testing.T) {
	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 2,
	})

	want := map[ActivityType]int{
		ActivitySleep:      100,
		ActivityMeals:      95,
		ActivityLightStudy: 90,
		ActivityBreaks:     70,
	}
	for _, b := range sched.Blocks {
		if expect, ok := want[b.Type]; ok && b.Confidence != expect {
			t.Errorf("%s block: confidence %d, want %d", b.Type, b.Confidence, expect)
		}
		if b.Reason == "" {
			t.Errorf("%s block missing reason", b.Type)
		}
	}
}

func TestBuildSchedule_CalendarDisabled(t *testing.T) {
	prefs := defaultPrefs()
	prefs.Calendar.Enabled = false

	events := []session.CalendarEvent{{
		Start: tuesday.Add(10 * time.Hour),
		End:   tuesday.Add(12 * time.Hour),
		Title: "Ignored",
	}}

	sched := BuildSchedule(Input{Date: tuesday, Events: events, Prefs: prefs})
	if sched.CalendarHours != 0 {
		t.Errorf("disabled calendar integration should block nothing, got %d hours", sched.CalendarHours)
	}
}

func TestBuildSchedule_FractionalTargetRounds(t *testing.T) {
	sched := BuildSchedule(Input{
		Date:             tuesday,
		Prefs:            defaultPrefs(),
		TargetStudyHours: 1.5,
	})

	if sched.StudyHoursPlanned != 2 {
		t.Errorf("1.5 target hours should round to 2, got %d", sched.StudyHoursPlanned)
	}
}
