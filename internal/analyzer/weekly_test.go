package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// rec builds a minimal record for aggregation tests.
func rec(start time.Time, minutes int, focus float64) session.Record {
	return session.Record{
		StartTime:       start,
		DurationMinutes: minutes,
		FocusScore:      focus,
	}
}

// taggedRec builds a tagged record for tag and ring tests.
func taggedRec(start time.Time, minutes int, tag string) session.Record {
	return session.Record{
		StartTime:       start,
		DurationMinutes: minutes,
		FocusScore:      75,
		TagTitle:        tag,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFilterInRange_PreservesOrder(t *testing.T) {
	r, err := session.Custom(
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := []session.Record{
		rec(time.Date(2026, time.March, 5, 9, 0, 0, 0, time.Local), 30, 80),
		rec(time.Date(2026, time.February, 20, 9, 0, 0, 0, time.Local), 30, 80),
		rec(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local), 45, 70),
	}

	filtered := FilterInRange(records, r)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 records, got %d", len(filtered))
	}
	if filtered[0].StartTime.Day() != 5 || filtered[1].StartTime.Day() != 2 {
		t.Error("filter should preserve input order")
	}
}

func TestAnalyzeWeekly_Empty(t *testing.T) {
	stats := AnalyzeWeekly(nil, session.AllTime())

	if stats.TotalSessions != 0 || stats.TotalMinutes != 0 || stats.AverageFocusScore != 0 {
		t.Errorf("empty input should yield zeroed totals: %+v", stats)
	}
	for day, b := range stats.Days {
		if b.SessionCount != 0 || b.Minutes != 0 {
			t.Errorf("day %d should be zeroed: %+v", day, b)
		}
	}
}

func TestAnalyzeWeekly_PerDayAverage(t *testing.T) {
	// Monday 2026-03-02: two sessions of 30 and 60 minutes.
	monday := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.Local)
	records := []session.Record{
		rec(monday, 30, 80),
		rec(monday.Add(3*time.Hour), 60, 90),
		// Sunday 2026-03-08: one 45-minute session.
		rec(time.Date(2026, time.March, 8, 15, 0, 0, 0, time.Local), 45, 60),
	}

	stats := AnalyzeWeekly(records, session.AllTime())

	// Monday bucket reports the per-session average, not the sum.
	if !approx(stats.Days[0].Minutes, 45) {
		t.Errorf("expected Monday minutes 45 (avg of 30, 60), got %.1f", stats.Days[0].Minutes)
	}
	if stats.Days[0].SessionCount != 2 {
		t.Errorf("expected 2 Monday sessions, got %d", stats.Days[0].SessionCount)
	}
	if !approx(stats.Days[0].AvgFocusScore, 85) {
		t.Errorf("expected Monday focus 85, got %.1f", stats.Days[0].AvgFocusScore)
	}

	// Sunday maps to index 6.
	if stats.Days[6].SessionCount != 1 || !approx(stats.Days[6].Minutes, 45) {
		t.Errorf("unexpected Sunday bucket: %+v", stats.Days[6])
	}

	if !approx(stats.TotalMinutes, 90) {
		t.Errorf("expected total 90 (45+45 per-day averages), got %.1f", stats.TotalMinutes)
	}
	if stats.TotalSessions != 3 {
		t.Errorf("expected 3 total sessions, got %d", stats.TotalSessions)
	}

	// Mean of the non-empty per-day averages: (85 + 60) / 2.
	if !approx(stats.AverageFocusScore, 72.5) {
		t.Errorf("expected average focus 72.5, got %.2f", stats.AverageFocusScore)
	}
}

func TestAnalyzeWeekly_BucketCountsSumToFiltered(t *testing.T) {
	var records []session.Record
	base := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 17; i++ {
		records = append(records, rec(base.AddDate(0, 0, i%10), 25, 70))
	}

	stats := AnalyzeWeekly(records, session.AllTime())

	var bucketSum int
	for _, b := range stats.Days {
		bucketSum += b.SessionCount
	}
	if bucketSum != len(records) {
		t.Errorf("bucket counts sum to %d, want %d", bucketSum, len(records))
	}
}
