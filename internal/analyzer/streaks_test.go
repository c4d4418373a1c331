package analyzer

import (
	"testing"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

func TestAnalyzeStreaks_FullMonthPrePopulated(t *testing.T) {
	days := AnalyzeStreaks(nil, 120, time.February, 2026)

	if len(days) != 28 {
		t.Fatalf("expected 28 days for February 2026, got %d", len(days))
	}
	for i, d := range days {
		if d.Day != i+1 || d.Month != time.February || d.Year != 2026 {
			t.Errorf("day %d mislabeled: %+v", i, d)
		}
		if d.Status != StreakNone {
			t.Errorf("empty day %d should be none, got %s", d.Day, d.Status)
		}
	}
}

func TestAnalyzeStreaks_Thresholds(t *testing.T) {
	const target = 120
	mk := func(day, minutes int) session.Record {
		return rec(time.Date(2026, time.March, day, 10, 0, 0, 0, time.Local), minutes, 80)
	}

	records := []session.Record{
		mk(1, 30),  // < 0.5*target -> partial
		mk(2, 59),  // still partial
		mk(3, 60),  // exactly half -> hit target
		mk(4, 120), // on target -> hit target
		mk(5, 179), // just below 1.5x -> hit target
		mk(6, 180), // exactly 1.5x -> exceptional
		mk(7, 300), // well above -> exceptional
	}

	days := AnalyzeStreaks(records, target, time.March, 2026)

	want := map[int]StreakStatus{
		1: StreakPartial,
		2: StreakPartial,
		3: StreakHitTarget,
		4: StreakHitTarget,
		5: StreakHitTarget,
		6: StreakExceptional,
		7: StreakExceptional,
		8: StreakNone,
	}
	for day, status := range want {
		if got := days[day-1].Status; got != status {
			t.Errorf("day %d: expected %s, got %s", day, status, got)
		}
	}
}

func TestAnalyzeStreaks_IgnoresOtherMonths(t *testing.T) {
	records := []session.Record{
		rec(time.Date(2026, time.February, 28, 10, 0, 0, 0, time.Local), 120, 80),
		rec(time.Date(2026, time.March, 1, 10, 0, 0, 0, time.Local), 120, 80),
		rec(time.Date(2025, time.March, 1, 10, 0, 0, 0, time.Local), 120, 80),
	}

	days := AnalyzeStreaks(records, 120, time.March, 2026)

	if days[0].TotalMinutes != 120 || days[0].SessionCount != 1 {
		t.Errorf("March 1 should only count the 2026 March session: %+v", days[0])
	}
}

func TestAnalyzeStreaks_QualityAverage(t *testing.T) {
	day := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.Local)
	records := []session.Record{
		rec(day, 60, 90),
		rec(day.Add(2*time.Hour), 60, 70),
	}

	days := AnalyzeStreaks(records, 120, time.March, 2026)

	d := days[11]
	if d.SessionCount != 2 || d.TotalMinutes != 120 {
		t.Fatalf("unexpected accumulation: %+v", d)
	}
	if !approx(d.AvgQuality, 80) {
		t.Errorf("expected avg quality 80, got %.1f", d.AvgQuality)
	}
	if d.Status != StreakHitTarget {
		t.Errorf("expected hit_target, got %s", d.Status)
	}
}
