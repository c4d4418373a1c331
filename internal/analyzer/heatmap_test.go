package analyzer

import (
	"testing"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

func TestAnalyzeHeatmap_Empty(t *testing.T) {
	cells := AnalyzeHeatmap(nil, session.AllTime())
	if len(cells) != 0 {
		t.Errorf("expected no cells for empty input, got %d", len(cells))
	}
}

func TestAnalyzeHeatmap_SparseAndAveraged(t *testing.T) {
	hour := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	records := []session.Record{
		rec(hour.Add(5*time.Minute), 30, 80),
		rec(hour.Add(40*time.Minute), 20, 90),
		rec(hour.Add(26*time.Hour), 45, 60),
	}

	r, err := session.Custom(
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local))
	if err != nil {
		t.Fatal(err)
	}
	cells := AnalyzeHeatmap(records, r)

	if len(cells) != 2 {
		t.Fatalf("expected 2 sparse cells, got %d", len(cells))
	}

	first := cells[0]
	if first.Day != 10 || first.Hour != 9 {
		t.Errorf("expected first cell at day 10 hour 9, got day %d hour %d", first.Day, first.Hour)
	}
	if first.SessionCount != 2 || first.TotalMinutes != 50 {
		t.Errorf("unexpected cell accumulation: %+v", first)
	}
	if !approx(first.AvgQuality, 85) {
		t.Errorf("expected avg quality 85, got %.1f", first.AvgQuality)
	}

	// Chronological order.
	if !cells[0].Timestamp.Before(cells[1].Timestamp) {
		t.Error("cells should be sorted chronologically")
	}
	if !cells[1].Timestamp.Equal(time.Date(2026, time.March, 11, 11, 0, 0, 0, time.Local)) {
		t.Errorf("unexpected second cell timestamp: %s", cells[1].Timestamp)
	}
}

func TestAnalyzeHeatmap_AllTimeKeepsRecentSessions(t *testing.T) {
	weekOld := rec(time.Now().AddDate(0, 0, -7), 30, 80)

	cells := AnalyzeHeatmap([]session.Record{weekOld}, session.AllTime())

	if len(cells) != 1 {
		t.Fatalf("expected a week-old session to survive the all-time cap, got %d cells", len(cells))
	}
	if cells[0].Day != weekOld.StartTime.Day() {
		t.Errorf("unexpected surviving cell day %d", cells[0].Day)
	}
}

func TestAnalyzeHeatmap_CapsOversizedRange(t *testing.T) {
	end := time.Now()
	old := rec(end.AddDate(0, 0, -400), 30, 80)
	recent := rec(end.AddDate(0, 0, -10), 30, 80)

	cells := AnalyzeHeatmap([]session.Record{old, recent}, session.AllTime())

	if len(cells) != 1 {
		t.Fatalf("expected the 400-day-old session to be capped out, got %d cells", len(cells))
	}
	if cells[0].Day != recent.StartTime.Day() {
		t.Errorf("surviving cell should be the recent session, got day %d", cells[0].Day)
	}
}
