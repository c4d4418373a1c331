package analyzer

import (
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// FilterInRange returns the records whose start time falls inside r,
// preserving input order.
func FilterInRange(records []session.Record, r session.DateRange) []session.Record {
	var filtered []session.Record
	for _, rec := range records {
		if r.Contains(rec.StartTime) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// isoWeekday maps time.Weekday onto Monday=0..Sunday=6.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// AnalyzeWeekly buckets the records in range by ISO weekday. Empty input
// yields a zeroed but structurally complete result.
func AnalyzeWeekly(records []session.Record, r session.DateRange) WeeklyStats {
	filtered := FilterInRange(records, r)

	var stats WeeklyStats
	var minuteSums [7]int

	for _, rec := range filtered {
		day := isoWeekday(rec.StartTime.Weekday())
		b := &stats.Days[day]

		minuteSums[day] += rec.DurationMinutes
		b.AvgFocusScore = runningMean(b.AvgFocusScore, b.SessionCount, rec.FocusScore)
		b.SessionCount++
	}

	var focusSum float64
	var nonEmpty int
	for day := range stats.Days {
		b := &stats.Days[day]
		if b.SessionCount == 0 {
			continue
		}
		// Average session length for the day, not the cumulative total.
		b.Minutes = float64(minuteSums[day]) / float64(b.SessionCount)

		stats.TotalMinutes += b.Minutes
		stats.TotalSessions += b.SessionCount
		focusSum += b.AvgFocusScore
		nonEmpty++
	}

	if nonEmpty > 0 {
		stats.AverageFocusScore = focusSum / float64(nonEmpty)
	}

	return stats
}

// runningMean folds x into a mean computed over n prior samples.
func runningMean(mean float64, n int, x float64) float64 {
	return (mean*float64(n) + x) / float64(n+1)
}
