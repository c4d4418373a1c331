package analyzer

import (
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// AnalyzeStreaks builds the streak calendar for one local calendar month.
// Every day of the month is present, pre-populated with a zeroed StreakDay;
// only sessions whose local month and year match are accumulated. Days are
// returned in calendar order.
func AnalyzeStreaks(records []session.Record, targetMinutes int, month time.Month, year int) []StreakDay {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	days := make([]StreakDay, daysInMonth)
	qualitySums := make([]float64, daysInMonth)
	for i := range days {
		days[i] = StreakDay{
			Year:   year,
			Month:  month,
			Day:    i + 1,
			Status: StreakNone,
		}
	}

	for _, rec := range records {
		t := rec.StartTime
		if t.Year() != year || t.Month() != month {
			continue
		}
		d := &days[t.Day()-1]
		d.TotalMinutes += rec.DurationMinutes
		qualitySums[t.Day()-1] += rec.FocusScore
		d.SessionCount++
	}

	for i := range days {
		d := &days[i]
		if d.SessionCount > 0 {
			d.AvgQuality = qualitySums[i] / float64(d.SessionCount)
		}
		d.Status = classifyStreak(d.TotalMinutes, targetMinutes)
	}

	return days
}

// classifyStreak maps a day's minutes onto its streak status relative to
// the target.
func classifyStreak(minutes, target int) StreakStatus {
	switch {
	case minutes == 0:
		return StreakNone
	case float64(minutes) < 0.5*float64(target):
		return StreakPartial
	case float64(minutes) >= 1.5*float64(target):
		return StreakExceptional
	default:
		return StreakHitTarget
	}
}
