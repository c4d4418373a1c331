package analyzer

import (
	"sort"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// heatmapCapDays bounds the heatmap window for memory; ranges longer than
// this are narrowed to the most recent year.
const heatmapCapDays = 365

// cellKey identifies one (day, hour) heatmap cell.
type cellKey struct {
	year  int
	month time.Month
	day   int
	hour  int
}

// AnalyzeHeatmap builds the sparse per-(day, hour) quality heatmap for the
// records in range. Oversized ranges (all-time, or spans beyond 365 days)
// are silently capped to the most recent 365 days. The cap anchors at the
// range end, clamped to the present so the all-time sentinel end does not
// push the window past every real session. Cells are returned in
// chronological order.
func AnalyzeHeatmap(records []session.Record, r session.DateRange) []HeatmapCell {
	if r.Kind == session.RangeAllTime || r.DurationInDays() > heatmapCapDays {
		end := r.End
		if now := time.Now(); end.After(now) {
			end = now
		}
		capped, err := session.Custom(end.AddDate(0, 0, -heatmapCapDays), end)
		if err == nil {
			r = capped
		}
	}

	type accum struct {
		qualitySum float64
		minutes    int
		count      int
	}
	cells := make(map[cellKey]*accum)

	for _, rec := range FilterInRange(records, r) {
		t := rec.StartTime
		key := cellKey{t.Year(), t.Month(), t.Day(), t.Hour()}
		a := cells[key]
		if a == nil {
			a = &accum{}
			cells[key] = a
		}
		a.qualitySum += rec.FocusScore
		a.minutes += rec.DurationMinutes
		a.count++
	}

	result := make([]HeatmapCell, 0, len(cells))
	for key, a := range cells {
		result = append(result, HeatmapCell{
			Year:         key.year,
			Month:        key.month,
			Day:          key.day,
			Hour:         key.hour,
			SessionCount: a.count,
			AvgQuality:   a.qualitySum / float64(a.count),
			TotalMinutes: a.minutes,
			Timestamp:    time.Date(key.year, key.month, key.day, key.hour, 0, 0, 0, time.Local),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	return result
}
