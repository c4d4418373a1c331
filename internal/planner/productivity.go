package planner

import "github.com/quietstack/studypulse/internal/session"

// defaultCurve is the time-of-day focus estimate used for hours with no
// session history: morning peak 09-11, early-afternoon 14-16, evening
// 19-21, early-morning 06-08, and a 50 floor elsewhere.
var defaultCurve = func() [24]float64 {
	var curve [24]float64
	for h := range curve {
		curve[h] = 50
	}
	for h := 9; h <= 11; h++ {
		curve[h] = 85
	}
	for h := 14; h <= 16; h++ {
		curve[h] = 75
	}
	for h := 19; h <= 21; h++ {
		curve[h] = 70
	}
	for h := 6; h <= 8; h++ {
		curve[h] = 65
	}
	return curve
}()

// HourScore is the historical productivity estimate for one hour of day.
type HourScore struct {
	// Score is the mean focus of historical sessions started in this
	// hour, or the default curve value when none exist.
	Score float64 `json:"score"`

	// Sessions is the historical session count for this hour.
	Sessions int `json:"sessions"`
}

// ProductivityByHour scores every hour of day from the session history.
func ProductivityByHour(history []session.Record) [24]HourScore {
	var sums [24]float64
	var counts [24]int
	for _, rec := range history {
		h := rec.StartTime.Hour()
		sums[h] += rec.FocusScore
		counts[h]++
	}

	var scores [24]HourScore
	for h := range scores {
		scores[h].Sessions = counts[h]
		if counts[h] > 0 {
			scores[h].Score = sums[h] / float64(counts[h])
		} else {
			scores[h].Score = defaultCurve[h]
		}
	}
	return scores
}
