package analyzer

import "github.com/quietstack/studypulse/internal/session"

// AnalyzeHourly distributes the records in range across 24 hour-of-day
// buckets. Every bucket is present; empty hours stay zeroed.
func AnalyzeHourly(records []session.Record, r session.DateRange) [24]HourlyBucket {
	var buckets [24]HourlyBucket
	for h := range buckets {
		buckets[h].Hour = h
	}

	for _, rec := range FilterInRange(records, r) {
		b := &buckets[rec.StartTime.Hour()]

		b.TotalMinutes += rec.DurationMinutes
		b.AvgFocusScore = runningMean(b.AvgFocusScore, b.SessionCount, rec.FocusScore)
		b.AvgNoiseLevel = runningMean(b.AvgNoiseLevel, b.SessionCount, rec.AvgNoiseLevel)
		b.AvgLightLevel = runningMean(b.AvgLightLevel, b.SessionCount, rec.AvgLightLevel)
		b.SessionCount++
	}

	return buckets
}
