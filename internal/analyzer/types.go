// Package analyzer provides weekly, hourly, heatmap, streak, tag, and goal
// aggregation over study session records.
package analyzer

import "time"

// WeeklyStats aggregates sessions into ISO weekday buckets (Monday = 0).
//
// Per-day Minutes is deliberately the per-session average for that weekday
// (sum/k), not the raw sum: the stats report average daily load. TotalMinutes
// is the sum of those per-day averages.
type WeeklyStats struct {
	// Days holds one bucket per ISO weekday, Monday first.
	Days [7]DayBucket `json:"days"`

	// TotalMinutes is the sum of the per-day average minutes.
	TotalMinutes float64 `json:"total_minutes"`

	// TotalSessions is the number of sessions across all buckets.
	TotalSessions int `json:"total_sessions"`

	// AverageFocusScore is the mean of the non-empty per-day focus averages.
	AverageFocusScore float64 `json:"average_focus_score"`
}

// DayBucket is one weekday's aggregate within WeeklyStats.
type DayBucket struct {
	// Minutes is the average session length for this weekday (0 if empty).
	Minutes float64 `json:"minutes"`

	// AvgFocusScore is the running-mean focus score (0 if empty).
	AvgFocusScore float64 `json:"avg_focus_score"`

	// SessionCount is the number of sessions on this weekday.
	SessionCount int `json:"session_count"`
}

// HourlyBucket aggregates sessions that started in one hour of day.
type HourlyBucket struct {
	// Hour is the hour of day, 0-23.
	Hour int `json:"hour"`

	// TotalMinutes is the summed session duration for this hour.
	TotalMinutes int `json:"total_minutes"`

	// SessionCount is the number of sessions started in this hour.
	SessionCount int `json:"session_count"`

	// AvgFocusScore is the running-mean focus score.
	AvgFocusScore float64 `json:"avg_focus_score"`

	// AvgNoiseLevel is the running-mean ambient noise reading.
	AvgNoiseLevel float64 `json:"avg_noise_level"`

	// AvgLightLevel is the running-mean ambient light reading.
	AvgLightLevel float64 `json:"avg_light_level"`
}

// HeatmapCell is one (day, hour) cell of the quality heatmap. Cells exist
// only for hours with at least one session.
type HeatmapCell struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Day          int        `json:"day"`
	Hour         int        `json:"hour"`
	SessionCount int        `json:"session_count"`

	// AvgQuality is the mean focus score for sessions in this cell.
	AvgQuality float64 `json:"avg_quality"`

	// TotalMinutes is the summed session duration for this cell.
	TotalMinutes int `json:"total_minutes"`

	// Timestamp is the start of the cell's hour, used for ordering.
	Timestamp time.Time `json:"timestamp"`
}

// StreakStatus classifies a day's study adherence against a target.
type StreakStatus string

// Streak statuses. Thresholds: zero minutes is none, below half the target
// is partial, at or above 1.5x the target is exceptional.
const (
	StreakNone        StreakStatus = "none"
	StreakPartial     StreakStatus = "partial"
	StreakHitTarget   StreakStatus = "hit_target"
	StreakExceptional StreakStatus = "exceptional"
)

// StreakDay is one calendar day of a month's streak calendar. Every day of
// the month is present, zeroed when no sessions occurred.
type StreakDay struct {
	Year         int          `json:"year"`
	Month        time.Month   `json:"month"`
	Day          int          `json:"day"`
	TotalMinutes int          `json:"total_minutes"`
	AvgQuality   float64      `json:"avg_quality"`
	SessionCount int          `json:"session_count"`
	Status       StreakStatus `json:"status"`
}

// TagUsage ranks one tag's share of the filtered sessions. Entries beyond
// the requested top N are collapsed into a single "Other" entry.
type TagUsage struct {
	Title        string `json:"title"`
	Color        string `json:"color"`
	SessionCount int    `json:"session_count"`
	TotalMinutes int    `json:"total_minutes"`

	// Percent is this tag's share of the filtered session count, 0-100.
	Percent float64 `json:"percent"`
}

// GoalRing is a current/target progress pair for one daily goal.
type GoalRing struct {
	Title   string  `json:"title"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// Fraction returns current/target clamped to [0, 1], 0 when target is 0.
func (g GoalRing) Fraction() float64 {
	if g.Target <= 0 {
		return 0
	}
	f := g.Current / g.Target
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Tag labels and colors used by the aggregators.
const (
	// UntaggedTitle groups sessions without a tag.
	UntaggedTitle = "No tag"

	// OtherTitle labels the collapsed tail of the tag ranking.
	OtherTitle = "Other"

	// OtherColor is the gray sentinel color for the collapsed tail.
	OtherColor = "#9e9e9e"
)
