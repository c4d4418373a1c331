// Package planner builds the adaptive 24-hour schedule: ordered constraint
// layers over hourly slots, greedy study allocation from historical
// productivity, block compression, and the recommendation summary.
package planner

import (
	"time"

	"github.com/quietstack/studypulse/internal/config"
	"github.com/quietstack/studypulse/internal/session"
)

// ActivityType labels one hour of the planned day.
type ActivityType string

// Activity types. Sleep and calendar events are protected: once a layer
// writes them, no later layer relabels those hours.
const (
	ActivityDeepStudy     ActivityType = "deep_study"
	ActivityLightStudy    ActivityType = "light_study"
	ActivityWork          ActivityType = "work"
	ActivityExercise      ActivityType = "exercise"
	ActivitySocial        ActivityType = "social"
	ActivityMeals         ActivityType = "meals"
	ActivityBreaks        ActivityType = "breaks"
	ActivitySleep         ActivityType = "sleep"
	ActivityCalendarEvent ActivityType = "calendar_event"
)

// IsStudy reports whether the type is a study allocation.
func (a ActivityType) IsStudy() bool {
	return a == ActivityDeepStudy || a == ActivityLightStudy
}

// ActivityBlock is a maximal run of hours sharing one activity type.
// EndHour is exclusive; DurationHours is EndHour - StartHour.
type ActivityBlock struct {
	Type       ActivityType `json:"type"`
	StartHour  int          `json:"start_hour"`
	EndHour    int          `json:"end_hour"`
	Confidence int          `json:"confidence"`
	Reason     string       `json:"reason"`

	// EventTitle carries the calendar event title for calendar blocks.
	EventTitle string `json:"event_title,omitempty"`
}

// DurationHours returns the block length in hours.
func (b ActivityBlock) DurationHours() int {
	return b.EndHour - b.StartHour
}

// Input carries everything the allocator needs for one target day.
type Input struct {
	// Date is the target day; only its weekday and calendar date matter.
	Date time.Time

	// History is the user's session history, used for per-hour
	// productivity scoring.
	History []session.Record

	// Events are the day's calendar busy blocks.
	Events []session.CalendarEvent

	// Prefs are the user's schedule constraints.
	Prefs config.Preferences

	// TargetStudyHours is the number of study hours to allocate; rounded
	// to whole hours.
	TargetStudyHours float64
}

// Schedule is the allocator output: the compressed day plus the hourly
// assignment it was derived from.
type Schedule struct {
	Date   time.Time       `json:"date"`
	Blocks []ActivityBlock `json:"blocks"`

	// Hours is the raw per-hour assignment before compression.
	Hours [24]ActivityType `json:"hours"`

	// StudyHoursPlanned counts the hours labeled deep or light study.
	StudyHoursPlanned int `json:"study_hours_planned"`

	// CalendarHours counts hours blocked by calendar events.
	CalendarHours int `json:"calendar_hours"`

	// SleepHours counts hours assigned to sleep.
	SleepHours int `json:"sleep_hours"`
}

// AvailableHours is the day minus sleep and calendar commitments.
func (s Schedule) AvailableHours() int {
	return 24 - s.SleepHours - s.CalendarHours
}

// blockConfidence is the fixed per-type confidence score.
var blockConfidence = map[ActivityType]int{
	ActivitySleep:         100,
	ActivityCalendarEvent: 100,
	ActivityMeals:         95,
	ActivityExercise:      95,
	ActivityDeepStudy:     90,
	ActivityLightStudy:    90,
	ActivityWork:          80,
	ActivitySocial:        80,
	ActivityBreaks:        70,
}

// blockReason is the fixed per-type justification string.
var blockReason = map[ActivityType]string{
	ActivitySleep:         "Rest window from your sleep schedule",
	ActivityCalendarEvent: "Blocked by a calendar event",
	ActivityMeals:         "Meal time from your preferences",
	ActivityExercise:      "Exercise block from your preferences",
	ActivityDeepStudy:     "High-productivity hour based on your history",
	ActivityLightStudy:    "Open hour suited for lighter review",
	ActivityWork:          "Work hours from your schedule",
	ActivitySocial:        "Protected social time",
	ActivityBreaks:        "Unscheduled time for rest and flexibility",
}
