// Package session defines the study-session domain types shared by the
// analyzer, planner, and store packages.
package session

import "time"

// Record is a single completed study session. Records are created by the
// track flow, deleted only by explicit user action, and never mutated once
// persisted.
type Record struct {
	// ID is the store-assigned row identifier (0 for unsaved records).
	ID int64 `json:"id,omitempty"`

	// StartTime is when the session began.
	StartTime time.Time `json:"start_time"`

	// DurationMinutes is the session length in whole minutes (> 0).
	DurationMinutes int `json:"duration_minutes"`

	// TagTitle labels the session subject. Empty means untagged.
	TagTitle string `json:"tag_title,omitempty"`

	// TagColor is the hex display color for the tag, if any.
	TagColor string `json:"tag_color,omitempty"`

	// FocusScore is the 0-100 productivity score for the session.
	FocusScore float64 `json:"focus_score"`

	// AvgNoiseLevel is the mean ambient noise reading (unitless).
	AvgNoiseLevel float64 `json:"avg_noise_level"`

	// AvgLightLevel is the mean ambient light reading (unitless).
	AvgLightLevel float64 `json:"avg_light_level"`

	// PhonePickups counts phone pickups during the session (>= 0).
	PhonePickups int `json:"phone_pickups"`

	// Notes is optional free-form text attached by the user.
	Notes string `json:"notes,omitempty"`
}

// EndTime returns the session end computed from start and duration.
func (r Record) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Tagged reports whether the record carries a tag.
func (r Record) Tagged() bool {
	return r.TagTitle != ""
}

// CalendarEvent is a busy block supplied by the calendar source for a
// single target day.
type CalendarEvent struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Title string    `json:"title"`
}
