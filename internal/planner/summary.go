package planner

import (
	"fmt"
	"strings"

	"github.com/quietstack/studypulse/internal/config"
)

// SummaryInput carries the recent state the narrative draws from.
type SummaryInput struct {
	// Schedule is the allocation to describe.
	Schedule Schedule

	// TodaySessions is the number of sessions recorded today.
	TodaySessions int

	// DominantTag is today's most-used tag, empty if none.
	DominantTag string

	// Objective is the user's stated long-term goal, used when no
	// dominant tag exists.
	Objective string

	// DailyTargetMinutes is the formatted daily study target.
	DailyTargetMinutes int

	// RecentEnergy is the recent mood/energy signal, nil when no data
	// is available.
	RecentEnergy *float64

	// Energy is the configured low/high advisory band.
	Energy config.Energy
}

// Summarize derives the short human-readable rationale for a schedule.
// It is purely a formatting function and produces no new numeric state.
func Summarize(in SummaryInput) string {
	var sb strings.Builder

	focus := in.DominantTag
	if focus == "" {
		focus = in.Objective
	}
	switch {
	case in.TodaySessions > 0 && focus != "":
		fmt.Fprintf(&sb, "You have logged %d session(s) today, mostly on %s. ", in.TodaySessions, focus)
	case in.TodaySessions > 0:
		fmt.Fprintf(&sb, "You have logged %d session(s) today. ", in.TodaySessions)
	case focus != "":
		fmt.Fprintf(&sb, "Nothing logged yet today; next up: %s. ", focus)
	default:
		sb.WriteString("Nothing logged yet today. ")
	}

	fmt.Fprintf(&sb, "Daily target: %s. ", formatMinutes(in.DailyTargetMinutes))

	fmt.Fprintf(&sb, "%d hour(s) are free outside sleep and calendar commitments", in.Schedule.AvailableHours())
	if in.Schedule.CalendarHours > 0 {
		fmt.Fprintf(&sb, " (%d blocked by calendar)", in.Schedule.CalendarHours)
	}
	fmt.Fprintf(&sb, ", with %d study hour(s) planned.", in.Schedule.StudyHoursPlanned)

	if in.RecentEnergy != nil {
		switch {
		case *in.RecentEnergy < in.Energy.LowThreshold:
			sb.WriteString(" Energy has been low lately, so schedule breaks between blocks.")
		case *in.RecentEnergy >= in.Energy.HighThreshold:
			sb.WriteString(" Energy has been high lately, so maximize your focus hours.")
		}
	}

	return sb.String()
}

// formatMinutes renders a minute count as "2h 30m" style text.
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
