package analyzer

import (
	"fmt"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// DefaultDailyMinutes is the library fallback for the daily study target
// when neither preferences nor the weekday study plan provide one.
const DefaultDailyMinutes = 120

// GoalTargets are the configured daily targets the rings are measured
// against.
type GoalTargets struct {
	// DailyMinutes is the daily study-time target. Values <= 0 are
	// backfilled from the weekday study plan.
	DailyMinutes int

	// DailyFocus is the target focus score, 0-100.
	DailyFocus float64
}

// GoalRings computes the three daily progress rings (study time, focus
// quality, session count) for a set of records already scoped to the target
// day. plan maps weekday names ("Monday"...) to planned study minutes and
// backfills a non-positive DailyMinutes target, falling back to
// DefaultDailyMinutes when the weekday has no plan entry.
func GoalRings(records []session.Record, targets GoalTargets, plan map[string]int, weekday time.Weekday) [3]GoalRing {
	minutesTarget := targets.DailyMinutes
	if minutesTarget <= 0 {
		minutesTarget = plan[weekday.String()]
		if minutesTarget <= 0 {
			minutesTarget = DefaultDailyMinutes
		}
	}

	var totalMinutes int
	var focusSum float64
	for _, rec := range records {
		totalMinutes += rec.DurationMinutes
		focusSum += rec.FocusScore
	}

	var avgFocus float64
	if len(records) > 0 {
		avgFocus = focusSum / float64(len(records))
	}

	timeTitle := "Study Time"
	if tag := DominantTag(records); tag != "" {
		timeTitle = fmt.Sprintf("Study Time · %s", tag)
	}

	sessionTarget := minutesTarget / 60
	if sessionTarget < 3 {
		sessionTarget = 3
	}

	return [3]GoalRing{
		{Title: timeTitle, Current: float64(totalMinutes), Target: float64(minutesTarget), Unit: "min"},
		{Title: "Focus Quality", Current: avgFocus, Target: targets.DailyFocus, Unit: "%"},
		{Title: "Sessions", Current: float64(len(records)), Target: float64(sessionTarget), Unit: "sessions"},
	}
}

// DominantTag returns the tag title with the most sessions in the set, or
// empty when every record is untagged. On a tie the first tag to reach the
// winning count (in record order) wins.
func DominantTag(records []session.Record) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, rec := range records {
		if !rec.Tagged() {
			continue
		}
		counts[rec.TagTitle]++
		if counts[rec.TagTitle] > bestCount {
			best = rec.TagTitle
			bestCount = counts[rec.TagTitle]
		}
	}
	return best
}
