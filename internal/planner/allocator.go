package planner

import (
	"math"
	"sort"

	"github.com/quietstack/studypulse/internal/session"
)

// BuildSchedule assigns every hour of the target day an activity type by
// applying the constraint layers in priority order, then compresses the
// result into contiguous blocks. Each layer writes only hours that are
// still unassigned, so calendar events and sleep are never relabeled by
// later layers.
func BuildSchedule(in Input) Schedule {
	var slots [24]ActivityType
	var eventTitles [24]string
	weekday := in.Date.Weekday().String()

	// Layer 1: calendar events, expanded by the configured buffers.
	if in.Prefs.Calendar.Enabled {
		for _, ev := range in.Events {
			start := ev.Start.Hour() - in.Prefs.Calendar.BufferBeforeHours
			end := ev.End.Hour() + in.Prefs.Calendar.BufferAfterHours
			if ev.End.Minute() > 0 || ev.End.Second() > 0 {
				end++
			}
			for h := clampHour(start); h < clampHour(end); h++ {
				if slots[h] == "" {
					slots[h] = ActivityCalendarEvent
					eventTitles[h] = ev.Title
				}
			}
		}
	}

	// Layer 2: sleep window (may wrap midnight).
	for h := range slots {
		if slots[h] == "" && in.Prefs.Sleep.Covers(h) {
			slots[h] = ActivitySleep
		}
	}

	// Layer 3: enabled meals.
	for _, meal := range in.Prefs.Meals.All() {
		if !meal.Enabled || meal.Hour < 0 || meal.Hour > 23 {
			continue
		}
		if slots[meal.Hour] == "" {
			slots[meal.Hour] = ActivityMeals
		}
	}

	// Layer 4: work hours, unless studying during work is allowed.
	work := in.Prefs.Work
	if work.Enabled && !work.AllowStudy && containsDay(work.Days, weekday) {
		for h := clampHour(work.StartHour); h < clampHour(work.EndHour); h++ {
			if slots[h] == "" {
				slots[h] = ActivityWork
			}
		}
	}

	// Layer 5: exercise blocks.
	for _, span := range in.Prefs.Exercise {
		for h := clampHour(span.StartHour); h < clampHour(span.EndHour); h++ {
			if slots[h] == "" {
				slots[h] = ActivityExercise
			}
		}
	}

	// Layer 6: protected social time on preferred days.
	social := in.Prefs.Social
	if social.Enabled && social.Protected && containsDay(social.Days, weekday) {
		for _, h := range social.Hours {
			if h >= 0 && h <= 23 && slots[h] == "" {
				slots[h] = ActivitySocial
			}
		}
	}

	// Layer 7: greedy study allocation over the remaining free hours.
	allocateStudy(&slots, in.History, in.TargetStudyHours)

	// Layer 8: everything left is a break.
	for h := range slots {
		if slots[h] == "" {
			slots[h] = ActivityBreaks
		}
	}

	sched := Schedule{
		Date:   in.Date,
		Hours:  slots,
		Blocks: compressBlocks(slots, eventTitles),
	}
	for _, a := range slots {
		switch {
		case a.IsStudy():
			sched.StudyHoursPlanned++
		case a == ActivityCalendarEvent:
			sched.CalendarHours++
		case a == ActivitySleep:
			sched.SleepHours++
		}
	}
	return sched
}

// allocateStudy assigns the top round(targetHours) free hours by historical
// productivity. Ties break by hour ascending so allocation is deterministic.
// When fewer free hours exist than requested, all of them are used.
func allocateStudy(slots *[24]ActivityType, history []session.Record, targetHours float64) {
	scores := ProductivityByHour(history)

	var free []int
	for h := range slots {
		if slots[h] == "" {
			free = append(free, h)
		}
	}

	sort.Slice(free, func(i, j int) bool {
		a, b := free[i], free[j]
		if scores[a].Score != scores[b].Score {
			return scores[a].Score > scores[b].Score
		}
		return a < b
	})

	want := int(math.Round(targetHours))
	if want < 0 {
		want = 0
	}
	if want > len(free) {
		want = len(free)
	}

	for _, h := range free[:want] {
		// Deep study needs real history: a default-curve score alone
		// never qualifies.
		if (scores[h].Sessions > 0 && scores[h].Score >= 75) || scores[h].Sessions >= 3 {
			slots[h] = ActivityDeepStudy
		} else {
			slots[h] = ActivityLightStudy
		}
	}
}

// clampHour bounds an hour index to [0, 24].
func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 24 {
		return 24
	}
	return h
}

// containsDay reports whether the weekday name appears in days.
func containsDay(days []string, weekday string) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
