package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/engine"
	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/planner"
	"github.com/quietstack/studypulse/internal/session"
)

var (
	planDate       string
	planStudyHours float64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Adaptive 24-hour schedule",
	Long: `Build a personalized schedule for one day. Sleep, meals, work,
exercise, social time, and calendar events are laid down as constraint
layers; the remaining hours receive study blocks in descending order of
your historical per-hour productivity.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planDate, "date", "", "Day to plan (YYYY-MM-DD, default today)")
	planCmd.Flags().Float64Var(&planStudyHours, "study-hours", 0, "Override the study-hour target")
	rootCmd.AddCommand(planCmd)
}

// planResponse is the --json payload: the schedule plus its narrative.
type planResponse struct {
	Schedule planner.Schedule `json:"schedule"`
	Summary  string           `json:"summary"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if planDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", planDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", planDate)
		}
		date = parsed
	}

	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	history, err := db.ListSessionsSince(time.Unix(0, 0))
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	events, err := db.ListEventsForDay(date)
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	target := planStudyHours
	if target <= 0 {
		target = studyTarget(cfg.Preferences.StudyPlan, date.Weekday(), cfg.Preferences.Goals.DailyStudyMinutes)
	}

	sched := engine.New().Plan(planner.Input{
		Date:             date,
		History:          history,
		Events:           events,
		Prefs:            cfg.Preferences,
		TargetStudyHours: target,
	})

	dayRange, err := rangeForDay(date)
	if err != nil {
		return err
	}
	todays := analyzer.FilterInRange(history, dayRange)

	summary := planner.Summarize(planner.SummaryInput{
		Schedule:           sched,
		TodaySessions:      len(todays),
		DominantTag:        analyzer.DominantTag(todays),
		Objective:          cfg.Preferences.Objective,
		DailyTargetMinutes: cfg.Preferences.Goals.DailyStudyMinutes,
		RecentEnergy:       recentEnergy(history, dayRange.End),
		Energy:             cfg.Preferences.Energy,
	})

	if flagJSON {
		return printJSON(planResponse{Schedule: sched, Summary: summary})
	}

	fmt.Println(output.Section("Plan · " + dayStart(date).Format("Mon Jan 02")))
	fmt.Println()

	hours := make([]string, 24)
	for i, a := range sched.Hours {
		hours[i] = string(a)
	}
	fmt.Println(" " + output.StyleMuted.Render("0     6     12    18    23"))
	fmt.Println(" " + output.TimelineBar(hours))
	fmt.Println()

	tbl := output.NewTable("Time", "Activity", "Conf", "Why").AlignRight(2)
	for _, b := range sched.Blocks {
		why := b.Reason
		if b.EventTitle != "" {
			why = b.EventTitle
		}
		tbl.AddRow(fmt.Sprintf("%02d:00-%02d:00", b.StartHour, b.EndHour),
			activityLabel(b.Type),
			fmt.Sprintf("%d%%", b.Confidence),
			why)
	}
	fmt.Print(tbl.Render())

	fmt.Println()
	fmt.Println(output.StyleMuted.Render(summary))
	return nil
}

// studyTarget resolves the study-hour target for a weekday: the per-weekday
// plan when present, otherwise the daily goal converted to hours.
func studyTarget(plan map[string]int, weekday time.Weekday, dailyMinutes int) float64 {
	if minutes, ok := plan[weekday.String()]; ok && minutes > 0 {
		return float64(minutes) / 60
	}
	return float64(dailyMinutes) / 60
}

// recentEnergy is the mean focus score over the trailing seven days, nil
// when that window holds no sessions.
func recentEnergy(history []session.Record, date time.Time) *float64 {
	cutoff := date.AddDate(0, 0, -7)
	var sum float64
	var n int
	for _, rec := range history {
		if rec.StartTime.Before(cutoff) || rec.StartTime.After(date) {
			continue
		}
		sum += rec.FocusScore
		n++
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// activityLabel maps an activity type onto its display name.
func activityLabel(a planner.ActivityType) string {
	switch a {
	case planner.ActivityDeepStudy:
		return "Deep study"
	case planner.ActivityLightStudy:
		return "Light study"
	case planner.ActivityCalendarEvent:
		return "Calendar"
	case planner.ActivityWork:
		return "Work"
	case planner.ActivityExercise:
		return "Exercise"
	case planner.ActivitySocial:
		return "Social"
	case planner.ActivityMeals:
		return "Meal"
	case planner.ActivitySleep:
		return "Sleep"
	default:
		return "Break"
	}
}
