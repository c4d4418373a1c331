package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

// runDashboard renders the no-argument overview: today's rings plus a
// pointer at the subcommands.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	today := dayStart(now)

	records, err := db.ListSessionsSince(today.AddDate(0, 0, -7))
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	dayRange, err := rangeForDay(today)
	if err != nil {
		return err
	}
	todays := analyzer.FilterInRange(records, dayRange)

	rings := analyzer.GoalRings(todays, goalTargets(cfg), cfg.Preferences.StudyPlan, now.Weekday())

	fmt.Println("studypulse", appVersion)
	fmt.Println()
	fmt.Println(output.Section("Today"))
	renderRings(rings)

	week := analyzer.AnalyzeWeekly(records, weekToDate(now))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Sessions this week"),
		output.StyleValue.Render(fmt.Sprintf("%d", week.TotalSessions)))
	fmt.Println()
	fmt.Println(output.StyleMuted.Render("More: stats · hourly · heatmap · streaks · tags · goals · plan · track"))
	return nil
}
