package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var goalsDate string

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Daily goal ring progress",
	Long: `Show the three daily goal rings for one day: study minutes against
the target (per-weekday plan when configured), average focus against the
target score, and session count against an hours-derived target.`,
	RunE: runGoals,
}

func init() {
	goalsCmd.Flags().StringVar(&goalsDate, "date", "", "Day to evaluate (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if goalsDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", goalsDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", goalsDate)
		}
		day = parsed
	}

	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	start := dayStart(day)
	records, err := db.ListSessionsSince(start)
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	dayRange, err := rangeForDay(day)
	if err != nil {
		return err
	}
	todays := analyzer.FilterInRange(records, dayRange)

	rings := analyzer.GoalRings(todays, goalTargets(cfg), cfg.Preferences.StudyPlan, day.Weekday())

	if flagJSON {
		return printJSON(rings)
	}

	fmt.Println(output.Section("Goals · " + start.Format("Mon Jan 02")))
	renderRings(rings)
	return nil
}
