package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/session"
)

var streakTarget int

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Monthly streak calendar",
	Long: `Classify every day of a month against the daily study target:
none, partial (below half), hit target, or exceptional (1.5x and up).`,
	RunE: runStreaks,
}

func init() {
	streaksCmd.Flags().StringVar(&flagMonth, "month", "", "Month to render (YYYY-MM, default current)")
	streaksCmd.Flags().IntVar(&streakTarget, "target", 0, "Daily target minutes (default from config)")
	rootCmd.AddCommand(streaksCmd)
}

func runStreaks(cmd *cobra.Command, args []string) error {
	now := time.Now()
	r, err := session.ForMonth(now.Year(), now.Month())
	if err != nil {
		return err
	}
	if flagMonth != "" {
		r, err = resolveRange(0, flagMonth, false)
		if err != nil {
			return err
		}
	}

	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	target := streakTarget
	if target <= 0 {
		target = cfg.Preferences.Goals.DailyStudyMinutes
	}

	records, err := db.ListSessionsSince(r.Start)
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	days := analyzer.AnalyzeStreaks(records, target, r.Month, r.Year)

	if flagJSON {
		return printJSON(days)
	}

	fmt.Println(output.Section(fmt.Sprintf("Streaks · %s (target %d min/day)", r.DisplayName(), target)))

	var sb strings.Builder
	hit := 0
	for i, d := range days {
		sb.WriteString(output.StreakGlyph(string(d.Status)))
		sb.WriteString(" ")
		if (i+1)%7 == 0 {
			sb.WriteString("\n")
		}
		if d.Status == analyzer.StreakHitTarget || d.Status == analyzer.StreakExceptional {
			hit++
		}
	}
	fmt.Println(strings.TrimRight(sb.String(), "\n"))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Days on target"),
		output.StyleValue.Render(fmt.Sprintf("%d/%d", hit, len(days))))
	fmt.Println(output.StyleMuted.Render("◆ exceptional  ● hit  ◐ partial  · none"))
	return nil
}
