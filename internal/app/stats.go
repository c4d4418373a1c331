package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Weekly study statistics",
	Long: `Aggregate sessions in the selected range into ISO weekday buckets.
Per-day minutes is the average session length for that weekday; the total
is the sum of those averages.`,
	RunE: runStats,
}

func init() {
	addRangeFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func runStats(cmd *cobra.Command, args []string) error {
	r, err := resolveRange(flagDays, flagMonth, flagAll)
	if err != nil {
		return err
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.ListSessionsSince(r.Start)
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	stats := analyzer.AnalyzeWeekly(records, r)

	if flagJSON {
		return printJSON(stats)
	}

	fmt.Println(output.Section("Weekly Stats · " + r.DisplayName()))

	tbl := output.NewTable("Day", "Avg Min", "Focus", "Sessions").AlignRight(1, 2, 3)
	for i, day := range stats.Days {
		if day.SessionCount == 0 {
			tbl.AddRow(weekdayNames[i], "-", "-", "0")
			continue
		}
		tbl.AddRow(weekdayNames[i],
			fmt.Sprintf("%.0f", day.Minutes),
			fmt.Sprintf("%.1f", day.AvgFocusScore),
			fmt.Sprintf("%d", day.SessionCount))
	}
	fmt.Print(tbl.Render())

	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total (avg/day summed)"),
		output.StyleValue.Render(fmt.Sprintf("%.0f min", stats.TotalMinutes)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Sessions"),
		output.StyleValue.Render(fmt.Sprintf("%d", stats.TotalSessions)))
	if stats.TotalSessions > 0 {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Average focus"),
			output.StyleValue.Render(fmt.Sprintf("%.1f", stats.AverageFocusScore)))
	}
	return nil
}
