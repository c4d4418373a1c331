package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Hour-of-day performance profile",
	Long: `Bucket sessions in the selected range by their starting hour and
report per-hour session count, total minutes, and running-mean focus,
noise, and light readings.`,
	RunE: runHourly,
}

func init() {
	addRangeFlags(hourlyCmd)
	rootCmd.AddCommand(hourlyCmd)
}

func runHourly(cmd *cobra.Command, args []string) error {
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

	buckets := analyzer.AnalyzeHourly(records, r)

	if flagJSON {
		return printJSON(buckets)
	}

	fmt.Println(output.Section("Hourly Profile · " + r.DisplayName()))

	tbl := output.NewTable("Hour", "Sessions", "Minutes", "Focus", "Noise", "Light").
		AlignRight(1, 2, 3, 4, 5)
	active := 0
	for _, b := range buckets {
		if b.SessionCount == 0 {
			continue
		}
		active++
		tbl.AddRow(fmt.Sprintf("%02d:00", b.Hour),
			fmt.Sprintf("%d", b.SessionCount),
			fmt.Sprintf("%d", b.TotalMinutes),
			fmt.Sprintf("%.1f", b.AvgFocusScore),
			fmt.Sprintf("%.1f", b.AvgNoiseLevel),
			fmt.Sprintf("%.1f", b.AvgLightLevel))
	}
	if active == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions in this range."))
		return nil
	}
	fmt.Print(tbl.Render())
	return nil
}
