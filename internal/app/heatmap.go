package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Day-by-hour session quality heatmap",
	Long: `Render session quality as a day-by-hour grid. Each populated cell
shades by its average focus score. Ranges longer than a year are capped
to the trailing 365 days.`,
	RunE: runHeatmap,
}

func init() {
	addRangeFlags(heatmapCmd)
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(cmd *cobra.Command, args []string) error {
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

	cells := analyzer.AnalyzeHeatmap(records, r)

	if flagJSON {
		return printJSON(cells)
	}

	fmt.Println(output.Section("Quality Heatmap · " + r.DisplayName()))
	if len(cells) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions in this range."))
		return nil
	}

	// Cells arrive sorted by timestamp; group them into per-day rows.
	byDay := make(map[string][24]float64)
	var dayOrder []string
	for _, c := range cells {
		key := time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.Local).Format("Jan 02 2006")
		row, ok := byDay[key]
		if !ok {
			dayOrder = append(dayOrder, key)
		}
		row[c.Hour] = c.AvgQuality
		byDay[key] = row
	}

	fmt.Println(output.StyleMuted.Render(strings.Repeat(" ", 23) + "0     6     12    18    23"))
	for _, key := range dayOrder {
		row := byDay[key]
		var sb strings.Builder
		for h := 0; h < 24; h++ {
			sb.WriteString(output.HeatGlyph(row[h]))
		}
		fmt.Printf("%s %s\n", output.StyleLabel.Render(key), sb.String())
	}
	fmt.Println()
	fmt.Println(output.StyleMuted.Render("▓ 85+  ▒ 50-84  ░ <50  · none"))
	return nil
}
