package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/config"
	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/session"
)

// Shared range flags for the analytics commands. Only one command runs per
// invocation, so the vars can back every flag set.
var (
	flagDays  int
	flagMonth string
	flagAll   bool
)

// addRangeFlags registers the shared --days/--month/--all trio.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagDays, "days", 30, "Analyze the last N days")
	cmd.Flags().StringVar(&flagMonth, "month", "", "Analyze one month (YYYY-MM)")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Analyze all recorded history")
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resolveRange turns the shared --days/--month/--all flags into a range.
// --month takes "YYYY-MM"; --all wins over everything.
func resolveRange(days int, month string, all bool) (session.DateRange, error) {
	if all {
		return session.AllTime(), nil
	}
	if month != "" {
		parts := strings.SplitN(month, "-", 2)
		if len(parts) != 2 {
			return session.DateRange{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return session.DateRange{}, fmt.Errorf("invalid month %q: %w", month, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return session.DateRange{}, fmt.Errorf("invalid month %q: %w", month, err)
		}
		return session.ForMonth(year, time.Month(m))
	}
	return session.LastNDays(days), nil
}

// rangeForDay covers one local calendar day.
func rangeForDay(day time.Time) (session.DateRange, error) {
	start := dayStart(day)
	return session.Custom(start, start.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

// weekToDate covers the current ISO week from Monday through now.
func weekToDate(now time.Time) session.DateRange {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	monday := dayStart(now).AddDate(0, 0, -offset)
	r, err := session.Custom(monday, now)
	if err != nil {
		// now is always after this week's Monday midnight.
		return session.LastNDays(7)
	}
	return r
}

// goalTargets maps configured goals onto the analyzer's target pair.
func goalTargets(cfg *config.Config) analyzer.GoalTargets {
	return analyzer.GoalTargets{
		DailyMinutes: cfg.Preferences.Goals.DailyStudyMinutes,
		DailyFocus:   cfg.Preferences.Goals.TargetFocusScore,
	}
}

// renderRings prints the three goal rings as progress bars.
func renderRings(rings [3]analyzer.GoalRing) {
	for _, ring := range rings {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(ring.Title),
			output.RingBar(ring.Current, ring.Target, ring.Unit, 20))
	}
	fmt.Println()
}
