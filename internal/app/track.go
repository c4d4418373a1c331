package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/session"
)

var (
	trackMinutes int
	trackFocus   float64
	trackTag     string
	trackColor   string
	trackNoise   float64
	trackLight   float64
	trackPickups int
	trackNote    string
	trackAt      string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record a completed study session",
	Long: `Record a completed study session with its duration, focus score, and
optional tag, environment readings, and notes. By default the session is
backdated so it ends now; use --at to set an explicit start time.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackMinutes, "minutes", 0, "Session duration in minutes (required)")
	trackCmd.Flags().Float64Var(&trackFocus, "focus", 0, "Focus score 0-100")
	trackCmd.Flags().StringVar(&trackTag, "tag", "", "Subject tag")
	trackCmd.Flags().StringVar(&trackColor, "tag-color", "", "Tag display color (hex)")
	trackCmd.Flags().Float64Var(&trackNoise, "noise", 0, "Average noise level")
	trackCmd.Flags().Float64Var(&trackLight, "light", 0, "Average light level")
	trackCmd.Flags().IntVar(&trackPickups, "pickups", 0, "Phone pickup count")
	trackCmd.Flags().StringVar(&trackNote, "note", "", "Free-form note")
	trackCmd.Flags().StringVar(&trackAt, "at", "", "Start time (RFC 3339 or '2006-01-02 15:04')")
	_ = trackCmd.MarkFlagRequired("minutes")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	if trackMinutes <= 0 {
		return fmt.Errorf("--minutes must be positive, got %d", trackMinutes)
	}
	if trackFocus < 0 || trackFocus > 100 {
		return fmt.Errorf("--focus must be between 0 and 100, got %v", trackFocus)
	}

	start := time.Now().Add(-time.Duration(trackMinutes) * time.Minute)
	if trackAt != "" {
		parsed, err := parseTime(trackAt)
		if err != nil {
			return err
		}
		start = parsed
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	rec := session.Record{
		StartTime:       start,
		DurationMinutes: trackMinutes,
		TagTitle:        trackTag,
		TagColor:        trackColor,
		FocusScore:      trackFocus,
		AvgNoiseLevel:   trackNoise,
		AvgLightLevel:   trackLight,
		PhonePickups:    trackPickups,
		Notes:           trackNote,
	}

	id, err := db.InsertSession(rec)
	if err != nil {
		return err
	}
	rec.ID = id

	if flagJSON {
		return printJSON(rec)
	}

	label := fmt.Sprintf("%d min", rec.DurationMinutes)
	if rec.TagTitle != "" {
		label += " of " + rec.TagTitle
	}
	fmt.Printf("%s Recorded %s starting %s (session %d)\n",
		output.StyleSuccess.Render("✓"),
		label,
		rec.StartTime.Format("Mon 15:04"),
		rec.ID)
	return nil
}

// parseTime accepts RFC 3339 or a local "2006-01-02 15:04" timestamp.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339 or '2006-01-02 15:04'", s)
}
