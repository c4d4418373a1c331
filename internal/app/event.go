package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/session"
)

var (
	eventDate  string
	eventStart string
	eventEnd   string
	eventTitle string
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar busy blocks",
	Long: `Calendar events mark hours the planner must not schedule over.
Events are keyed by their start day and expanded by the configured
buffer hours when the schedule is built.`,
	RunE: runEventList,
}

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a calendar busy block",
	RunE:  runEventAdd,
}

func init() {
	eventCmd.PersistentFlags().StringVar(&eventDate, "date", "", "Day (YYYY-MM-DD, default today)")
	eventAddCmd.Flags().StringVar(&eventStart, "start", "", "Start time (HH:MM, required)")
	eventAddCmd.Flags().StringVar(&eventEnd, "end", "", "End time (HH:MM, required)")
	eventAddCmd.Flags().StringVar(&eventTitle, "title", "", "Event title (required)")
	_ = eventAddCmd.MarkFlagRequired("start")
	_ = eventAddCmd.MarkFlagRequired("end")
	_ = eventAddCmd.MarkFlagRequired("title")
	eventCmd.AddCommand(eventAddCmd)
	rootCmd.AddCommand(eventCmd)
}

// eventDay resolves the --date flag, defaulting to today.
func eventDay() (time.Time, error) {
	if eventDate == "" {
		return dayStart(time.Now()), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", eventDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", eventDate)
	}
	return parsed, nil
}

// clockOn parses "HH:MM" onto the given day.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want HH:MM", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	day, err := eventDay()
	if err != nil {
		return err
	}
	start, err := clockOn(day, eventStart)
	if err != nil {
		return err
	}
	end, err := clockOn(day, eventEnd)
	if err != nil {
		return err
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	ev := session.CalendarEvent{Start: start, End: end, Title: eventTitle}
	if _, err := db.InsertEvent(ev); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(ev)
	}
	fmt.Printf("%s Added %q %s-%s on %s\n",
		output.StyleSuccess.Render("✓"),
		ev.Title,
		ev.Start.Format("15:04"), ev.End.Format("15:04"),
		day.Format("Mon Jan 02"))
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	day, err := eventDay()
	if err != nil {
		return err
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := db.ListEventsForDay(day)
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	if flagJSON {
		return printJSON(events)
	}

	fmt.Println(output.Section("Events · " + day.Format("Mon Jan 02")))
	if len(events) == 0 {
		fmt.Println(output.StyleMuted.Render("No events on this day."))
		return nil
	}
	tbl := output.NewTable("Start", "End", "Title")
	for _, ev := range events {
		tbl.AddRow(ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Title)
	}
	fmt.Print(tbl.Render())
	return nil
}
