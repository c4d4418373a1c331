package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	RunE:  runSessions,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded session by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	addRangeFlags(sessionsCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
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
	records = analyzer.FilterInRange(records, r)

	if flagJSON {
		return printJSON(records)
	}

	fmt.Println(output.Section("Sessions · " + r.DisplayName()))
	if len(records) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions in this range."))
		return nil
	}

	tbl := output.NewTable("ID", "Start", "Min", "Tag", "Focus").AlignRight(0, 2, 4)
	for _, rec := range records {
		tag := rec.TagTitle
		if tag == "" {
			tag = analyzer.UntaggedTitle
		}
		tbl.AddRow(fmt.Sprintf("%d", rec.ID),
			rec.StartTime.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", rec.DurationMinutes),
			tag,
			fmt.Sprintf("%.0f", rec.FocusScore))
	}
	fmt.Print(tbl.Render())
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteSession(id); err != nil {
		return err
	}
	fmt.Printf("%s Deleted session %d\n", output.StyleSuccess.Render("✓"), id)
	return nil
}
