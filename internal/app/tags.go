package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/analyzer"
	"github.com/quietstack/studypulse/internal/output"
)

var tagsTop int

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Tag usage ranking",
	Long: `Rank tags by total minutes within the selected range. Tags beyond
the top N collapse into a single Other row; untagged sessions group
under "No tag".`,
	RunE: runTags,
}

func init() {
	addRangeFlags(tagsCmd)
	tagsCmd.Flags().IntVar(&tagsTop, "top", 5, "Number of tags before collapsing into Other")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
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

	usages := analyzer.AnalyzeTags(records, r, tagsTop)

	if flagJSON {
		return printJSON(usages)
	}

	fmt.Println(output.Section("Tags · " + r.DisplayName()))
	if len(usages) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions in this range."))
		return nil
	}

	tbl := output.NewTable("Tag", "Sessions", "Minutes", "Share").AlignRight(1, 2, 3)
	for _, u := range usages {
		tbl.AddRow(u.Title,
			fmt.Sprintf("%d", u.SessionCount),
			fmt.Sprintf("%d", u.TotalMinutes),
			fmt.Sprintf("%.1f%%", u.Percent))
	}
	fmt.Print(tbl.Render())
	return nil
}
