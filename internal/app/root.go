// Package app contains the Cobra command tree for studypulse.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietstack/studypulse/internal/config"
	"github.com/quietstack/studypulse/internal/output"
	"github.com/quietstack/studypulse/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
	flagDB      string
)

var rootCmd = &cobra.Command{
	Use:   "studypulse",
	Short: "Study session analytics and adaptive daily scheduling",
	Long: `studypulse records completed study sessions, aggregates them into
weekly, hourly, heatmap, streak, and tag analytics, and builds a
personalized 24-hour schedule around your sleep, meals, work, and
calendar commitments.

Run 'studypulse' with no arguments for a quick look at today.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/studypulse/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default: ~/.config/studypulse/studypulse.db)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// setup loads config, applies output flags, and opens the database.
func setup() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath()
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	return cfg, db, nil
}

// dayStart truncates a time to local midnight.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
