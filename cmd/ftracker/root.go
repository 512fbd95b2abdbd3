// ABOUTME: Root Cobra command for the ftracker CLI.
// ABOUTME: Loads config, sets the log level, and manages the storage lifecycle.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/ftracker/internal/config"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/harperreed/ftracker/internal/storage"
	"github.com/spf13/cobra"
)

// skipStorageAnnotation marks commands that never touch the store.
const skipStorageAnnotation = "ftracker/skip-storage"

var (
	dbPath   string
	logLevel string

	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "ftracker",
	Short: "Personal fitness tracker",
	Long: `ftracker is a CLI tool for tracking exercises, workout routines, goals and progress.

Run without a command to use the interactive menu.

WHAT IT TRACKS:

  Exercises   a catalog of exercises grouped by category
  Routines    named workouts built from exercise entries
  Goals       lose 10kg, run/row/cycle 25 km, bench press 100kg
  Progress    the latest km (Run, Cycle, Row) or kg for each exercise

QUICK START:

  $ ftracker exercise add 1 "Bench Press" Upper
  $ ftracker exercise list --category Up
  $ ftracker routine create 1 "Upper body 1"
  $ ftracker routine attach 1 1 "Bench Press"
  $ ftracker goal set 2 Row
  $ ftracker progress set Row 12
  $ ftracker goal check 2 12

DATA STORAGE:

  SQLite database at ~/.local/share/ftracker/ftracker.db by default.
  Override with --db, or configure a postgres backend in
  ~/.config/ftracker/config.json (or FTRACKER_* environment variables).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		log.SetOutput(os.Stderr)
		log.SetLevel(parsed)

		_ = closeRepo()
		if cmd.Annotations[skipStorageAnnotation] == "true" {
			return nil
		}
		if dbPath != "" {
			repo, err = storage.Open(config.ExpandPath(dbPath))
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeRepo()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return menu.New(repo, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

// Execute runs the root command. Post-run hooks are skipped when a command
// fails, so the store is closed here as well.
func Execute() error {
	defer closeRepo()
	return rootCmd.Execute()
}

func closeRepo() error {
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}
