// ABOUTME: CLI commands for exercise progress.
// ABOUTME: Records the latest value per exercise and lists values with units.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Record and view exercise progress",
}

var progressSetCmd = &cobra.Command{
	Use:   "set <exercise> <value>",
	Short: "Record the latest value for an exercise",
	Long: `Record the latest value for an exercise, replacing the previous one.
Run, Cycle and Row are recorded in kilometres; everything else in kilograms.

Examples:
  ftracker progress set Run 5
  ftracker progress set "Bench Press" 80`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := models.ParseInt("progress value", args[1])
		if err != nil {
			return err
		}
		p, err := models.NewProgressEntry(args[0], value)
		if err != nil {
			return err
		}
		if err := repo.RecordProgress(p); err != nil {
			return fmt.Errorf("failed to record progress: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s: %d %s\n", p.Exercise, p.Value, p.Unit())
		return nil
	},
}

var progressListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercise progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.ListProgress()
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}
		if len(entries) == 0 {
			color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "No progress recorded.")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, p := range entries {
			rows = append(rows, []string{p.Exercise, strconv.FormatInt(p.Value, 10), p.Unit()})
		}
		return menu.RenderTable(cmd.OutOrStdout(), []string{"Exercise", "KG/Kilometres", "Unit"}, rows)
	},
}

func init() {
	progressCmd.AddCommand(progressSetCmd)
	progressCmd.AddCommand(progressListCmd)
	rootCmd.AddCommand(progressCmd)
}
