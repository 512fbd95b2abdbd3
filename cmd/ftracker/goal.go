// ABOUTME: CLI commands for fitness goals.
// ABOUTME: Supports setting one of three fixed goals, listing, and checking progress.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Manage the three fixed fitness goals.

GOALS:

  1  Lose weight               target: kilograms to lose
  2  Run/Row/Cycle for 25 km   target: exercise name
  3  Bench press 100kg         target: rep count`,
}

var goalSetCmd = &cobra.Command{
	Use:   "set <kind> <target>",
	Short: "Set a fitness goal",
	Long: `Set one of the fixed fitness goals, replacing any earlier goal of the same kind.

Examples:
  ftracker goal set 1 10
  ftracker goal set 2 Row
  ftracker goal set 3 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseGoalKind(args[0])
		if err != nil {
			return err
		}
		g, err := models.ParseGoal(kind, args[1])
		if err != nil {
			return err
		}
		if err := repo.SetGoal(g); err != nil {
			return fmt.Errorf("failed to set goal: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Goal set: %s (%s)\n", g.Kind, g.Target.Value())
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List fitness goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.ListGoals()
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goals) == 0 {
			color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "No goals set.")
			return nil
		}

		rows := make([][]string, 0, len(goals))
		for _, g := range goals {
			rows = append(rows, []string{strconv.Itoa(int(g.Kind)), g.Kind.String(), g.Target.Value()})
		}
		return menu.RenderTable(cmd.OutOrStdout(), []string{"Goal", "Description", "Exercise"}, rows)
	},
}

var goalCheckCmd = &cobra.Command{
	Use:   "check <kind> <measurement>",
	Short: "Check a measurement against a goal",
	Long: `Compare a measurement against a goal's fixed threshold.

  1  kilograms lost          met at 10
  2  kilometres travelled    met at 25
  3  kilograms benched       met at 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseGoalKind(args[0])
		if err != nil {
			return err
		}
		measurement, err := models.ParseInt("measurement", args[1])
		if err != nil {
			return err
		}

		e := models.Evaluate(kind, measurement)
		if e.Met {
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), e.Message)
		} else {
			color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), e.Message)
		}
		return nil
	},
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalCheckCmd)
	rootCmd.AddCommand(goalCmd)
}
