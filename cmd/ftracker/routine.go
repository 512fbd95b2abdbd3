// ABOUTME: CLI commands for workout routines.
// ABOUTME: Supports creating routines, attaching exercises, and showing routines by name.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/storage"
	"github.com/spf13/cobra"
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage workout routines",
}

var routineCreateCmd = &cobra.Command{
	Use:   "create <workout-id> <name>",
	Short: "Create or rename a routine",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := models.ParseInt("workout id", args[0])
		if err != nil {
			return err
		}
		r, err := models.NewRoutine(id, args[1])
		if err != nil {
			return err
		}
		if err := repo.CreateRoutine(r); err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Saved routine %d: %s\n", r.WorkoutID, r.Name)
		return nil
	},
}

var routineAttachCmd = &cobra.Command{
	Use:   "attach <workout-id> <entry-id> <exercise>",
	Short: "Attach an exercise to a routine",
	Long: `Attach an exercise entry to an existing routine.
The routine must exist; create it first with 'ftracker routine create'.

Example:
  ftracker routine attach 1 1 "Bench Press"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := models.ParseInt("workout id", args[0])
		if err != nil {
			return err
		}
		entryID, err := models.ParseInt("entry id", args[1])
		if err != nil {
			return err
		}
		re, err := models.NewRoutineExercise(entryID, args[2], workoutID)
		if err != nil {
			return err
		}
		if err := repo.AttachExercise(re); err != nil {
			if errors.Is(err, storage.ErrReferential) {
				return fmt.Errorf("routine %d does not exist", workoutID)
			}
			return fmt.Errorf("failed to attach exercise: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Attached %s to routine %d\n", re.ExerciseName, re.WorkoutID)
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show routines whose name contains the given text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		rows, err := repo.ViewRoutine(name)
		if err != nil {
			return fmt.Errorf("failed to view routine: %w", err)
		}
		if len(rows) == 0 {
			color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "No routines found.")
			return nil
		}

		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{
				strconv.FormatInt(r.WorkoutID, 10),
				r.RoutineName,
				strconv.FormatInt(r.EntryID, 10),
				r.ExerciseName,
			})
		}
		return menu.RenderTable(cmd.OutOrStdout(), []string{"Workout ID", "Workout name", "Exercise number", "Exercise name"}, table)
	},
}

func init() {
	routineCmd.AddCommand(routineCreateCmd)
	routineCmd.AddCommand(routineAttachCmd)
	routineCmd.AddCommand(routineShowCmd)
	rootCmd.AddCommand(routineCmd)
}
