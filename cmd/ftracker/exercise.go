// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Supports add, list with category filter, and delete by category.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/spf13/cobra"
)

var exerciseCategory string

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage the exercise catalog",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <id> <name> <category>",
	Short: "Add an exercise",
	Long: `Add an exercise to the catalog. An existing exercise with the same ID is replaced.

Examples:
  ftracker exercise add 1 "Bench Press" Upper
  ftracker exercise add 2 Squat Lower`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := models.ParseInt("exercise id", args[0])
		if err != nil {
			return err
		}
		e, err := models.NewExercise(id, args[1], args[2])
		if err != nil {
			return err
		}
		if err := repo.AddExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Exercise added successfully!")
		fmt.Fprintf(cmd.OutOrStdout(), "  %d %s (%s)\n", e.ID, e.Name, e.Category)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	Long: `List exercises ordered by ID.

FILTERING:

  Use --category to show only exercises whose category contains the given
  text. Matching is case-sensitive.

EXAMPLES:

  ftracker exercise list
  ftracker exercise list --category Up`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.ListExercisesByCategory(exerciseCategory)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "No exercises found.")
			return nil
		}

		rows := make([][]string, 0, len(exercises))
		for _, e := range exercises {
			rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name, e.Category})
		}
		return menu.RenderTable(cmd.OutOrStdout(), []string{"ID", "Exercises", "Category"}, rows)
	},
}

var exerciseDeleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <category>",
	Short: "Delete every exercise in a category",
	Long: `Delete every exercise whose category matches exactly.
Routine entries are left untouched. Deleting an empty category is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := repo.DeleteCategory(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Category successfully deleted!")
		fmt.Fprintf(cmd.OutOrStdout(), "  %d exercises removed\n", n)
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "only exercises whose category contains this text")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCategoryCmd)
	rootCmd.AddCommand(exerciseCmd)
}
