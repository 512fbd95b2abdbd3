// ABOUTME: Menu handlers for the catalog, routine, goal, and progress options.
// ABOUTME: Each handler prompts for its input, performs one store operation, and prints the result.
package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/harperreed/ftracker/internal/models"
)

// goalMenuPrompt lists every goal template with the number that selects it.
func goalMenuPrompt() string {
	var sb strings.Builder
	sb.WriteString("Please select a fitness goal, press 1, 2 or 3:\n")
	for _, k := range models.AllGoalKinds {
		fmt.Fprintf(&sb, "%d)%s\n", int(k), k)
	}
	sb.WriteString(": ")
	return sb.String()
}

var goalTargetPrompts = map[models.GoalKind]string{
	models.GoalWeightLoss:     "How much weight do you want to lose?: ",
	models.GoalCardioDistance: "Which exercise do you want to set this goal for?: ",
	models.GoalBenchPress:     "How many reps do you want to do this weight for?: ",
}

func (m *Menu) addExercise() error {
	if err := m.showExercises(); err != nil {
		return err
	}
	id, err := m.promptInt("Please enter the exercise id: ", "exercise id")
	if err != nil {
		return err
	}
	name, err := m.prompt("Enter exercise name: ")
	if err != nil {
		return err
	}
	category, err := m.prompt("Please enter the exercise category: ")
	if err != nil {
		return err
	}

	e, err := models.NewExercise(id, name, category)
	if err != nil {
		return err
	}
	if err := m.repo.AddExercise(e); err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}
	m.success("Exercise added successfully!")
	return nil
}

func (m *Menu) viewCategory() error {
	substr, err := m.prompt("Please enter the category of exercise you wish to view: ")
	if err != nil {
		return err
	}
	exercises, err := m.repo.ListExercisesByCategory(substr)
	if err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	return RenderTable(m.out, []string{"ID", "Exercises"}, exerciseRows(exercises))
}

func (m *Menu) deleteCategory() error {
	if err := m.showExercises(); err != nil {
		return err
	}
	category, err := m.prompt("Please select the category you wish to delete: ")
	if err != nil {
		return err
	}
	n, err := m.repo.DeleteCategory(category)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	log.Debug("category deleted", "category", category, "rows", n)
	m.success("Category successfully deleted!")
	fmt.Fprintf(m.out, "%d exercises removed\n", n)
	return nil
}

// createRoutine saves the routine before asking for its first exercise, so a
// bad entry ID still leaves the routine in place.
func (m *Menu) createRoutine() error {
	if err := m.showExercises(); err != nil {
		return err
	}
	workoutID, err := m.promptInt("Please create/enter the workout ID: ", "workout id")
	if err != nil {
		return err
	}
	name, err := m.prompt("Please enter the name of the routine: ")
	if err != nil {
		return err
	}
	r, err := models.NewRoutine(workoutID, name)
	if err != nil {
		return err
	}
	if err := m.repo.CreateRoutine(r); err != nil {
		return fmt.Errorf("create routine: %w", err)
	}

	entryID, err := m.promptInt("Please create the exercise ID: ", "exercise id")
	if err != nil {
		return err
	}
	exercise, err := m.prompt("Please enter the name of the exercise you want to add: ")
	if err != nil {
		return err
	}
	re, err := models.NewRoutineExercise(entryID, exercise, workoutID)
	if err != nil {
		return err
	}
	if err := m.repo.AttachExercise(re); err != nil {
		return fmt.Errorf("attach exercise: %w", err)
	}
	return nil
}

func (m *Menu) viewRoutine() error {
	substr, err := m.prompt("Please enter the routine you want to view: ")
	if err != nil {
		return err
	}
	rows, err := m.repo.ViewRoutine(substr)
	if err != nil {
		return fmt.Errorf("view routine: %w", err)
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
	return RenderTable(m.out, []string{"Workout ID", "Workout name", "Exercise number", "Exercise name"}, table)
}

func (m *Menu) setGoal() error {
	raw, err := m.prompt(goalMenuPrompt())
	if err != nil {
		return err
	}
	kind, err := models.ParseGoalKind(raw)
	if err != nil {
		return err
	}
	target, err := m.prompt(goalTargetPrompts[kind])
	if err != nil {
		return err
	}
	g, err := models.ParseGoal(kind, target)
	if err != nil {
		return err
	}
	if err := m.repo.SetGoal(g); err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	return nil
}

func (m *Menu) viewGoals() error {
	goals, err := m.repo.ListGoals()
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}
	table := make([][]string, 0, len(goals))
	for _, g := range goals {
		table = append(table, []string{strconv.Itoa(int(g.Kind)), g.Target.Value()})
	}
	return RenderTable(m.out, []string{"Goal", "Exercise"}, table)
}

func (m *Menu) setProgress() error {
	if err := m.showExercises(); err != nil {
		return err
	}
	exercise, err := m.prompt("Please enter the exercise: ")
	if err != nil {
		return err
	}

	label := "Please enter how much weight you can use: "
	if models.IsDistanceExercise(exercise) {
		label = "Please enter how many kilometres you can do: "
	}
	value, err := m.promptInt(label, "progress value")
	if err != nil {
		return err
	}

	p, err := models.NewProgressEntry(exercise, value)
	if err != nil {
		return err
	}
	if err := m.repo.RecordProgress(p); err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	return nil
}

func (m *Menu) viewProgress() error {
	entries, err := m.repo.ListProgress()
	if err != nil {
		return fmt.Errorf("list progress: %w", err)
	}
	table := make([][]string, 0, len(entries))
	for _, p := range entries {
		table = append(table, []string{p.Exercise, strconv.FormatInt(p.Value, 10)})
	}
	return RenderTable(m.out, []string{"Exercise", "KG/Kilometres"}, table)
}

func (m *Menu) evaluateGoal() error {
	raw, err := m.prompt("Please select the goal id to track progress: ")
	if err != nil {
		return err
	}
	kind, err := models.ParseGoalKind(raw)
	if err != nil {
		return err
	}
	measurement, err := m.promptInt(models.MeasurementPrompt(kind), "measurement")
	if err != nil {
		return err
	}

	e := models.Evaluate(kind, measurement)
	if e.Met {
		m.success(e.Message)
	} else {
		fmt.Fprintln(m.out, e.Message)
	}
	return nil
}

// showExercises prints the whole catalog so the user can pick identifiers.
func (m *Menu) showExercises() error {
	exercises, err := m.repo.ListExercises()
	if err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name, e.Category})
	}
	return RenderTable(m.out, []string{"ID", "Exercises", "Category"}, rows)
}

// exerciseRows is the (id, name) view used by the category search.
func exerciseRows(exercises []*models.Exercise) [][]string {
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name})
	}
	return rows
}

// RenderTable writes headers, a dashed rule, and rows as aligned columns.
func RenderTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
