// ABOUTME: Export and import functionality for tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON import replays upserts.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/ftracker/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version          string                    `json:"version" yaml:"version"`
	ExportedAt       time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool             string                    `json:"tool" yaml:"tool"`
	Exercises        []*models.Exercise        `json:"exercises" yaml:"exercises"`
	Routines         []*models.Routine         `json:"routines" yaml:"routines"`
	RoutineExercises []*models.RoutineExercise `json:"routine_exercises" yaml:"routine_exercises"`
	Goals            []GoalRecord              `json:"goals" yaml:"goals"`
	Progress         []*models.ProgressEntry   `json:"progress" yaml:"progress"`
}

// GoalRecord is the flat, serializable form of a goal.
type GoalRecord struct {
	Kind  int    `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	exercises, err := d.ListExercises()
	if err != nil {
		return nil, err
	}
	routines, err := d.ListRoutines()
	if err != nil {
		return nil, err
	}
	entries, err := d.listRoutineExercises()
	if err != nil {
		return nil, err
	}
	goals, err := d.ListGoals()
	if err != nil {
		return nil, err
	}
	progress, err := d.ListProgress()
	if err != nil {
		return nil, err
	}

	records := make([]GoalRecord, 0, len(goals))
	for _, g := range goals {
		records = append(records, GoalRecord{Kind: int(g.Kind), Value: g.Target.Value()})
	}

	return &ExportData{
		Version:          "1.0",
		ExportedAt:       time.Now(),
		Tool:             "ftracker",
		Exercises:        exercises,
		Routines:         routines,
		RoutineExercises: entries,
		Goals:            records,
		Progress:         progress,
	}, nil
}

// ImportData replays an export through the regular upserts, so importing the
// same file twice leaves the store unchanged. Every row is rebuilt through its
// model constructor first; a file with any invalid row writes nothing.
func (d *DB) ImportData(data *ExportData) error {
	clean, err := normalizeImport(data)
	if err != nil {
		return err
	}

	for _, e := range clean.Exercises {
		if err := d.AddExercise(e); err != nil {
			return fmt.Errorf("import exercise %d: %w", e.ID, err)
		}
	}
	for _, r := range clean.Routines {
		if err := d.CreateRoutine(r); err != nil {
			return fmt.Errorf("import routine %d: %w", r.WorkoutID, err)
		}
	}
	for _, re := range clean.RoutineExercises {
		if err := d.AttachExercise(re); err != nil {
			return fmt.Errorf("import routine exercise %d: %w", re.EntryID, err)
		}
	}
	for _, g := range clean.goals {
		if err := d.SetGoal(g); err != nil {
			return fmt.Errorf("import goal %d: %w", g.Kind, err)
		}
	}
	for _, p := range clean.Progress {
		if err := d.RecordProgress(p); err != nil {
			return fmt.Errorf("import progress %s: %w", p.Exercise, err)
		}
	}
	return nil
}

// importSet is an export whose rows have all passed model validation.
type importSet struct {
	ExportData
	goals []*models.Goal
}

func normalizeImport(data *ExportData) (*importSet, error) {
	if data == nil {
		return nil, fmt.Errorf("import: no data: %w", models.ErrValidation)
	}
	out := &importSet{}
	for i, e := range data.Exercises {
		if e == nil {
			return nil, fmt.Errorf("import exercise #%d: empty entry: %w", i+1, models.ErrValidation)
		}
		ex, err := models.NewExercise(e.ID, e.Name, e.Category)
		if err != nil {
			return nil, fmt.Errorf("import exercise %d: %w", e.ID, err)
		}
		out.Exercises = append(out.Exercises, ex)
	}
	for i, r := range data.Routines {
		if r == nil {
			return nil, fmt.Errorf("import routine #%d: empty entry: %w", i+1, models.ErrValidation)
		}
		rt, err := models.NewRoutine(r.WorkoutID, r.Name)
		if err != nil {
			return nil, fmt.Errorf("import routine %d: %w", r.WorkoutID, err)
		}
		out.Routines = append(out.Routines, rt)
	}
	for i, re := range data.RoutineExercises {
		if re == nil {
			return nil, fmt.Errorf("import routine exercise #%d: empty entry: %w", i+1, models.ErrValidation)
		}
		entry, err := models.NewRoutineExercise(re.EntryID, re.ExerciseName, re.WorkoutID)
		if err != nil {
			return nil, fmt.Errorf("import routine exercise %d: %w", re.EntryID, err)
		}
		out.RoutineExercises = append(out.RoutineExercises, entry)
	}
	for _, gr := range data.Goals {
		g, err := models.ParseGoal(models.GoalKind(gr.Kind), gr.Value)
		if err != nil {
			return nil, fmt.Errorf("import goal %d: %w", gr.Kind, err)
		}
		out.goals = append(out.goals, g)
	}
	for i, p := range data.Progress {
		if p == nil {
			return nil, fmt.Errorf("import progress #%d: empty entry: %w", i+1, models.ErrValidation)
		}
		entry, err := models.NewProgressEntry(p.Exercise, p.Value)
		if err != nil {
			return nil, fmt.Errorf("import progress %q: %w", p.Exercise, err)
		}
		out.Progress = append(out.Progress, entry)
	}
	return out, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&data)
}

// ExportYAML exports all data as YAML with exercises grouped by category.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		Categories map[string][]yamlExercise `yaml:"categories"`
		Routines   []yamlRoutine             `yaml:"routines"`
		Goals      []yamlGoal                `yaml:"goals"`
		Progress   []yamlProgress            `yaml:"progress"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Categories: make(map[string][]yamlExercise),
	}

	for _, e := range data.Exercises {
		yamlData.Categories[e.Category] = append(yamlData.Categories[e.Category],
			yamlExercise{ID: e.ID, Name: e.Name})
	}

	byWorkout := make(map[int64][]yamlRoutineEntry)
	for _, re := range data.RoutineExercises {
		byWorkout[re.WorkoutID] = append(byWorkout[re.WorkoutID],
			yamlRoutineEntry{ID: re.EntryID, Exercise: re.ExerciseName})
	}
	for _, r := range data.Routines {
		yamlData.Routines = append(yamlData.Routines, yamlRoutine{
			WorkoutID: r.WorkoutID,
			Name:      r.Name,
			Exercises: byWorkout[r.WorkoutID],
		})
	}

	for _, g := range data.Goals {
		yamlData.Goals = append(yamlData.Goals, yamlGoal{
			Kind:  g.Kind,
			Label: models.GoalKind(g.Kind).String(),
			Value: g.Value,
		})
	}

	for _, p := range data.Progress {
		yamlData.Progress = append(yamlData.Progress, yamlProgress{
			Exercise: p.Exercise,
			Value:    p.Value,
			Unit:     p.Unit(),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlExercise struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlRoutine struct {
	WorkoutID int64              `yaml:"workout_id"`
	Name      string             `yaml:"name"`
	Exercises []yamlRoutineEntry `yaml:"exercises,omitempty"`
}

type yamlRoutineEntry struct {
	ID       int64  `yaml:"id"`
	Exercise string `yaml:"exercise"`
}

type yamlGoal struct {
	Kind  int    `yaml:"kind"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type yamlProgress struct {
	Exercise string `yaml:"exercise"`
	Value    int64  `yaml:"value"`
	Unit     string `yaml:"unit"`
}

// ExportMarkdown exports the catalog, routines, goals, and progress as Markdown tables.
func (d *DB) ExportMarkdown() (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Fitness Export - %s\n\n", data.ExportedAt.Format("2006-01-02"))

	grouped := make(map[string][]*models.Exercise)
	for _, e := range data.Exercises {
		grouped[e.Category] = append(grouped[e.Category], e)
	}
	categories := make([]string, 0, len(grouped))
	for c := range grouped {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		fmt.Fprintf(&sb, "## %s\n\n", c)
		sb.WriteString("| ID | Exercise |\n")
		sb.WriteString("|----|----------|\n")
		for _, e := range grouped[c] {
			fmt.Fprintf(&sb, "| %d | %s |\n", e.ID, e.Name)
		}
		sb.WriteString("\n")
	}

	if len(data.Routines) > 0 {
		names := make(map[int64]string, len(data.Routines))
		for _, r := range data.Routines {
			names[r.WorkoutID] = r.Name
		}
		sb.WriteString("## Routines\n\n")
		sb.WriteString("| Workout ID | Workout name | Exercise number | Exercise name |\n")
		sb.WriteString("|------------|--------------|-----------------|---------------|\n")
		for _, re := range data.RoutineExercises {
			fmt.Fprintf(&sb, "| %d | %s | %d | %s |\n", re.WorkoutID, names[re.WorkoutID], re.EntryID, re.ExerciseName)
		}
		sb.WriteString("\n")
	}

	if len(data.Goals) > 0 {
		sb.WriteString("## Goals\n\n")
		sb.WriteString("| Goal | Target |\n")
		sb.WriteString("|------|--------|\n")
		for _, g := range data.Goals {
			fmt.Fprintf(&sb, "| %s | %s |\n", models.GoalKind(g.Kind), g.Value)
		}
		sb.WriteString("\n")
	}

	if len(data.Progress) > 0 {
		sb.WriteString("## Progress\n\n")
		sb.WriteString("| Exercise | KG/Kilometres |\n")
		sb.WriteString("|----------|---------------|\n")
		for _, p := range data.Progress {
			fmt.Fprintf(&sb, "| %s | %d %s |\n", p.Exercise, p.Value, p.Unit())
		}
	}

	return sb.String(), nil
}
