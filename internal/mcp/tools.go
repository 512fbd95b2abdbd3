// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Exposes catalog, routine, goal, progress, and history operations.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the catalog, replacing any exercise with the same ID",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally only those whose category contains a substring",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_category",
		Description: "Delete every exercise whose category matches exactly",
	}, s.handleDeleteCategory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_routine",
		Description: "Create or rename a workout routine",
	}, s.handleCreateRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "attach_exercise",
		Description: "Attach an exercise entry to an existing routine",
	}, s.handleAttachExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "view_routine",
		Description: "Show routines whose name contains a substring, with their exercises",
	}, s.handleViewRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goal",
		Description: "Set one of the three fixed fitness goals (1 lose weight, 2 run/row/cycle 25 km, 3 bench press 100kg)",
	}, s.handleSetGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List the stored fitness goals",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_progress",
		Description: "Record the latest value for an exercise (km for Run, Cycle, Row; kg otherwise)",
	}, s.handleRecordProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_progress",
		Description: "List the latest recorded value for each exercise",
	}, s.handleListProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "evaluate_goal",
		Description: "Check a measurement against a goal's fixed threshold",
	}, s.handleEvaluateGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List recent changes made to the tracker",
	}, s.handleListHistory)
}

// Tool input/output types

type addExerciseInput struct {
	ID       int64  `json:"id" jsonschema:"Exercise ID"`
	Name     string `json:"name" jsonschema:"Exercise name"`
	Category string `json:"category" jsonschema:"Exercise category, e.g. Upper"`
}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Case-sensitive category substring; empty lists everything"`
}

type exercisesOutput struct {
	Exercises []*models.Exercise `json:"exercises"`
	Count     int                `json:"count"`
}

type deleteCategoryInput struct {
	Category string `json:"category" jsonschema:"Exact category to delete"`
}

type deleteCategoryOutput struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

type createRoutineInput struct {
	WorkoutID int64  `json:"workout_id" jsonschema:"Workout ID"`
	Name      string `json:"name" jsonschema:"Routine name, e.g. Upper body 1"`
}

type attachExerciseInput struct {
	EntryID      int64  `json:"entry_id" jsonschema:"Routine entry ID"`
	ExerciseName string `json:"exercise_name" jsonschema:"Exercise name"`
	WorkoutID    int64  `json:"workout_id" jsonschema:"ID of an existing routine"`
}

type viewRoutineInput struct {
	Name string `json:"name,omitempty" jsonschema:"Case-sensitive routine name substring"`
}

type routineOutput struct {
	Rows []*models.RoutineRow `json:"rows"`
}

type setGoalInput struct {
	Kind   int    `json:"kind" jsonschema:"Goal kind: 1, 2 or 3"`
	Target string `json:"target" jsonschema:"Kilograms to lose (1), exercise name (2), or rep count (3)"`
}

type goalOutput struct {
	Kind   int    `json:"kind"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

type goalsOutput struct {
	Goals []goalOutput `json:"goals"`
}

type recordProgressInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
	Value    int64  `json:"value" jsonschema:"Kilometres for Run, Cycle and Row; kilograms otherwise"`
}

type progressOutput struct {
	Exercise string `json:"exercise"`
	Value    int64  `json:"value"`
	Unit     string `json:"unit"`
}

type progressListOutput struct {
	Entries []progressOutput `json:"entries"`
}

type evaluateGoalInput struct {
	Kind        int   `json:"kind" jsonschema:"Goal kind: 1, 2 or 3"`
	Measurement int64 `json:"measurement" jsonschema:"Kilograms lost (1), kilometres (2), or kilograms benched (3)"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type historyOutput struct {
	Entries []*models.HistoryEntry `json:"entries"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	e, err := models.NewExercise(input.ID, input.Name, input.Category)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.AddExercise(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added exercise %d: %s (%s)", e.ID, e.Name, e.Category),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exercisesOutput, error) {
	exercises, err := s.repo.ListExercisesByCategory(input.Category)
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	if exercises == nil {
		exercises = []*models.Exercise{}
	}
	return nil, exercisesOutput{Exercises: exercises, Count: len(exercises)}, nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, req *mcp.CallToolRequest, input deleteCategoryInput) (*mcp.CallToolResult, deleteCategoryOutput, error) {
	n, err := s.repo.DeleteCategory(input.Category)
	if err != nil {
		return nil, deleteCategoryOutput{}, fmt.Errorf("failed to delete category: %w", err)
	}
	return nil, deleteCategoryOutput{
		Deleted: n,
		Message: fmt.Sprintf("Deleted %d exercises in category %q", n, input.Category),
	}, nil
}

func (s *Server) handleCreateRoutine(ctx context.Context, req *mcp.CallToolRequest, input createRoutineInput) (*mcp.CallToolResult, simpleOutput, error) {
	r, err := models.NewRoutine(input.WorkoutID, input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.CreateRoutine(r); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create routine: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved routine %d: %s", r.WorkoutID, r.Name),
	}, nil
}

func (s *Server) handleAttachExercise(ctx context.Context, req *mcp.CallToolRequest, input attachExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	re, err := models.NewRoutineExercise(input.EntryID, input.ExerciseName, input.WorkoutID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.AttachExercise(re); err != nil {
		if errors.Is(err, storage.ErrReferential) {
			return nil, simpleOutput{}, fmt.Errorf("routine %d not found", input.WorkoutID)
		}
		return nil, simpleOutput{}, fmt.Errorf("failed to attach exercise: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Attached %s to routine %d as entry %d", re.ExerciseName, re.WorkoutID, re.EntryID),
	}, nil
}

func (s *Server) handleViewRoutine(ctx context.Context, req *mcp.CallToolRequest, input viewRoutineInput) (*mcp.CallToolResult, routineOutput, error) {
	rows, err := s.repo.ViewRoutine(input.Name)
	if err != nil {
		return nil, routineOutput{}, fmt.Errorf("failed to view routine: %w", err)
	}
	if rows == nil {
		rows = []*models.RoutineRow{}
	}
	return nil, routineOutput{Rows: rows}, nil
}

func (s *Server) handleSetGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	g, err := models.ParseGoal(models.GoalKind(input.Kind), input.Target)
	if err != nil {
		return nil, goalOutput{}, err
	}
	if err := s.repo.SetGoal(g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to set goal: %w", err)
	}
	return nil, toGoalOutput(g), nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, goalsOutput, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, goalsOutput{}, fmt.Errorf("failed to list goals: %w", err)
	}
	out := goalsOutput{Goals: make([]goalOutput, 0, len(goals))}
	for _, g := range goals {
		out.Goals = append(out.Goals, toGoalOutput(g))
	}
	return nil, out, nil
}

func (s *Server) handleRecordProgress(ctx context.Context, req *mcp.CallToolRequest, input recordProgressInput) (*mcp.CallToolResult, progressOutput, error) {
	p, err := models.NewProgressEntry(input.Exercise, input.Value)
	if err != nil {
		return nil, progressOutput{}, err
	}
	if err := s.repo.RecordProgress(p); err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to record progress: %w", err)
	}
	return nil, toProgressOutput(p), nil
}

func (s *Server) handleListProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, progressListOutput, error) {
	entries, err := s.repo.ListProgress()
	if err != nil {
		return nil, progressListOutput{}, fmt.Errorf("failed to list progress: %w", err)
	}
	out := progressListOutput{Entries: make([]progressOutput, 0, len(entries))}
	for _, p := range entries {
		out.Entries = append(out.Entries, toProgressOutput(p))
	}
	return nil, out, nil
}

func (s *Server) handleEvaluateGoal(ctx context.Context, req *mcp.CallToolRequest, input evaluateGoalInput) (*mcp.CallToolResult, models.Evaluation, error) {
	kind := models.GoalKind(input.Kind)
	if !kind.Valid() {
		return nil, models.Evaluation{}, fmt.Errorf("%w: goal kind must be 1, 2 or 3, got %d", models.ErrValidation, input.Kind)
	}
	return nil, models.Evaluate(kind, input.Measurement), nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, historyOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	entries, err := s.repo.ListHistory(input.Limit)
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to list history: %w", err)
	}
	if entries == nil {
		entries = []*models.HistoryEntry{}
	}
	return nil, historyOutput{Entries: entries}, nil
}

func toGoalOutput(g *models.Goal) goalOutput {
	return goalOutput{Kind: int(g.Kind), Label: g.Kind.String(), Target: g.Target.Value()}
}

func toProgressOutput(p *models.ProgressEntry) progressOutput {
	return progressOutput{Exercise: p.Exercise, Value: p.Value, Unit: p.Unit()}
}
