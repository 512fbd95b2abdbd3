// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Calls tool and resource handlers directly against an in-memory store.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(setupTestDB(t))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleAddExercise(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   addExerciseInput
		wantErr bool
	}{
		{"valid", addExerciseInput{ID: 1, Name: "Bench Press", Category: "Upper"}, false},
		{"overwrite same id", addExerciseInput{ID: 1, Name: "Incline Press", Category: "Upper"}, false},
		{"missing name", addExerciseInput{ID: 2, Category: "Upper"}, true},
		{"missing category", addExerciseInput{ID: 3, Name: "Squat"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleAddExercise(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out.Message, tt.input.Name) {
				t.Errorf("message %q missing exercise name", out.Message)
			}
		})
	}

	exercises, _ := server.repo.ListExercises()
	if len(exercises) != 1 || exercises[0].Name != "Incline Press" {
		t.Errorf("expected one overwritten exercise, got %+v", exercises)
	}
}

func TestHandleListExercisesAndDeleteCategory(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	for _, in := range []addExerciseInput{
		{ID: 1, Name: "Bench Press", Category: "Upper"},
		{ID: 2, Name: "Squat", Category: "Lower"},
	} {
		if _, _, err := server.handleAddExercise(ctx, &mcp.CallToolRequest{}, in); err != nil {
			t.Fatalf("add exercise: %v", err)
		}
	}

	_, all, err := server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Count != 2 {
		t.Errorf("expected 2 exercises, got %d", all.Count)
	}

	_, up, _ := server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{Category: "Up"})
	if up.Count != 1 || up.Exercises[0].Name != "Bench Press" {
		t.Errorf("expected only Bench Press, got %+v", up.Exercises)
	}

	_, del, err := server.handleDeleteCategory(ctx, &mcp.CallToolRequest{}, deleteCategoryInput{Category: "Upper"})
	if err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if del.Deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", del.Deleted)
	}

	_, up, _ = server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{Category: "Up"})
	if up.Count != 0 || up.Exercises == nil {
		t.Errorf("expected empty non-nil list, got %+v", up)
	}
}

func TestHandleRoutineTools(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleAttachExercise(ctx, &mcp.CallToolRequest{}, attachExerciseInput{EntryID: 1, ExerciseName: "Bench Press", WorkoutID: 7})
	if err == nil || !strings.Contains(err.Error(), "routine 7 not found") {
		t.Errorf("expected routine not found error, got %v", err)
	}

	if _, _, err := server.handleCreateRoutine(ctx, &mcp.CallToolRequest{}, createRoutineInput{WorkoutID: 7, Name: "Upper body 1"}); err != nil {
		t.Fatalf("create routine: %v", err)
	}
	if _, _, err := server.handleAttachExercise(ctx, &mcp.CallToolRequest{}, attachExerciseInput{EntryID: 1, ExerciseName: "Bench Press", WorkoutID: 7}); err != nil {
		t.Fatalf("attach exercise: %v", err)
	}

	_, out, err := server.handleViewRoutine(ctx, &mcp.CallToolRequest{}, viewRoutineInput{Name: "body"})
	if err != nil {
		t.Fatalf("view routine: %v", err)
	}
	if len(out.Rows) != 1 || out.Rows[0].RoutineName != "Upper body 1" {
		t.Errorf("unexpected rows %+v", out.Rows)
	}

	_, none, _ := server.handleViewRoutine(ctx, &mcp.CallToolRequest{}, viewRoutineInput{Name: "Legs"})
	if none.Rows == nil || len(none.Rows) != 0 {
		t.Errorf("expected empty rows, got %+v", none.Rows)
	}
}

func TestHandleGoalTools(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, g, err := server.handleSetGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{Kind: 2, Target: "Row"})
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if g.Label != "Run/Row/Cycle for 25 km" || g.Target != "Row" {
		t.Errorf("unexpected goal output %+v", g)
	}

	for _, in := range []setGoalInput{{Kind: 4, Target: "1"}, {Kind: 1, Target: "ten"}} {
		if _, _, err := server.handleSetGoal(ctx, &mcp.CallToolRequest{}, in); !errors.Is(err, models.ErrValidation) {
			t.Errorf("set goal %+v: expected validation error, got %v", in, err)
		}
	}

	_, list, err := server.handleListGoals(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(list.Goals) != 1 || list.Goals[0].Kind != 2 {
		t.Errorf("unexpected goals %+v", list.Goals)
	}
}

func TestHandleEvaluateGoal(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		input   evaluateGoalInput
		wantMet bool
	}{
		{evaluateGoalInput{Kind: 1, Measurement: 10}, true},
		{evaluateGoalInput{Kind: 1, Measurement: 9}, false},
		{evaluateGoalInput{Kind: 2, Measurement: 25}, true},
		{evaluateGoalInput{Kind: 3, Measurement: 100}, true},
		{evaluateGoalInput{Kind: 3, Measurement: 60}, false},
	}
	for _, tt := range tests {
		_, out, err := server.handleEvaluateGoal(ctx, &mcp.CallToolRequest{}, tt.input)
		if err != nil {
			t.Fatalf("evaluate %+v: %v", tt.input, err)
		}
		if out.Met != tt.wantMet || out.Message == "" {
			t.Errorf("evaluate %+v = %+v, want met=%v", tt.input, out, tt.wantMet)
		}
	}

	if _, _, err := server.handleEvaluateGoal(ctx, &mcp.CallToolRequest{}, evaluateGoalInput{Kind: 0}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected validation error for kind 0, got %v", err)
	}
}

func TestHandleProgressTools(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	for _, v := range []int64{5, 8} {
		_, out, err := server.handleRecordProgress(ctx, &mcp.CallToolRequest{}, recordProgressInput{Exercise: "Run", Value: v})
		if err != nil {
			t.Fatalf("record progress: %v", err)
		}
		if out.Unit != models.UnitKilometres {
			t.Errorf("Run unit = %s, want km", out.Unit)
		}
	}
	if _, _, err := server.handleRecordProgress(ctx, &mcp.CallToolRequest{}, recordProgressInput{Exercise: "", Value: 1}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	_, list, err := server.handleListProgress(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(list.Entries) != 1 || list.Entries[0].Value != 8 {
		t.Errorf("expected single Run entry of 8, got %+v", list.Entries)
	}
}

func TestHandleListHistory(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, empty, err := server.handleListHistory(ctx, &mcp.CallToolRequest{}, listHistoryInput{})
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if empty.Entries == nil || len(empty.Entries) != 0 {
		t.Errorf("expected empty history, got %+v", empty.Entries)
	}

	_, _, _ = server.handleAddExercise(ctx, &mcp.CallToolRequest{}, addExerciseInput{ID: 1, Name: "Squat", Category: "Lower"})
	_, _, _ = server.handleRecordProgress(ctx, &mcp.CallToolRequest{}, recordProgressInput{Exercise: "Squat", Value: 100})

	_, out, _ := server.handleListHistory(ctx, &mcp.CallToolRequest{}, listHistoryInput{Limit: 1})
	if len(out.Entries) != 1 || out.Entries[0].Entity != models.EntityProgress {
		t.Errorf("expected latest progress entry, got %+v", out.Entries)
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddExercise(ctx, &mcp.CallToolRequest{}, addExerciseInput{ID: 1, Name: "Row", Category: "Cardio"})
	_, _, _ = server.handleSetGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{Kind: 2, Target: "Row"})
	_, _, _ = server.handleRecordProgress(ctx, &mcp.CallToolRequest{}, recordProgressInput{Exercise: "Row", Value: 12})

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("summary resource: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].URI != summaryURI {
		t.Fatalf("unexpected contents %+v", result.Contents)
	}

	var parsed struct {
		Categories map[string]int `json:"categories"`
		Goals      []struct {
			Kind     int             `json:"kind"`
			Progress *progressOutput `json:"progress"`
		} `json:"goals"`
		Summary map[string]int `json:"summary"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &parsed); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if parsed.Categories["Cardio"] != 1 {
		t.Errorf("expected Cardio count 1, got %v", parsed.Categories)
	}
	if len(parsed.Goals) != 1 || parsed.Goals[0].Progress == nil || parsed.Goals[0].Progress.Value != 12 {
		t.Errorf("expected cardio goal linked to Row progress, got %+v", parsed.Goals)
	}
	if parsed.Summary["progress_entries"] != 1 {
		t.Errorf("unexpected summary counts %v", parsed.Summary)
	}
}

func TestHandleSummaryResourceEmpty(t *testing.T) {
	server := setupTestServer(t)

	result, err := server.handleSummaryResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("summary resource: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, `"exercises": 0`) {
		t.Errorf("expected zero counts, got %s", result.Contents[0].Text)
	}
}
