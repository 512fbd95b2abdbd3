// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides the ftracker://summary dashboard resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/ftracker/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const summaryURI = "ftracker://summary"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Fitness Summary",
		Description: "Catalog by category, routines, goals with progress, and latest progress values",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

type summaryGoal struct {
	goalOutput
	Progress *progressOutput `json:"progress,omitempty"`
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.repo.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	categories := make(map[string]int)
	for _, e := range data.Exercises {
		categories[e.Category]++
	}

	progress := make(map[string]progressOutput, len(data.Progress))
	latest := make([]progressOutput, 0, len(data.Progress))
	for _, p := range data.Progress {
		out := toProgressOutput(p)
		progress[p.Exercise] = out
		latest = append(latest, out)
	}

	// Only the cardio goal names an exercise, so only it can be linked to progress.
	summaryGoals := make([]summaryGoal, 0, len(goals))
	for _, g := range goals {
		sg := summaryGoal{goalOutput: toGoalOutput(g)}
		if p, ok := progress[g.Target.Value()]; ok && g.Kind == models.GoalCardioDistance {
			sg.Progress = &p
		}
		summaryGoals = append(summaryGoals, sg)
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"categories":   categories,
		"routines":     data.Routines,
		"goals":        summaryGoals,
		"progress":     latest,
		"summary": map[string]int{
			"exercises":        len(data.Exercises),
			"routines":         len(data.Routines),
			"routine_entries":  len(data.RoutineExercises),
			"goals":            len(goals),
			"progress_entries": len(data.Progress),
		},
	}

	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      summaryURI,
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}
