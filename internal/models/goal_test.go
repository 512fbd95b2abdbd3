// ABOUTME: Tests for goal kinds, goal payload parsing, and evaluation.
// ABOUTME: Covers thresholds, the unmet bench press case, and invalid kinds.
package models

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		kind        GoalKind
		measurement int64
		wantMet     bool
		wantMessage string
	}{
		{"weight loss met", GoalWeightLoss, 10, true, weightLossMetMessage},
		{"weight loss unmet", GoalWeightLoss, 9, false, InProgressMessage},
		{"cardio met", GoalCardioDistance, 25, true, cardioMetMessage},
		{"cardio exceeded", GoalCardioDistance, 42, true, cardioMetMessage},
		{"cardio unmet", GoalCardioDistance, 24, false, InProgressMessage},
		{"bench met", GoalBenchPress, 100, true, benchPressMetMessage},
		{"bench unmet", GoalBenchPress, 99, false, InProgressMessage},
		{"unknown kind", GoalKind(7), 1000, false, InProgressMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.kind, tt.measurement)
			if got.Met != tt.wantMet {
				t.Errorf("Met = %v, want %v", got.Met, tt.wantMet)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.Measurement != tt.measurement {
				t.Errorf("Measurement = %d, want %d", got.Measurement, tt.measurement)
			}
		})
	}
}

func TestParseGoalKind(t *testing.T) {
	for _, raw := range []string{"1", "2", " 3 "} {
		if _, err := ParseGoalKind(raw); err != nil {
			t.Errorf("ParseGoalKind(%q) failed: %v", raw, err)
		}
	}
	for _, raw := range []string{"0", "4", "-1", "two", ""} {
		_, err := ParseGoalKind(raw)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ParseGoalKind(%q) err = %v, want ErrValidation", raw, err)
		}
	}
}

func TestParseGoal(t *testing.T) {
	g, err := ParseGoal(GoalWeightLoss, "12")
	if err != nil {
		t.Fatalf("ParseGoal failed: %v", err)
	}
	if target, ok := g.Target.(WeightLossTarget); !ok || target.Kg != 12 {
		t.Errorf("Target = %#v, want WeightLossTarget{12}", g.Target)
	}

	g, err = ParseGoal(GoalCardioDistance, "Row")
	if err != nil {
		t.Fatalf("ParseGoal failed: %v", err)
	}
	if g.Target.Value() != "Row" || g.Target.Kind() != GoalCardioDistance {
		t.Errorf("Target = %#v, want CardioTarget{Row}", g.Target)
	}

	g, err = ParseGoal(GoalBenchPress, "5")
	if err != nil {
		t.Fatalf("ParseGoal failed: %v", err)
	}
	if target, ok := g.Target.(BenchPressTarget); !ok || target.Reps != 5 {
		t.Errorf("Target = %#v, want BenchPressTarget{5}", g.Target)
	}
}

func TestParseGoalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		kind GoalKind
		raw  string
	}{
		{"non-integer weight", GoalWeightLoss, "ten"},
		{"non-integer reps", GoalBenchPress, "5.5"},
		{"empty cardio exercise", GoalCardioDistance, "  "},
		{"kind out of range", GoalKind(4), "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGoal(tt.kind, tt.raw); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGoalKindString(t *testing.T) {
	if GoalBenchPress.String() != "Bench press 100kg" {
		t.Errorf("String() = %q", GoalBenchPress.String())
	}
	if GoalKind(9).Valid() {
		t.Error("expected kind 9 to be invalid")
	}
}
