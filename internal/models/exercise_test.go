// ABOUTME: Tests for exercise, routine, and progress model constructors.
// ABOUTME: Validates required-field checks and unit selection.
package models

import (
	"errors"
	"testing"
)

func TestNewExercise(t *testing.T) {
	e, err := NewExercise(1, "Bench Press", "Upper")
	if err != nil {
		t.Fatalf("NewExercise failed: %v", err)
	}
	if e.ID != 1 || e.Name != "Bench Press" || e.Category != "Upper" {
		t.Errorf("got %+v", e)
	}

	if _, err := NewExercise(2, "", "Upper"); !errors.Is(err, ErrValidation) {
		t.Errorf("missing name: err = %v, want ErrValidation", err)
	}
	if _, err := NewExercise(2, "Squat", " "); !errors.Is(err, ErrValidation) {
		t.Errorf("missing category: err = %v, want ErrValidation", err)
	}
}

func TestNewRoutineAndEntry(t *testing.T) {
	if _, err := NewRoutine(1, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	re, err := NewRoutineExercise(3, "Squat", 1)
	if err != nil {
		t.Fatalf("NewRoutineExercise failed: %v", err)
	}
	if re.WorkoutID != 1 || re.EntryID != 3 {
		t.Errorf("got %+v", re)
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("id", " 42 ")
	if err != nil || v != 42 {
		t.Errorf("ParseInt = %d, %v; want 42, nil", v, err)
	}
	for _, raw := range []string{"", "abc", "4.2", "1e3"} {
		if _, err := ParseInt("id", raw); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseInt(%q) err = %v, want ErrValidation", raw, err)
		}
	}
}

func TestUnitFor(t *testing.T) {
	tests := map[string]string{
		"Run":         UnitKilometres,
		"Cycle":       UnitKilometres,
		"Row":         UnitKilometres,
		"run":         UnitKilograms,
		"Bench Press": UnitKilograms,
	}
	for exercise, want := range tests {
		if got := UnitFor(exercise); got != want {
			t.Errorf("UnitFor(%q) = %s, want %s", exercise, got, want)
		}
	}

	p, err := NewProgressEntry("Run", 5)
	if err != nil {
		t.Fatalf("NewProgressEntry failed: %v", err)
	}
	if p.Unit() != UnitKilometres {
		t.Errorf("Unit() = %s, want km", p.Unit())
	}
	if _, err := NewProgressEntry("", 5); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestNewHistoryEntry(t *testing.T) {
	h := NewHistoryEntry(ActionUpsert, EntityExercise, "1").WithDetail("Squat")
	if h.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if h.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if h.Detail == nil || *h.Detail != "Squat" {
		t.Error("expected Detail to be Squat")
	}
}
