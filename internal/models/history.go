// ABOUTME: HistoryEntry model for the audit trail of tracker writes.
// ABOUTME: Each upsert or delete records the action, entity, and key it touched.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryAction is the kind of write recorded in the audit trail.
type HistoryAction string

const (
	ActionUpsert HistoryAction = "upsert"
	ActionDelete HistoryAction = "delete"
)

// Entity names used in the audit trail.
const (
	EntityExercise        = "exercise"
	EntityRoutine         = "routine"
	EntityRoutineExercise = "routine_exercise"
	EntityGoal            = "goal"
	EntityProgress        = "progress"
	EntityCategory        = "category"
)

// HistoryEntry records a single write against the store.
type HistoryEntry struct {
	ID        uuid.UUID     `json:"id" yaml:"id"`
	Action    HistoryAction `json:"action" yaml:"action"`
	Entity    string        `json:"entity" yaml:"entity"`
	Key       string        `json:"key" yaml:"key"`
	Detail    *string       `json:"detail,omitempty" yaml:"detail,omitempty"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// NewHistoryEntry creates a HistoryEntry with a generated UUID and current timestamp.
func NewHistoryEntry(action HistoryAction, entity, key string) *HistoryEntry {
	return &HistoryEntry{
		ID:        uuid.New(),
		Action:    action,
		Entity:    entity,
		Key:       key,
		CreatedAt: time.Now(),
	}
}

// WithDetail attaches a short description of the written value.
func (h *HistoryEntry) WithDetail(detail string) *HistoryEntry {
	h.Detail = &detail
	return h
}
