// ABOUTME: Repository interface for tracker data storage.
// ABOUTME: Defines the contract for exercise, routine, goal, and progress operations.
package storage

import (
	"errors"
	"strings"

	"github.com/harperreed/ftracker/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrReferential is returned when a routine entry names a routine that does not exist.
var ErrReferential = errors.New("referenced routine does not exist")

// Repository defines the storage interface for tracker data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise catalog
	AddExercise(e *models.Exercise) error
	ListExercisesByCategory(substr string) ([]*models.Exercise, error)
	ListExercises() ([]*models.Exercise, error)
	DeleteCategory(category string) (int64, error)

	// Routines
	CreateRoutine(r *models.Routine) error
	AttachExercise(re *models.RoutineExercise) error
	ViewRoutine(nameSubstr string) ([]*models.RoutineRow, error)
	ListRoutines() ([]*models.Routine, error)

	// Goals
	SetGoal(g *models.Goal) error
	ListGoals() ([]*models.Goal, error)

	// Progress
	RecordProgress(p *models.ProgressEntry) error
	ListProgress() ([]*models.ProgressEntry, error)

	// History
	ListHistory(limit int) ([]*models.HistoryEntry, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ImportJSON(raw []byte) error
	ExportYAML() ([]byte, error)
	ExportMarkdown() (string, error)

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)

// isForeignKeyViolation recognizes FK failures from both backends.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
