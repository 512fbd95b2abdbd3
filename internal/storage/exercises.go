// ABOUTME: Exercise catalog operations: upsert, category filter, list, bulk delete.
// ABOUTME: Implements Repository interface methods for the exercises table.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/harperreed/ftracker/internal/models"
)

// AddExercise inserts an exercise or replaces the row with the same ID.
func (d *DB) AddExercise(e *models.Exercise) error {
	query := `
		INSERT INTO exercises (id, exercises, category)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			exercises = excluded.exercises,
			category = excluded.category
	`
	if _, err := d.exec(query, e.ID, e.Name, e.Category); err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}

	d.record(models.NewHistoryEntry(models.ActionUpsert, models.EntityExercise, strconv.FormatInt(e.ID, 10)).
		WithDetail(e.Name + " (" + e.Category + ")"))
	return nil
}

// ListExercisesByCategory returns exercises whose category contains substr.
// Matching is case-sensitive; an empty substr matches every exercise.
func (d *DB) ListExercisesByCategory(substr string) ([]*models.Exercise, error) {
	query := `
		SELECT id, exercises, category
		FROM exercises
		WHERE ` + d.contains("category") + `
		ORDER BY id
	`
	rows, err := d.query(query, substr)
	if err != nil {
		return nil, fmt.Errorf("list exercises by category: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ListExercises returns the whole catalog ordered by ID.
func (d *DB) ListExercises() ([]*models.Exercise, error) {
	rows, err := d.query(`SELECT id, exercises, category FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// DeleteCategory removes every exercise whose category equals category exactly.
// Routine entries are not touched. Returns the number of rows removed.
func (d *DB) DeleteCategory(category string) (int64, error) {
	result, err := d.exec("DELETE FROM exercises WHERE category = ?", category)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}

	if affected > 0 {
		d.record(models.NewHistoryEntry(models.ActionDelete, models.EntityCategory, category).
			WithDetail(strconv.FormatInt(affected, 10) + " exercises"))
	}
	return affected, nil
}

func scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}
