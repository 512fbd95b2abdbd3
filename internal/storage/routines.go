// ABOUTME: Routine operations: routine upsert, entry attachment, and the joined view.
// ABOUTME: Entries reference workout_routines through an enforced foreign key.
package storage

import (
	"fmt"
	"strconv"

	"github.com/harperreed/ftracker/internal/models"
)

// CreateRoutine inserts a routine or renames the routine with the same workout ID.
func (d *DB) CreateRoutine(r *models.Routine) error {
	query := `
		INSERT INTO workout_routines (workout_id, routine_name)
		VALUES (?, ?)
		ON CONFLICT (workout_id) DO UPDATE SET routine_name = excluded.routine_name
	`
	if _, err := d.exec(query, r.WorkoutID, r.Name); err != nil {
		return fmt.Errorf("create routine: %w", err)
	}

	d.record(models.NewHistoryEntry(models.ActionUpsert, models.EntityRoutine, strconv.FormatInt(r.WorkoutID, 10)).
		WithDetail(r.Name))
	return nil
}

// AttachExercise inserts a routine entry or replaces the entry with the same ID.
// Returns ErrReferential, and writes nothing, if the workout ID has no routine.
func (d *DB) AttachExercise(re *models.RoutineExercise) error {
	query := `
		INSERT INTO route_exercises (r_ex_id, routine_ex, routine_id)
		VALUES (?, ?, ?)
		ON CONFLICT (r_ex_id) DO UPDATE SET
			routine_ex = excluded.routine_ex,
			routine_id = excluded.routine_id
	`
	if _, err := d.exec(query, re.EntryID, re.ExerciseName, re.WorkoutID); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("attach exercise to workout %d: %w", re.WorkoutID, ErrReferential)
		}
		return fmt.Errorf("attach exercise: %w", err)
	}

	d.record(models.NewHistoryEntry(models.ActionUpsert, models.EntityRoutineExercise, strconv.FormatInt(re.EntryID, 10)).
		WithDetail(fmt.Sprintf("%s -> workout %d", re.ExerciseName, re.WorkoutID)))
	return nil
}

// ViewRoutine joins routines with their entries for routines whose name
// contains nameSubstr. Routines without entries do not appear.
func (d *DB) ViewRoutine(nameSubstr string) ([]*models.RoutineRow, error) {
	query := `
		SELECT r.workout_id, r.routine_name, e.r_ex_id, e.routine_ex
		FROM workout_routines r
		JOIN route_exercises e ON r.workout_id = e.routine_id
		WHERE ` + d.contains("r.routine_name") + `
		ORDER BY r.workout_id, e.r_ex_id
	`
	rows, err := d.query(query, nameSubstr)
	if err != nil {
		return nil, fmt.Errorf("view routine: %w", err)
	}
	defer rows.Close()

	var result []*models.RoutineRow
	for rows.Next() {
		var row models.RoutineRow
		if err := rows.Scan(&row.WorkoutID, &row.RoutineName, &row.EntryID, &row.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan routine row: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

// ListRoutines returns every routine ordered by workout ID.
func (d *DB) ListRoutines() ([]*models.Routine, error) {
	rows, err := d.query(`SELECT workout_id, routine_name FROM workout_routines ORDER BY workout_id`)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	var routines []*models.Routine
	for rows.Next() {
		var r models.Routine
		if err := rows.Scan(&r.WorkoutID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		routines = append(routines, &r)
	}
	return routines, rows.Err()
}

// listRoutineExercises returns every routine entry, including entries whose
// exercise no longer exists in the catalog.
func (d *DB) listRoutineExercises() ([]*models.RoutineExercise, error) {
	rows, err := d.query(`SELECT r_ex_id, routine_ex, routine_id FROM route_exercises ORDER BY r_ex_id`)
	if err != nil {
		return nil, fmt.Errorf("list routine exercises: %w", err)
	}
	defer rows.Close()

	var entries []*models.RoutineExercise
	for rows.Next() {
		var re models.RoutineExercise
		if err := rows.Scan(&re.EntryID, &re.ExerciseName, &re.WorkoutID); err != nil {
			return nil, fmt.Errorf("scan routine exercise: %w", err)
		}
		entries = append(entries, &re)
	}
	return entries, rows.Err()
}
