// ABOUTME: Progress operations: latest measurement per exercise name.
// ABOUTME: A new value for an exercise overwrites the previous one.
package storage

import (
	"fmt"
	"strconv"

	"github.com/harperreed/ftracker/internal/models"
)

// RecordProgress stores p as the current value for its exercise.
func (d *DB) RecordProgress(p *models.ProgressEntry) error {
	query := `
		INSERT INTO progression (exercise, weight_distance)
		VALUES (?, ?)
		ON CONFLICT (exercise) DO UPDATE SET weight_distance = excluded.weight_distance
	`
	if _, err := d.exec(query, p.Exercise, p.Value); err != nil {
		return fmt.Errorf("record progress: %w", err)
	}

	d.record(models.NewHistoryEntry(models.ActionUpsert, models.EntityProgress, p.Exercise).
		WithDetail(strconv.FormatInt(p.Value, 10) + " " + p.Unit()))
	return nil
}

// ListProgress returns every progress entry ordered by exercise name.
func (d *DB) ListProgress() ([]*models.ProgressEntry, error) {
	rows, err := d.query(`SELECT exercise, weight_distance FROM progression ORDER BY exercise`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var entries []*models.ProgressEntry
	for rows.Next() {
		var p models.ProgressEntry
		if err := rows.Scan(&p.Exercise, &p.Value); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		entries = append(entries, &p)
	}
	return entries, rows.Err()
}
