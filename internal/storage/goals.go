// ABOUTME: Goal operations: upsert keyed by goal kind and listing.
// ABOUTME: Payloads are stored as text and re-parsed into typed targets on read.
package storage

import (
	"fmt"
	"strconv"

	"github.com/harperreed/ftracker/internal/models"
)

// SetGoal stores g, replacing any goal of the same kind.
func (d *DB) SetGoal(g *models.Goal) error {
	if !g.Kind.Valid() || g.Target == nil || g.Target.Kind() != g.Kind {
		return fmt.Errorf("set goal: %w: goal kind %d", models.ErrValidation, int(g.Kind))
	}

	query := `
		INSERT INTO goal (g_id, g_achieve)
		VALUES (?, ?)
		ON CONFLICT (g_id) DO UPDATE SET g_achieve = excluded.g_achieve
	`
	if _, err := d.exec(query, int64(g.Kind), g.Target.Value()); err != nil {
		return fmt.Errorf("set goal: %w", err)
	}

	d.record(models.NewHistoryEntry(models.ActionUpsert, models.EntityGoal, strconv.Itoa(int(g.Kind))).
		WithDetail(g.Target.Value()))
	return nil
}

// ListGoals returns stored goals ordered by kind. At most three exist.
func (d *DB) ListGoals() ([]*models.Goal, error) {
	rows, err := d.query(`SELECT g_id, g_achieve FROM goal ORDER BY g_id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var (
			kind  int64
			value string
		)
		if err := rows.Scan(&kind, &value); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g, err := models.ParseGoal(models.GoalKind(kind), value)
		if err != nil {
			return nil, fmt.Errorf("invalid goal %d in database: %w", kind, err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
