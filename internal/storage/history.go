// ABOUTME: Audit trail of writes made against the store.
// ABOUTME: Entries are appended after each successful upsert or delete.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/ftracker/internal/models"
)

// historyTimeFormat is fixed-width so created_at sorts lexically.
const historyTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// record appends h to the history table. A failure here never undoes the
// write it describes, so it is logged rather than returned.
func (d *DB) record(h *models.HistoryEntry) {
	if err := d.addHistory(h); err != nil {
		log.Warn("history not recorded", "entity", h.Entity, "key", h.Key, "err", err)
	}
}

func (d *DB) addHistory(h *models.HistoryEntry) error {
	query := `
		INSERT INTO history (id, action, entity, entity_key, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.exec(query,
		h.ID.String(),
		string(h.Action),
		h.Entity,
		h.Key,
		h.Detail,
		h.CreatedAt.UTC().Format(historyTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("add history: %w", err)
	}
	return nil
}

// ListHistory returns the most recent history entries first.
// A limit of zero or less returns everything.
func (d *DB) ListHistory(limit int) ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, action, entity, entity_key, detail, created_at
		FROM history
		ORDER BY created_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []*models.HistoryEntry
	for rows.Next() {
		var (
			h         models.HistoryEntry
			idStr     string
			action    string
			detail    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&idStr, &action, &h.Entity, &h.Key, &detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		h.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid history ID in database: %w", err)
		}
		h.CreatedAt, err = time.Parse(historyTimeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
		}
		h.Action = models.HistoryAction(action)
		if detail.Valid {
			h.Detail = &detail.String
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}
