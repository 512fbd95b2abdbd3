// ABOUTME: Schema definition and initialization for the tracker store.
// ABOUTME: Defines exercises, routines, routine entries, goals, progression, and history.
package storage

import (
	"fmt"
	"strings"
)

// schemaStatements is the authoritative schema. {{INT}} expands to the
// dialect's 64-bit integer type.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id {{INT}} PRIMARY KEY,
		exercises TEXT NOT NULL,
		category TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workout_routines (
		workout_id {{INT}} PRIMARY KEY,
		routine_name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS route_exercises (
		r_ex_id {{INT}} PRIMARY KEY,
		routine_ex TEXT NOT NULL,
		routine_id {{INT}} NOT NULL,
		FOREIGN KEY (routine_id) REFERENCES workout_routines(workout_id)
	)`,

	`CREATE TABLE IF NOT EXISTS goal (
		g_id {{INT}} PRIMARY KEY CHECK (g_id IN (1, 2, 3)),
		g_achieve TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS progression (
		exercise TEXT PRIMARY KEY,
		weight_distance {{INT}} NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		entity TEXT NOT NULL,
		entity_key TEXT NOT NULL,
		detail TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category)`,
	`CREATE INDEX IF NOT EXISTS idx_route_exercises_routine ON route_exercises(routine_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at)`,
}

// schemaTables lists the tables initSchema guarantees exist.
var schemaTables = []string{"exercises", "workout_routines", "route_exercises", "goal", "progression", "history"}

// SchemaSQL returns the schema for the given backend name ("sqlite" or "postgres").
func SchemaSQL(backend string) string {
	d := dialectSQLite
	if backend == "postgres" {
		d = dialectPostgres
	}
	return strings.Join(expandSchema(d), ";\n") + ";\n"
}

func expandSchema(d dialect) []string {
	intType := "INTEGER"
	if d == dialectPostgres {
		intType = "BIGINT"
	}
	out := make([]string, len(schemaStatements))
	for i, stmt := range schemaStatements {
		out[i] = strings.ReplaceAll(stmt, "{{INT}}", intType)
	}
	return out
}

// initSchema creates any missing tables. Statements run one at a time so a
// failure names the table that could not be created.
func (d *DB) initSchema() error {
	for _, stmt := range expandSchema(d.dialect) {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("execute %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
