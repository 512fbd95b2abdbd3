// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB for creating isolated in-memory store instances.
package storage

import (
	"strings"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
