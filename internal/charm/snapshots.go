// ABOUTME: Snapshot push and pull of the full tracker export through Charm KV.
// ABOUTME: Each push writes a timestamped key and refreshes the latest pointer.
package charm

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/ftracker/internal/storage"
)

const (
	SnapshotPrefix = "snapshot:"
	LatestKey      = SnapshotPrefix + "latest"

	snapshotTimeFormat = "20060102T150405.000Z"
)

// SnapshotKey is the key a snapshot taken at t is stored under.
func SnapshotKey(t time.Time) string {
	return SnapshotPrefix + t.UTC().Format(snapshotTimeFormat)
}

// Push exports repo as JSON and stores it under a new snapshot key and LatestKey.
func (c *Client) Push(repo storage.Repository) (string, error) {
	raw, err := repo.ExportJSON()
	if err != nil {
		return "", fmt.Errorf("export snapshot: %w", err)
	}

	key := SnapshotKey(time.Now())
	if err := c.setAll(map[string][]byte{key: raw, LatestKey: raw}); err != nil {
		return "", fmt.Errorf("push snapshot: %w", err)
	}
	log.Info("snapshot pushed", "key", key, "bytes", len(raw))
	return key, nil
}

// Pull imports the snapshot stored under key into repo. An empty key means
// the latest snapshot. Import replays upserts, so local rows not in the
// snapshot are kept.
func (c *Client) Pull(repo storage.Repository, key string) error {
	if key == "" {
		key = LatestKey
	}
	if !strings.HasPrefix(key, SnapshotPrefix) {
		key = SnapshotPrefix + key
	}

	if err := c.Sync(); err != nil {
		log.Warn("sync before pull failed", "err", err)
	}

	raw, err := c.get(key)
	if err != nil {
		return fmt.Errorf("no snapshot %s: %w", key, err)
	}
	if err := repo.ImportJSON(raw); err != nil {
		return fmt.Errorf("import snapshot %s: %w", key, err)
	}
	log.Info("snapshot pulled", "key", key, "bytes", len(raw))
	return nil
}

// ListSnapshots returns timestamped snapshot keys, newest first.
func (c *Client) ListSnapshots() ([]string, error) {
	keys, err := c.keysWithPrefix(SnapshotPrefix)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	snapshots := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] != LatestKey {
			snapshots = append(snapshots, keys[i])
		}
	}
	return snapshots, nil
}
