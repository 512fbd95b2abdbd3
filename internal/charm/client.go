// ABOUTME: Charm KV client wrapper used to share tracker snapshots between machines.
// ABOUTME: Wraps the KV store with read-only guards and optional cloud sync after writes.
package charm

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	dbName           = "ftracker"
	defaultCharmHost = "charm.2389.dev"
)

// Store is the subset of the Charm KV API the client needs.
type Store interface {
	Set(key, value []byte) error
	Get(key []byte) ([]byte, error)
	Keys() ([][]byte, error)
	Sync() error
	IsReadOnly() bool
	Close() error
}

var _ Store = (*kv.KV)(nil)

// Client stores tracker snapshots in a Charm KV database.
type Client struct {
	kv       Store
	autoSync bool
	mu       sync.RWMutex
}

// Open opens the ftracker KV database and pulls remote changes.
// CHARM_HOST is respected when set; otherwise the default host is used.
func Open() (*Client, error) {
	if os.Getenv("CHARM_HOST") == "" {
		if err := os.Setenv("CHARM_HOST", defaultCharmHost); err != nil {
			return nil, err
		}
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := NewClient(db)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

// NewClient wraps an already-open store with auto sync enabled.
func NewClient(store Store) *Client {
	return &Client{kv: store, autoSync: true}
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process holds the lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// setAll writes every key/value pair, then syncs once if enabled.
func (c *Client) setAll(entries map[string][]byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	for key, data := range entries {
		if err := c.kv.Set([]byte(key), data); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	if c.autoSync {
		return c.kv.Sync()
	}
	return nil
}

func (c *Client) get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Get([]byte(key))
}

// keysWithPrefix returns matching keys in lexical order.
func (c *Client) keysWithPrefix(prefix string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, key := range keys {
		if bytes.HasPrefix(key, []byte(prefix)) {
			matches = append(matches, string(key))
		}
	}
	sort.Strings(matches)
	return matches, nil
}
