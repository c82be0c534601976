// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps fetched content in a file so it survives site restarts

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"catcare-web/core/errors"
	"catcare-web/pkg/config"

	_ "github.com/mattn/go-sqlite3"
)

// noExpiry marks rows stored with a zero TTL
const noExpiry int64 = 0

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(cfg config.SQLiteConfig) (*Client, error) {
	filePath := cfg.Path
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		stop:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine(5 * time.Minute)

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, &errors.ValidationError{Field: "key", Message: "cannot be empty"}
	}

	var value []byte
	query := "SELECT value FROM cache WHERE key = ? AND (expiry = ? OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, noExpiry, time.Now().UnixNano()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, errors.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A zero TTL keeps the value until deleted.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return &errors.ValidationError{Field: "key", Message: "cannot be empty"}
	}

	expiry := noExpiry
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixNano()
	}

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return &errors.ValidationError{Field: "key", Message: "cannot be empty"}
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close is called
func (c *Client) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries
func (c *Client) cleanup() {
	query := "DELETE FROM cache WHERE expiry != ? AND expiry <= ?"
	_, _ = c.db.Exec(query, noExpiry, time.Now().UnixNano())
}

// Close stops the cleanup routine and closes the database connection.
// Calling it more than once is safe.
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.db.Close()
}
