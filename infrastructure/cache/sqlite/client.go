// ABOUTME: SQLite cache backend so extraction results survive process restarts
// ABOUTME: Expired rows are swept by a background routine, reads filter on expiry

// Package sqlite implements the cache contract on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cleanupInterval = time.Hour

// Client implements the Cache interface using SQLite.
type Client struct {
	db   *sql.DB
	done chan struct{}
}

// NewSQLiteCache opens or creates the cache database at the given path.
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		return nil, errors.New("sqlite cache path cannot be empty")
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect sqlite cache: %w", err)
	}

	client := &Client{db: db, done: make(chan struct{})}
	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("init sqlite cache schema: %w", err)
	}

	go client.cleanupLoop()
	return client, nil
}

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

// Get retrieves a value. Expired rows are treated as missing; the sweeper
// removes them later.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	query := "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, errors.New("key not found")
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite cache get: %w", err)
	}
	return value, nil
}

// Set stores a value with the given TTL. A zero TTL is stored as expiry 0,
// meaning no expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("sqlite cache set: %w", err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("sqlite cache delete: %w", err)
	}
	return nil
}

// Close stops the sweeper and closes the database.
func (c *Client) Close() error {
	close(c.done)
	return c.db.Close()
}

func (c *Client) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.db.Exec("DELETE FROM cache WHERE expiry > 0 AND expiry <= ?", time.Now().Unix())
		}
	}
}
