// Package store persists per-visitor page preferences in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with the preference queries.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// OpenMemory creates an in-memory database, used by tests and the CLI.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// Path returns the database location.
func (d *DB) Path() string { return d.path }

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	visitor_id TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (visitor_id, key)
);
CREATE INDEX IF NOT EXISTS idx_preferences_updated ON preferences(updated_at);
`

// Preference returns the stored value of key for a visitor.
func (d *DB) Preference(ctx context.Context, visitorID, key string) (string, bool, error) {
	var value string
	err := d.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetPreference stores value under key for a visitor, replacing any
// previous value.
func (d *DB) SetPreference(ctx context.Context, visitorID, key, value string) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, visitorID, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// RenewPreferences marks every preference of a visitor as used now.
func (d *DB) RenewPreferences(ctx context.Context, visitorID string) error {
	_, err := d.ExecContext(ctx,
		`UPDATE preferences SET updated_at = ? WHERE visitor_id = ?`,
		time.Now().Unix(), visitorID,
	)
	if err != nil {
		return fmt.Errorf("renewing preferences: %w", err)
	}
	return nil
}

// CleanupPreferences removes preferences neither written nor read for
// longer than maxAge and returns how many were removed.
func (d *DB) CleanupPreferences(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	result, err := d.ExecContext(ctx, `DELETE FROM preferences WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up preferences: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Visitor is the key-value view of one visitor's preferences. Failures are
// logged and read as "no value". A successful read renews the visitor's
// preferences so returning visitors keep them.
type Visitor struct {
	db  *DB
	ctx context.Context
	id  string
}

// Visitor scopes the preference table to one visitor id.
func (d *DB) Visitor(ctx context.Context, id string) *Visitor {
	return &Visitor{db: d, ctx: ctx, id: id}
}

func (v *Visitor) Get(key string) (string, bool) {
	value, ok, err := v.db.Preference(v.ctx, v.id, key)
	if err != nil {
		log.Printf("Error loading preference: %v", err)
		return "", false
	}
	if ok {
		if err := v.db.RenewPreferences(v.ctx, v.id); err != nil {
			log.Printf("Error renewing preferences: %v", err)
		}
	}
	return value, ok
}

func (v *Visitor) Set(key, value string) {
	if err := v.db.SetPreference(v.ctx, v.id, key, value); err != nil {
		log.Printf("Error saving preference: %v", err)
	}
}
