package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	SearchResultsTable = "search_results"

	DefaultPath        = "sovereign.db"
	DefaultBusyTimeout = 5 * time.Second
)

type SqliteConfig struct {
	Path        string
	BusyTimeout time.Duration
}

func NewSqliteDefaultConfig() *SqliteConfig {
	return &SqliteConfig{
		Path:        DefaultPath,
		BusyTimeout: DefaultBusyTimeout,
	}
}

func (c *SqliteConfig) dsn() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		c.Path, c.BusyTimeout.Milliseconds())
}

// OpenSqlite opens the database file, creating parent directories and the
// schema when absent.
func OpenSqlite(ctx context.Context, cfg *SqliteConfig) (*sql.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("sqlite config is required")
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// One writer at a time; appends are short.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+SearchResultsTable+` (
		id INTEGER PRIMARY KEY,
		intent TEXT,
		result TEXT,
		timestamp TEXT
	)`)
	if err != nil {
		return fmt.Errorf("failed to create %s table: %w", SearchResultsTable, err)
	}
	return nil
}
