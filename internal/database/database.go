package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection
func New(path string) (*DB, error) {
	// Referential integrity is off by default in SQLite and must be
	// enabled per connection for the take -> course/student keys to hold
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single connection: the tool is single-caller, and a :memory:
	// target gives every pool connection its own empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	log.Debug().Str("path", path).Msg("Database connection established")

	return &DB{
		DB:   db,
		path: path,
	}, nil
}

// Path returns the database target path (file path or ":memory:")
func (db *DB) Path() string {
	return db.path
}

// InMemory reports whether the database lives only for this process
func (db *DB) InMemory() bool {
	return db.path == ":memory:"
}

// IsSeeded checks whether the sample dataset is already present
func (db *DB) IsSeeded() (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM student").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check students: %w", err)
	}
	return count > 0, nil
}

// Transaction wraps a function in a database transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
