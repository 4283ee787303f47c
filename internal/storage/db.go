// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/harperreed/fevertrack/internal/models"
)

// Store wraps the SQLite database connection.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the database at the given path. Safe to call on
// every process start; schema creation is idempotent.
func Open(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, &UnavailableError{Path: dbPath, Err: err}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &UnavailableError{Path: dbPath, Err: err}
	}

	s := &Store{db: db, dbPath: dbPath}

	// Configure pragmas for better performance. The first statement also
	// creates the file, so open failures surface here.
	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, &UnavailableError{Path: dbPath, Err: err}
	}

	// Set file permissions
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, &UnavailableError{Path: dbPath, Err: err}
	}

	// Initialize schema
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, &UnavailableError{Path: dbPath, Err: fmt.Errorf("initialize schema: %w", err)}
	}

	return s, nil
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*Store, error) {
	return Open(DefaultDBPath())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fevertrack")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "fevertrack.db")
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for a single local writer.
func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// tableFor maps a record kind to its table name. The kind is validated
// here so table names are never interpolated from raw input.
func tableFor(kind models.Kind) (string, error) {
	switch kind {
	case models.KindMeasurement:
		return "measurements", nil
	case models.KindMedication:
		return "medications", nil
	}
	return "", &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown record kind %q", kind)}
}

// nullable converts an optional free-text field to its stored form:
// NULL for blank input, the trimmed string otherwise.
func nullable(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
