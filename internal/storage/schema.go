// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for measurements, medications, and medication_names.
package storage

// initSchema creates or updates the database schema. Additive only; there
// is no migration framework.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS measurements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		value_celsius REAL NOT NULL,
		note TEXT,
		deleted INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS medications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		name TEXT NOT NULL,
		dose TEXT NOT NULL,
		note TEXT,
		deleted INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS medication_names (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE INDEX IF NOT EXISTS idx_measurements_timestamp ON measurements(timestamp);
	CREATE INDEX IF NOT EXISTS idx_measurements_deleted ON measurements(deleted, timestamp);
	CREATE INDEX IF NOT EXISTS idx_medications_timestamp ON medications(timestamp);
	CREATE INDEX IF NOT EXISTS idx_medications_deleted ON medications(deleted, timestamp);

	INSERT OR IGNORE INTO medication_names(name)
	SELECT DISTINCT name FROM medications WHERE TRIM(name) <> '';
	`

	_, err := s.db.Exec(schema)
	return err
}
