// ABOUTME: Measurement CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for temperature readings.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fevertrack/internal/models"
)

// AddMeasurement validates and stores a new temperature reading,
// returning the assigned id.
func (s *Store) AddMeasurement(timestamp string, valueCelsius float64, note string) (int64, error) {
	when, err := models.ParseTimestamp(timestamp)
	if err != nil {
		return 0, &ValidationError{Field: "timestamp", Reason: err.Error()}
	}
	if valueCelsius < models.MinTempC || valueCelsius > models.MaxTempC {
		return 0, &ValidationError{
			Field:  "value_celsius",
			Reason: fmt.Sprintf("%.1f outside sane range %.1f-%.1f", valueCelsius, models.MinTempC, models.MaxTempC),
		}
	}

	query := `
		INSERT INTO measurements (timestamp, value_celsius, note, deleted, created_at)
		VALUES (?, ?, ?, 0, ?)
	`
	result, err := s.db.Exec(query,
		models.FormatTimestamp(when),
		valueCelsius,
		nullable(note),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("add measurement: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add measurement: %w", err)
	}
	return id, nil
}

// GetMeasurement retrieves a measurement by id, deleted or not.
func (s *Store) GetMeasurement(id int64) (*models.Measurement, error) {
	query := `
		SELECT id, timestamp, value_celsius, note, deleted, created_at
		FROM measurements
		WHERE id = ?
	`
	return scanMeasurement(s.db.QueryRow(query, id))
}

// ListMeasurements retrieves measurements sorted by timestamp ascending.
// Soft-deleted rows are excluded unless includeDeleted is set.
func (s *Store) ListMeasurements(includeDeleted bool) ([]*models.Measurement, error) {
	query := `
		SELECT id, timestamp, value_celsius, note, deleted, created_at
		FROM measurements
	`
	if !includeDeleted {
		query += " WHERE deleted = 0"
	}
	query += " ORDER BY timestamp ASC, id ASC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var measurements []*models.Measurement
	for rows.Next() {
		m, err := scanMeasurementRow(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

// LatestMeasurement returns the most recent non-deleted reading.
func (s *Store) LatestMeasurement() (*models.Measurement, error) {
	query := `
		SELECT id, timestamp, value_celsius, note, deleted, created_at
		FROM measurements
		WHERE deleted = 0
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`
	return scanMeasurement(s.db.QueryRow(query))
}

// MeasurementUpdate carries the fields to overwrite on a measurement.
// Nil fields are left unchanged.
type MeasurementUpdate struct {
	Timestamp    *string
	ValueCelsius *float64
	Note         *string
}

// UpdateMeasurement overwrites the provided fields on the record with the
// given id. The id itself is immutable.
func (s *Store) UpdateMeasurement(id int64, upd MeasurementUpdate) error {
	var sets []string
	var args []any

	if upd.Timestamp != nil {
		when, err := models.ParseTimestamp(*upd.Timestamp)
		if err != nil {
			return &ValidationError{Field: "timestamp", Reason: err.Error()}
		}
		sets = append(sets, "timestamp = ?")
		args = append(args, models.FormatTimestamp(when))
	}
	if upd.ValueCelsius != nil {
		v := *upd.ValueCelsius
		if v < models.MinTempC || v > models.MaxTempC {
			return &ValidationError{
				Field:  "value_celsius",
				Reason: fmt.Sprintf("%.1f outside sane range %.1f-%.1f", v, models.MinTempC, models.MaxTempC),
			}
		}
		sets = append(sets, "value_celsius = ?")
		args = append(args, v)
	}
	if upd.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, nullable(*upd.Note))
	}

	if len(sets) == 0 {
		// Nothing to change; still report missing records.
		_, err := s.GetMeasurement(id)
		return err
	}

	query := "UPDATE measurements SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := s.db.Exec(query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("update measurement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update measurement: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasurementFrom(row rowScanner) (*models.Measurement, error) {
	var m models.Measurement
	var timestamp, createdAt string
	var note sql.NullString
	var deleted int

	err := row.Scan(&m.ID, &timestamp, &m.ValueCelsius, &note, &deleted, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan measurement: %w", err)
	}

	m.Timestamp, _ = models.ParseTimestamp(timestamp)
	m.CreatedAt = parseCreatedAt(createdAt)
	m.Deleted = deleted != 0
	if note.Valid {
		m.Note = &note.String
	}
	return &m, nil
}

func scanMeasurement(row *sql.Row) (*models.Measurement, error) {
	return scanMeasurementFrom(row)
}

func scanMeasurementRow(rows *sql.Rows) (*models.Measurement, error) {
	return scanMeasurementFrom(rows)
}

// parseCreatedAt accepts both RFC3339 (written on insert) and SQLite's
// CURRENT_TIMESTAMP form.
func parseCreatedAt(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}
