// ABOUTME: Medication dose CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for administered doses.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fevertrack/internal/models"
)

// AddMedication validates and stores a new administered dose, returning
// the assigned id. The medication name is registered in the catalog.
func (s *Store) AddMedication(timestamp, name, dose, note string) (int64, error) {
	when, err := models.ParseTimestamp(timestamp)
	if err != nil {
		return 0, &ValidationError{Field: "timestamp", Reason: err.Error()}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Field: "name", Reason: "medication name cannot be empty"}
	}
	dose = strings.TrimSpace(dose)
	if dose == "" {
		return 0, &ValidationError{Field: "dose", Reason: "dose cannot be empty"}
	}

	query := `
		INSERT INTO medications (timestamp, name, dose, note, deleted, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`
	result, err := s.db.Exec(query,
		models.FormatTimestamp(when),
		name,
		dose,
		nullable(note),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("add medication: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add medication: %w", err)
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO medication_names(name) VALUES (?)", name); err != nil {
		return 0, fmt.Errorf("register medication name: %w", err)
	}
	return id, nil
}

// GetMedication retrieves a medication dose by id, deleted or not.
func (s *Store) GetMedication(id int64) (*models.Medication, error) {
	query := `
		SELECT id, timestamp, name, dose, note, deleted, created_at
		FROM medications
		WHERE id = ?
	`
	return scanMedication(s.db.QueryRow(query, id))
}

// ListMedications retrieves medication doses sorted by timestamp ascending.
// Soft-deleted rows are excluded unless includeDeleted is set.
func (s *Store) ListMedications(includeDeleted bool) ([]*models.Medication, error) {
	query := `
		SELECT id, timestamp, name, dose, note, deleted, created_at
		FROM medications
	`
	if !includeDeleted {
		query += " WHERE deleted = 0"
	}
	query += " ORDER BY timestamp ASC, id ASC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var medications []*models.Medication
	for rows.Next() {
		m, err := scanMedicationFrom(rows)
		if err != nil {
			return nil, err
		}
		medications = append(medications, m)
	}
	return medications, rows.Err()
}

// MedicationUpdate carries the fields to overwrite on a medication dose.
// Nil fields are left unchanged.
type MedicationUpdate struct {
	Timestamp *string
	Name      *string
	Dose      *string
	Note      *string
}

// UpdateMedication overwrites the provided fields on the record with the
// given id. The id itself is immutable.
func (s *Store) UpdateMedication(id int64, upd MedicationUpdate) error {
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
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return &ValidationError{Field: "name", Reason: "medication name cannot be empty"}
		}
		sets = append(sets, "name = ?")
		args = append(args, name)
	}
	if upd.Dose != nil {
		dose := strings.TrimSpace(*upd.Dose)
		if dose == "" {
			return &ValidationError{Field: "dose", Reason: "dose cannot be empty"}
		}
		sets = append(sets, "dose = ?")
		args = append(args, dose)
	}
	if upd.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, nullable(*upd.Note))
	}

	if len(sets) == 0 {
		_, err := s.GetMedication(id)
		return err
	}

	query := "UPDATE medications SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := s.db.Exec(query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMedicationFrom(row rowScanner) (*models.Medication, error) {
	var m models.Medication
	var timestamp, createdAt string
	var note sql.NullString
	var deleted int

	err := row.Scan(&m.ID, &timestamp, &m.Name, &m.Dose, &note, &deleted, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan medication: %w", err)
	}

	m.Timestamp, _ = models.ParseTimestamp(timestamp)
	m.CreatedAt = parseCreatedAt(createdAt)
	m.Deleted = deleted != 0
	if note.Valid {
		m.Note = &note.String
	}
	return &m, nil
}

func scanMedication(row *sql.Row) (*models.Medication, error) {
	return scanMedicationFrom(row)
}
