// ABOUTME: Medication name catalog operations.
// ABOUTME: The catalog pre-fills dose entry forms; entries are hard-deleted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fevertrack/internal/models"
)

// ListMedicationNames returns the catalog sorted case-insensitively.
func (s *Store) ListMedicationNames() ([]*models.MedicationName, error) {
	rows, err := s.db.Query("SELECT id, name FROM medication_names ORDER BY LOWER(name) ASC")
	if err != nil {
		return nil, fmt.Errorf("list medication names: %w", err)
	}
	defer rows.Close()

	var names []*models.MedicationName
	for rows.Next() {
		var n models.MedicationName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("scan medication name: %w", err)
		}
		names = append(names, &n)
	}
	return names, rows.Err()
}

// AddMedicationName inserts a name into the catalog, returning its id.
// Adding a name that already exists returns the existing id.
func (s *Store) AddMedicationName(name string) (int64, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return 0, &ValidationError{Field: "name", Reason: "medication name cannot be empty"}
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO medication_names(name) VALUES (?)", cleaned); err != nil {
		return 0, fmt.Errorf("add medication name: %w", err)
	}

	var id int64
	err := s.db.QueryRow("SELECT id FROM medication_names WHERE name = ?", cleaned).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add medication name: %w", err)
	}
	return id, nil
}

// RenameMedicationName changes a catalog entry in place.
func (s *Store) RenameMedicationName(id int64, name string) error {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return &ValidationError{Field: "name", Reason: "medication name cannot be empty"}
	}

	result, err := s.db.Exec("UPDATE medication_names SET name = ? WHERE id = ?", cleaned, id)
	if err != nil {
		return fmt.Errorf("rename medication name: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename medication name: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMedicationName removes a catalog entry. Logged doses keep the
// name they were recorded with.
func (s *Store) DeleteMedicationName(id int64) error {
	result, err := s.db.Exec("DELETE FROM medication_names WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete medication name: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete medication name: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetMedicationName retrieves a catalog entry by id.
func (s *Store) GetMedicationName(id int64) (*models.MedicationName, error) {
	var n models.MedicationName
	err := s.db.QueryRow("SELECT id, name FROM medication_names WHERE id = ?", id).Scan(&n.ID, &n.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medication name: %w", err)
	}
	return &n, nil
}
