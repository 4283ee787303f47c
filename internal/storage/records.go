// ABOUTME: Soft delete and undo operations across both record kinds.
// ABOUTME: Deleted rows are retained; there is no hard delete or purge.
package storage

import (
	"fmt"

	"github.com/harperreed/fevertrack/internal/models"
)

// SoftDelete sets the deleted flag on the record matching kind and id.
// Deleting an already-deleted record is a no-op success.
func (s *Store) SoftDelete(kind models.Kind, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	result, err := s.db.Exec("UPDATE "+table+" SET deleted = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", kind, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", kind, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UndoDelete clears the deleted flag, restoring the record to listings.
func (s *Store) UndoDelete(kind models.Kind, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	result, err := s.db.Exec("UPDATE "+table+" SET deleted = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("undo delete %s: %w", kind, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("undo delete %s: %w", kind, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
