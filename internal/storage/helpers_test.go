// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestStore for isolated database instances.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustAddMeasurement(t *testing.T, s *Store, ts string, value float64, note string) int64 {
	t.Helper()
	id, err := s.AddMeasurement(ts, value, note)
	if err != nil {
		t.Fatalf("AddMeasurement failed: %v", err)
	}
	return id
}

func mustAddMedication(t *testing.T, s *Store, ts, name, dose, note string) int64 {
	t.Helper()
	id, err := s.AddMedication(ts, name, dose, note)
	if err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}
	return id
}
