// ABOUTME: Tests for Repository interface implementation over SQLite.
// ABOUTME: Covers CRUD, validation, soft delete/undo, and ordering.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/fevertrack/internal/models"
)

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	mustAddMeasurement(t, s1, "2024-01-01T08:00", 38.5, "")
	if err := s1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Re-opening must not error or lose data
	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	measurements, err := s2.ListMeasurements(false)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 1 {
		t.Errorf("expected 1 measurement after reopen, got %d", len(measurements))
	}
}

func TestOpenUnreadablePath(t *testing.T) {
	// A path whose parent is a regular file cannot be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	s, err := Open(filepath.Join(blocker, "sub", "test.db"))
	if err == nil {
		s.Close()
		t.Skip("path was creatable on this platform")
	}
	var ue *UnavailableError
	if !errors.As(err, &ue) {
		t.Errorf("expected UnavailableError, got %T: %v", err, err)
	}
}

func TestAddAndGetMeasurement(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.5, "morning")

	got, err := s.GetMeasurement(id)
	if err != nil {
		t.Fatalf("GetMeasurement failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, id)
	}
	if models.FormatTimestamp(got.Timestamp) != "2024-01-01T08:00" {
		t.Errorf("Timestamp mismatch: got %s", models.FormatTimestamp(got.Timestamp))
	}
	if got.ValueCelsius != 38.5 {
		t.Errorf("ValueCelsius mismatch: got %v, want 38.5", got.ValueCelsius)
	}
	if got.Note == nil || *got.Note != "morning" {
		t.Errorf("Note mismatch: got %v, want 'morning'", got.Note)
	}
	if got.Deleted {
		t.Error("new measurement should not be deleted")
	}
}

func TestAddMeasurementAssignsFreshIDs(t *testing.T) {
	s := setupTestStore(t)

	id1 := mustAddMeasurement(t, s, "2024-01-01T08:00", 37.0, "")
	id2 := mustAddMeasurement(t, s, "2024-01-01T09:00", 37.5, "")
	if id1 == id2 {
		t.Errorf("expected unique ids, got %d twice", id1)
	}

	// Deleting a record must not free its id for reuse
	if err := s.SoftDelete(models.KindMeasurement, id2); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	id3 := mustAddMeasurement(t, s, "2024-01-01T10:00", 38.0, "")
	if id3 == id1 || id3 == id2 {
		t.Errorf("id %d was reused", id3)
	}
}

func TestAddMeasurementValidation(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name  string
		ts    string
		value float64
	}{
		{name: "bad timestamp", ts: "not a date", value: 38.0},
		{name: "empty timestamp", ts: "", value: 38.0},
		{name: "value too low", ts: "2024-01-01T08:00", value: 12.0},
		{name: "value too high", ts: "2024-01-01T08:00", value: 52.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddMeasurement(tt.ts, tt.value, "")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	// Nothing was written
	measurements, err := s.ListMeasurements(true)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 0 {
		t.Errorf("expected empty table after rejected inserts, got %d rows", len(measurements))
	}
}

func TestAddMedicationValidation(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name       string
		ts         string
		med, dose  string
	}{
		{name: "bad timestamp", ts: "yesterday-ish", med: "Paracetamol", dose: "120 mg"},
		{name: "empty name", ts: "2024-01-01T08:00", med: "  ", dose: "120 mg"},
		{name: "empty dose", ts: "2024-01-01T08:00", med: "Paracetamol", dose: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddMedication(tt.ts, tt.med, tt.dose, "")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestListMeasurementsSortedAscending(t *testing.T) {
	s := setupTestStore(t)

	// Insert out of order
	mustAddMeasurement(t, s, "2024-01-01T12:00", 38.9, "")
	mustAddMeasurement(t, s, "2024-01-01T08:00", 37.2, "")
	mustAddMeasurement(t, s, "2024-01-01T10:00", 38.1, "")

	measurements, err := s.ListMeasurements(false)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(measurements))
	}
	for i := 1; i < len(measurements); i++ {
		if measurements[i].Timestamp.Before(measurements[i-1].Timestamp) {
			t.Errorf("measurements not sorted ascending at index %d", i)
		}
	}
	if measurements[0].ValueCelsius != 37.2 {
		t.Errorf("expected earliest reading first, got %v", measurements[0].ValueCelsius)
	}
}

func TestListMedicationsSortedAscending(t *testing.T) {
	s := setupTestStore(t)

	mustAddMedication(t, s, "2024-01-01T20:00", "Ibuprofen", "5 mL", "")
	mustAddMedication(t, s, "2024-01-01T08:00", "Paracetamol", "120 mg", "")

	medications, err := s.ListMedications(false)
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if len(medications) != 2 {
		t.Fatalf("expected 2 medications, got %d", len(medications))
	}
	if medications[0].Name != "Paracetamol" {
		t.Errorf("expected earliest dose first, got %s", medications[0].Name)
	}
}

func TestSoftDeleteUndoRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.5, "")

	before, err := s.GetMeasurement(id)
	if err != nil {
		t.Fatalf("GetMeasurement failed: %v", err)
	}

	if err := s.SoftDelete(models.KindMeasurement, id); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// Excluded from default listing
	visible, err := s.ListMeasurements(false)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("expected empty default listing, got %d rows", len(visible))
	}

	// Present in include-deleted listing with the flag set
	all, err := s.ListMeasurements(true)
	if err != nil {
		t.Fatalf("ListMeasurements(true) failed: %v", err)
	}
	if len(all) != 1 || !all[0].Deleted {
		t.Fatalf("expected one deleted row, got %+v", all)
	}

	if err := s.UndoDelete(models.KindMeasurement, id); err != nil {
		t.Fatalf("UndoDelete failed: %v", err)
	}

	after, err := s.GetMeasurement(id)
	if err != nil {
		t.Fatalf("GetMeasurement after undo failed: %v", err)
	}
	if after.ID != before.ID ||
		!after.Timestamp.Equal(before.Timestamp) ||
		after.ValueCelsius != before.ValueCelsius ||
		after.Deleted != before.Deleted {
		t.Errorf("undo did not restore original state: before %+v, after %+v", before, after)
	}
}

func TestSoftDeleteIdempotent(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMedication(t, s, "2024-01-01T08:00", "Paracetamol", "120 mg", "")

	if err := s.SoftDelete(models.KindMedication, id); err != nil {
		t.Fatalf("first SoftDelete failed: %v", err)
	}
	if err := s.SoftDelete(models.KindMedication, id); err != nil {
		t.Errorf("second SoftDelete should be a no-op success, got %v", err)
	}
}

func TestSoftDeleteNotFound(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SoftDelete(models.KindMeasurement, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.UndoDelete(models.KindMedication, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	var ve *ValidationError
	if err := s.SoftDelete(models.Kind("potions"), 1); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for unknown kind, got %v", err)
	}
}

func TestUpdateMeasurement(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.2, "morning")

	ts := "2024-01-01T11:00"
	value := 37.8
	note := ""
	err := s.UpdateMeasurement(id, MeasurementUpdate{
		Timestamp:    &ts,
		ValueCelsius: &value,
		Note:         &note,
	})
	if err != nil {
		t.Fatalf("UpdateMeasurement failed: %v", err)
	}

	got, err := s.GetMeasurement(id)
	if err != nil {
		t.Fatalf("GetMeasurement failed: %v", err)
	}
	if models.FormatTimestamp(got.Timestamp) != "2024-01-01T11:00" {
		t.Errorf("Timestamp not updated: got %s", models.FormatTimestamp(got.Timestamp))
	}
	if got.ValueCelsius != 37.8 {
		t.Errorf("ValueCelsius not updated: got %v", got.ValueCelsius)
	}
	if got.Note != nil {
		t.Errorf("blank note should clear to NULL, got %q", *got.Note)
	}
}

func TestUpdateMeasurementPartial(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.2, "morning")

	value := 39.1
	if err := s.UpdateMeasurement(id, MeasurementUpdate{ValueCelsius: &value}); err != nil {
		t.Fatalf("UpdateMeasurement failed: %v", err)
	}

	got, err := s.GetMeasurement(id)
	if err != nil {
		t.Fatalf("GetMeasurement failed: %v", err)
	}
	if got.ValueCelsius != 39.1 {
		t.Errorf("ValueCelsius not updated: got %v", got.ValueCelsius)
	}
	// Untouched fields remain
	if models.FormatTimestamp(got.Timestamp) != "2024-01-01T08:00" {
		t.Errorf("Timestamp should be unchanged, got %s", models.FormatTimestamp(got.Timestamp))
	}
	if got.Note == nil || *got.Note != "morning" {
		t.Errorf("Note should be unchanged, got %v", got.Note)
	}
}

func TestUpdateNonexistentLeavesTableUnchanged(t *testing.T) {
	s := setupTestStore(t)

	mustAddMeasurement(t, s, "2024-01-01T08:00", 38.2, "")
	before, _ := s.ListMeasurements(true)

	value := 39.0
	err := s.UpdateMeasurement(999, MeasurementUpdate{ValueCelsius: &value})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	after, _ := s.ListMeasurements(true)
	if len(before) != len(after) {
		t.Errorf("table changed: %d rows before, %d after", len(before), len(after))
	}
	if after[0].ValueCelsius != before[0].ValueCelsius {
		t.Errorf("existing row changed: %v -> %v", before[0].ValueCelsius, after[0].ValueCelsius)
	}
}

func TestUpdateMeasurementValidation(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.2, "")

	badTS := "not a date"
	var ve *ValidationError
	if err := s.UpdateMeasurement(id, MeasurementUpdate{Timestamp: &badTS}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for bad timestamp, got %v", err)
	}

	badValue := 99.0
	if err := s.UpdateMeasurement(id, MeasurementUpdate{ValueCelsius: &badValue}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for bad value, got %v", err)
	}
}

func TestUpdateMedication(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMedication(t, s, "2024-01-01T12:00", "Paracetamol", "120 mg", "after meal")

	ts := "2024-01-01T12:30"
	note := ""
	if err := s.UpdateMedication(id, MedicationUpdate{Timestamp: &ts, Note: &note}); err != nil {
		t.Fatalf("UpdateMedication failed: %v", err)
	}

	got, err := s.GetMedication(id)
	if err != nil {
		t.Fatalf("GetMedication failed: %v", err)
	}
	if models.FormatTimestamp(got.Timestamp) != "2024-01-01T12:30" {
		t.Errorf("Timestamp not updated: got %s", models.FormatTimestamp(got.Timestamp))
	}
	if got.Name != "Paracetamol" || got.Dose != "120 mg" {
		t.Errorf("untouched fields changed: %s / %s", got.Name, got.Dose)
	}
	if got.Note != nil {
		t.Errorf("blank note should clear to NULL, got %q", *got.Note)
	}

	empty := " "
	var ve *ValidationError
	if err := s.UpdateMedication(id, MedicationUpdate{Name: &empty}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty name, got %v", err)
	}
	if err := s.UpdateMedication(id, MedicationUpdate{Dose: &empty}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty dose, got %v", err)
	}
}

func TestLatestMeasurement(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.LatestMeasurement(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty table, got %v", err)
	}

	mustAddMeasurement(t, s, "2024-01-01T08:00", 37.2, "")
	latestID := mustAddMeasurement(t, s, "2024-01-01T12:00", 38.9, "")

	got, err := s.LatestMeasurement()
	if err != nil {
		t.Fatalf("LatestMeasurement failed: %v", err)
	}
	if got.ID != latestID {
		t.Errorf("expected id %d, got %d", latestID, got.ID)
	}

	// Deleting the latest promotes the previous reading
	if err := s.SoftDelete(models.KindMeasurement, latestID); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	got, err = s.LatestMeasurement()
	if err != nil {
		t.Fatalf("LatestMeasurement after delete failed: %v", err)
	}
	if got.ValueCelsius != 37.2 {
		t.Errorf("expected previous reading, got %v", got.ValueCelsius)
	}
}

func TestSpecScenario(t *testing.T) {
	s := setupTestStore(t)

	id := mustAddMeasurement(t, s, "2024-01-01T08:00", 38.5, "")

	list, err := s.ListMeasurements(false)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(list) != 1 || list[0].ValueCelsius != 38.5 ||
		models.FormatTimestamp(list[0].Timestamp) != "2024-01-01T08:00" {
		t.Fatalf("unexpected listing: %+v", list)
	}

	if err := s.SoftDelete(models.KindMeasurement, id); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	list, _ = s.ListMeasurements(false)
	if len(list) != 0 {
		t.Fatalf("expected empty listing after delete, got %d", len(list))
	}
	all, _ := s.ListMeasurements(true)
	if len(all) != 1 || !all[0].Deleted {
		t.Fatalf("expected one deleted row, got %+v", all)
	}

	if err := s.UndoDelete(models.KindMeasurement, id); err != nil {
		t.Fatalf("UndoDelete failed: %v", err)
	}
	list, _ = s.ListMeasurements(false)
	if len(list) != 1 || list[0].Deleted || list[0].ValueCelsius != 38.5 {
		t.Fatalf("expected original entry restored, got %+v", list)
	}
}

func TestMedicationNamesCatalog(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddMedicationName("Ibuprofen")
	if err != nil {
		t.Fatalf("AddMedicationName failed: %v", err)
	}

	// Adding the same name again returns the same id
	again, err := s.AddMedicationName("Ibuprofen")
	if err != nil {
		t.Fatalf("AddMedicationName repeat failed: %v", err)
	}
	if again != id {
		t.Errorf("expected same id for duplicate name, got %d and %d", id, again)
	}

	if _, err := s.AddMedicationName("  "); err == nil {
		t.Error("expected error for blank name")
	}

	if err := s.RenameMedicationName(id, "Ibuprofen 100mg"); err != nil {
		t.Fatalf("RenameMedicationName failed: %v", err)
	}
	names, err := s.ListMedicationNames()
	if err != nil {
		t.Fatalf("ListMedicationNames failed: %v", err)
	}
	if len(names) != 1 || names[0].Name != "Ibuprofen 100mg" {
		t.Errorf("unexpected catalog: %+v", names)
	}

	if err := s.DeleteMedicationName(id); err != nil {
		t.Fatalf("DeleteMedicationName failed: %v", err)
	}
	if err := s.DeleteMedicationName(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddMedicationRegistersName(t *testing.T) {
	s := setupTestStore(t)

	mustAddMedication(t, s, "2024-01-01T08:00", "Paracetamol", "120 mg", "")

	names, err := s.ListMedicationNames()
	if err != nil {
		t.Fatalf("ListMedicationNames failed: %v", err)
	}
	if len(names) != 1 || names[0].Name != "Paracetamol" {
		t.Errorf("expected catalog to contain Paracetamol, got %+v", names)
	}
}
