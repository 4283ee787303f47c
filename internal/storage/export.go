// ABOUTME: Export and import functionality for fever tracking data.
// ABOUTME: CSV per table for sharing, JSON and YAML snapshots for backup.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/fevertrack/internal/models"
)

// ExportCSV serializes all non-deleted records of the given kind,
// ascending by timestamp, with a header row matching the record fields.
func (s *Store) ExportCSV(kind models.Kind) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	switch kind {
	case models.KindMeasurement:
		measurements, err := s.ListMeasurements(false)
		if err != nil {
			return "", err
		}
		if err := w.Write([]string{"id", "timestamp", "value_celsius", "note", "deleted"}); err != nil {
			return "", fmt.Errorf("export csv: %w", err)
		}
		for _, m := range measurements {
			record := []string{
				strconv.FormatInt(m.ID, 10),
				models.FormatTimestamp(m.Timestamp),
				strconv.FormatFloat(m.ValueCelsius, 'g', -1, 64),
				m.NoteText(),
				strconv.FormatBool(m.Deleted),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("export csv: %w", err)
			}
		}
	case models.KindMedication:
		medications, err := s.ListMedications(false)
		if err != nil {
			return "", err
		}
		if err := w.Write([]string{"id", "timestamp", "name", "dose", "note", "deleted"}); err != nil {
			return "", fmt.Errorf("export csv: %w", err)
		}
		for _, m := range medications {
			record := []string{
				strconv.FormatInt(m.ID, 10),
				models.FormatTimestamp(m.Timestamp),
				m.Name,
				m.Dose,
				m.NoteText(),
				strconv.FormatBool(m.Deleted),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("export csv: %w", err)
			}
		}
	default:
		_, err := tableFor(kind)
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	return buf.String(), nil
}

// ExportData represents the full backup format. Unlike CSV export, the
// snapshot includes soft-deleted rows so a restore is lossless.
type ExportData struct {
	ID           uuid.UUID                `json:"id" yaml:"id"`
	Version      string                   `json:"version" yaml:"version"`
	ExportedAt   time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool         string                   `json:"tool" yaml:"tool"`
	Measurements []*models.Measurement    `json:"measurements" yaml:"measurements"`
	Medications  []*models.Medication     `json:"medications" yaml:"medications"`
	Names        []*models.MedicationName `json:"medication_names" yaml:"medication_names"`
}

// GetAllData retrieves all data for export, soft-deleted rows included.
func (s *Store) GetAllData() (*ExportData, error) {
	measurements, err := s.ListMeasurements(true)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	medications, err := s.ListMedications(true)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	names, err := s.ListMedicationNames()
	if err != nil {
		return nil, fmt.Errorf("list medication names: %w", err)
	}

	return &ExportData{
		ID:           uuid.New(),
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "fevertrack",
		Measurements: measurements,
		Medications:  medications,
		Names:        names,
	}, nil
}

// ImportData imports records from a backup snapshot, preserving ids and
// deleted flags. Duplicate ids cause an error.
func (s *Store) ImportData(data *ExportData) error {
	for _, m := range data.Measurements {
		_, err := s.db.Exec(
			"INSERT INTO measurements (id, timestamp, value_celsius, note, deleted, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			m.ID,
			models.FormatTimestamp(m.Timestamp),
			m.ValueCelsius,
			nullable(m.NoteText()),
			boolToInt(m.Deleted),
			m.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import measurement %d: %w", m.ID, err)
		}
	}
	for _, m := range data.Medications {
		_, err := s.db.Exec(
			"INSERT INTO medications (id, timestamp, name, dose, note, deleted, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			m.ID,
			models.FormatTimestamp(m.Timestamp),
			m.Name,
			m.Dose,
			nullable(m.NoteText()),
			boolToInt(m.Deleted),
			m.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import medication %d: %w", m.ID, err)
		}
	}
	for _, n := range data.Names {
		if _, err := s.db.Exec("INSERT OR IGNORE INTO medication_names(name) VALUES (?)", n.Name); err != nil {
			return fmt.Errorf("import medication name %q: %w", n.Name, err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (s *Store) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(&exportData)
}

// ExportYAML exports all data as YAML with formatted timestamps.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		ID           string            `yaml:"id"`
		Version      string            `yaml:"version"`
		ExportedAt   string            `yaml:"exported_at"`
		Tool         string            `yaml:"tool"`
		Measurements []yamlMeasurement `yaml:"measurements"`
		Medications  []yamlMedication  `yaml:"medications"`
		Names        []string          `yaml:"medication_names"`
	}{
		ID:         data.ID.String(),
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
	}

	for _, m := range data.Measurements {
		yamlData.Measurements = append(yamlData.Measurements, yamlMeasurement{
			ID:           m.ID,
			Timestamp:    models.FormatTimestamp(m.Timestamp),
			ValueCelsius: m.ValueCelsius,
			Note:         m.NoteText(),
			Deleted:      m.Deleted,
		})
	}
	for _, m := range data.Medications {
		yamlData.Medications = append(yamlData.Medications, yamlMedication{
			ID:        m.ID,
			Timestamp: models.FormatTimestamp(m.Timestamp),
			Name:      m.Name,
			Dose:      m.Dose,
			Note:      m.NoteText(),
			Deleted:   m.Deleted,
		})
	}
	for _, n := range data.Names {
		yamlData.Names = append(yamlData.Names, n.Name)
	}

	return yaml.Marshal(yamlData)
}

type yamlMeasurement struct {
	ID           int64   `yaml:"id"`
	Timestamp    string  `yaml:"timestamp"`
	ValueCelsius float64 `yaml:"value_celsius"`
	Note         string  `yaml:"note,omitempty"`
	Deleted      bool    `yaml:"deleted,omitempty"`
}

type yamlMedication struct {
	ID        int64  `yaml:"id"`
	Timestamp string `yaml:"timestamp"`
	Name      string `yaml:"name"`
	Dose      string `yaml:"dose"`
	Note      string `yaml:"note,omitempty"`
	Deleted   bool   `yaml:"deleted,omitempty"`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
