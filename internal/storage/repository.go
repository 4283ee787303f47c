// ABOUTME: Repository interface for fever tracking data.
// ABOUTME: Defines the contract consumed by the CLI, web, and MCP layers.
package storage

import (
	"github.com/harperreed/fevertrack/internal/models"
)

// Repository defines the storage interface for fever tracking data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Measurement operations
	AddMeasurement(timestamp string, valueCelsius float64, note string) (int64, error)
	GetMeasurement(id int64) (*models.Measurement, error)
	ListMeasurements(includeDeleted bool) ([]*models.Measurement, error)
	LatestMeasurement() (*models.Measurement, error)
	UpdateMeasurement(id int64, upd MeasurementUpdate) error

	// Medication operations
	AddMedication(timestamp, name, dose, note string) (int64, error)
	GetMedication(id int64) (*models.Medication, error)
	ListMedications(includeDeleted bool) ([]*models.Medication, error)
	UpdateMedication(id int64, upd MedicationUpdate) error

	// Cross-kind operations
	SoftDelete(kind models.Kind, id int64) error
	UndoDelete(kind models.Kind, id int64) error
	ExportCSV(kind models.Kind) (string, error)

	// Medication name catalog
	ListMedicationNames() ([]*models.MedicationName, error)
	AddMedicationName(name string) (int64, error)
	RenameMedicationName(id int64, name string) error
	DeleteMedicationName(id int64) error

	// Backup export/import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
