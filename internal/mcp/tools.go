// ABOUTME: MCP tool implementations for the fever tracker.
// ABOUTME: Provides CRUD operations for measurements and medication doses.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fevertrack/internal/models"
	"github.com/harperreed/fevertrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_measurement",
		Description: "Record a body temperature measurement in Celsius",
	}, s.handleAddMeasurement)

	// add_medication
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_medication",
		Description: "Record a medication dose (name and free-form dose string)",
	}, s.handleAddMedication)

	// list_measurements
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List temperature measurements in chronological order",
	}, s.handleListMeasurements)

	// list_medications
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_medications",
		Description: "List medication doses in chronological order",
	}, s.handleListMedications)

	// update_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_measurement",
		Description: "Edit a temperature measurement; only the provided fields change",
	}, s.handleUpdateMeasurement)

	// update_medication
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_medication",
		Description: "Edit a medication dose; only the provided fields change",
	}, s.handleUpdateMedication)

	// delete_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Soft-delete a measurement or medication by ID (reversible)",
	}, s.handleDeleteRecord)

	// undo_delete
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "undo_delete",
		Description: "Restore a previously deleted measurement or medication",
	}, s.handleUndoDelete)

	// latest_temperature
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_temperature",
		Description: "Get the most recent temperature measurement",
	}, s.handleLatestTemperature)

	// export_csv
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export measurements or medications as CSV text",
	}, s.handleExportCSV)
}

// Tool input/output types

type addMeasurementInput struct {
	Timestamp    string  `json:"timestamp" jsonschema:"Measurement time (YYYY-MM-DDTHH:MM)"`
	ValueCelsius float64 `json:"value_celsius" jsonschema:"Body temperature in Celsius (30.0-45.0)"`
	Note         string  `json:"note,omitempty" jsonschema:"Optional note"`
}

type addMedicationInput struct {
	Timestamp string `json:"timestamp" jsonschema:"Dose time (YYYY-MM-DDTHH:MM)"`
	Name      string `json:"name" jsonschema:"Medication name (e.g. Nurofen)"`
	Dose      string `json:"dose" jsonschema:"Dose as free text (e.g. 5 mL)"`
	Note      string `json:"note,omitempty" jsonschema:"Optional note"`
}

type recordOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listInput struct {
	IncludeDeleted bool `json:"include_deleted,omitempty" jsonschema:"Include soft-deleted records"`
	Limit          int  `json:"limit,omitempty" jsonschema:"Max results from the end of the series (default 20)"`
}

type updateMeasurementInput struct {
	ID           int64    `json:"id" jsonschema:"Measurement ID"`
	Timestamp    *string  `json:"timestamp,omitempty" jsonschema:"New timestamp (YYYY-MM-DDTHH:MM)"`
	ValueCelsius *float64 `json:"value_celsius,omitempty" jsonschema:"New temperature in Celsius"`
	Note         *string  `json:"note,omitempty" jsonschema:"New note (empty clears it)"`
}

type updateMedicationInput struct {
	ID        int64   `json:"id" jsonschema:"Medication ID"`
	Timestamp *string `json:"timestamp,omitempty" jsonschema:"New timestamp (YYYY-MM-DDTHH:MM)"`
	Name      *string `json:"name,omitempty" jsonschema:"New medication name"`
	Dose      *string `json:"dose,omitempty" jsonschema:"New dose text"`
	Note      *string `json:"note,omitempty" jsonschema:"New note (empty clears it)"`
}

type recordRefInput struct {
	Kind string `json:"kind" jsonschema:"Record kind: measurements or medications"`
	ID   int64  `json:"id" jsonschema:"Record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type exportInput struct {
	Kind string `json:"kind" jsonschema:"Record kind: measurements or medications"`
}

type exportOutput struct {
	CSV string `json:"csv"`
}

// Tool handlers

func (s *Server) handleAddMeasurement(ctx context.Context, req *mcp.CallToolRequest, input addMeasurementInput) (*mcp.CallToolResult, recordOutput, error) {
	id, err := s.repo.AddMeasurement(input.Timestamp, input.ValueCelsius, input.Note)
	if err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to add measurement: %w", err)
	}

	msg := fmt.Sprintf("Recorded %.1f°C at %s (ID: %d)", input.ValueCelsius, input.Timestamp, id)
	if input.ValueCelsius >= models.DefaultCriticalTempC {
		msg += " — above the critical threshold"
	}

	return nil, recordOutput{ID: id, Message: msg}, nil
}

func (s *Server) handleAddMedication(ctx context.Context, req *mcp.CallToolRequest, input addMedicationInput) (*mcp.CallToolResult, recordOutput, error) {
	id, err := s.repo.AddMedication(input.Timestamp, input.Name, input.Dose, input.Note)
	if err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to add medication: %w", err)
	}

	return nil, recordOutput{
		ID:      id,
		Message: fmt.Sprintf("Recorded %s (%s) at %s (ID: %d)", input.Name, input.Dose, input.Timestamp, id),
	}, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	measurements, err := s.repo.ListMeasurements(input.IncludeDeleted)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	if len(measurements) > input.Limit {
		measurements = measurements[len(measurements)-input.Limit:]
	}

	return nil, map[string]any{
		"count":        len(measurements),
		"measurements": measurements,
	}, nil
}

func (s *Server) handleListMedications(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	medications, err := s.repo.ListMedications(input.IncludeDeleted)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(medications) > input.Limit {
		medications = medications[len(medications)-input.Limit:]
	}

	return nil, map[string]any{
		"count":       len(medications),
		"medications": medications,
	}, nil
}

func (s *Server) handleUpdateMeasurement(ctx context.Context, req *mcp.CallToolRequest, input updateMeasurementInput) (*mcp.CallToolResult, any, error) {
	err := s.repo.UpdateMeasurement(input.ID, storage.MeasurementUpdate{
		Timestamp:    input.Timestamp,
		ValueCelsius: input.ValueCelsius,
		Note:         input.Note,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update measurement: %w", err)
	}

	m, err := s.repo.GetMeasurement(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read back measurement: %w", err)
	}

	return nil, map[string]any{
		"measurement": m,
		"message":     fmt.Sprintf("Updated measurement %d", input.ID),
	}, nil
}

func (s *Server) handleUpdateMedication(ctx context.Context, req *mcp.CallToolRequest, input updateMedicationInput) (*mcp.CallToolResult, any, error) {
	err := s.repo.UpdateMedication(input.ID, storage.MedicationUpdate{
		Timestamp: input.Timestamp,
		Name:      input.Name,
		Dose:      input.Dose,
		Note:      input.Note,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update medication: %w", err)
	}

	m, err := s.repo.GetMedication(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read back medication: %w", err)
	}

	return nil, map[string]any{
		"medication": m,
		"message":    fmt.Sprintf("Updated medication %d", input.ID),
	}, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input recordRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	kind, ok := models.ParseKind(input.Kind)
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("unknown record kind: %s", input.Kind)
	}

	if err := s.repo.SoftDelete(kind, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s record %d (use undo_delete to restore)", kind, input.ID),
	}, nil
}

func (s *Server) handleUndoDelete(ctx context.Context, req *mcp.CallToolRequest, input recordRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	kind, ok := models.ParseKind(input.Kind)
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("unknown record kind: %s", input.Kind)
	}

	if err := s.repo.UndoDelete(kind, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to restore record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Restored %s record %d", kind, input.ID),
	}, nil
}

func (s *Server) handleLatestTemperature(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	latest, err := s.repo.LatestMeasurement()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest temperature: %w", err)
	}

	return nil, map[string]any{
		"measurement": latest,
		"critical":    latest.ValueCelsius >= models.DefaultCriticalTempC,
	}, nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest, input exportInput) (*mcp.CallToolResult, exportOutput, error) {
	kind, ok := models.ParseKind(input.Kind)
	if !ok {
		return nil, exportOutput{}, fmt.Errorf("unknown record kind: %s", input.Kind)
	}

	out, err := s.repo.ExportCSV(kind)
	if err != nil {
		return nil, exportOutput{}, fmt.Errorf("failed to export: %w", err)
	}

	return nil, exportOutput{CSV: out}, nil
}
