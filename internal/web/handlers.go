// ABOUTME: JSON API handlers for the dashboard.
// ABOUTME: Each handler is one synchronous storage interaction.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/fevertrack/internal/chart"
	"github.com/harperreed/fevertrack/internal/models"
	"github.com/harperreed/fevertrack/internal/storage"
)

const maxBodySize = 1 << 20 // 1MB

type measurementRequest struct {
	Timestamp    string  `json:"timestamp"`
	ValueCelsius float64 `json:"value_celsius"`
	Note         string  `json:"note"`
}

type measurementPatch struct {
	Timestamp    *string  `json:"timestamp"`
	ValueCelsius *float64 `json:"value_celsius"`
	Note         *string  `json:"note"`
}

type medicationRequest struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Note      string `json:"note"`
}

type medicationPatch struct {
	Timestamp *string `json:"timestamp"`
	Name      *string `json:"name"`
	Dose      *string `json:"dose"`
	Note      *string `json:"note"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return false
	}
	return true
}

func (s *Server) recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_request_error", "invalid record id")
		return 0, false
	}
	return id, true
}

func includeDeleted(r *http.Request) bool {
	v := r.URL.Query().Get("include_deleted")
	return v == "1" || v == "true"
}

func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request) {
	measurements, err := s.store.ListMeasurements(includeDeleted(r))
	if err != nil {
		s.storageError(w, err)
		return
	}
	if measurements == nil {
		measurements = []*models.Measurement{}
	}
	writeJSON(w, http.StatusOK, measurements)
}

func (s *Server) handleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	id, err := s.store.AddMeasurement(req.Timestamp, req.ValueCelsius, req.Note)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleUpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	id, ok := s.recordID(w, r)
	if !ok {
		return
	}
	var patch measurementPatch
	if !s.decodeBody(w, r, &patch) {
		return
	}
	err := s.store.UpdateMeasurement(id, storage.MeasurementUpdate{
		Timestamp:    patch.Timestamp,
		ValueCelsius: patch.ValueCelsius,
		Note:         patch.Note,
	})
	if err != nil {
		s.storageError(w, err)
		return
	}
	record, err := s.store.GetMeasurement(id)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := s.store.ListMedications(includeDeleted(r))
	if err != nil {
		s.storageError(w, err)
		return
	}
	if medications == nil {
		medications = []*models.Medication{}
	}
	writeJSON(w, http.StatusOK, medications)
}

func (s *Server) handleAddMedication(w http.ResponseWriter, r *http.Request) {
	var req medicationRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	id, err := s.store.AddMedication(req.Timestamp, req.Name, req.Dose, req.Note)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleUpdateMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := s.recordID(w, r)
	if !ok {
		return
	}
	var patch medicationPatch
	if !s.decodeBody(w, r, &patch) {
		return
	}
	err := s.store.UpdateMedication(id, storage.MedicationUpdate{
		Timestamp: patch.Timestamp,
		Name:      patch.Name,
		Dose:      patch.Dose,
		Note:      patch.Note,
	})
	if err != nil {
		s.storageError(w, err)
		return
	}
	record, err := s.store.GetMedication(id)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleDelete(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.recordID(w, r)
		if !ok {
			return
		}
		if err := s.store.SoftDelete(kind, id); err != nil {
			s.storageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (s *Server) handleUndo(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.recordID(w, r)
		if !ok {
			return
		}
		if err := s.store.UndoDelete(kind, id); err != nil {
			s.storageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
	}
}

func (s *Server) handleListNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListMedicationNames()
	if err != nil {
		s.storageError(w, err)
		return
	}
	if names == nil {
		names = []*models.MedicationName{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleAddName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	id, err := s.store.AddMedicationName(req.Name)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleRenameName(w http.ResponseWriter, r *http.Request) {
	id, ok := s.recordID(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.store.RenameMedicationName(id, req.Name); err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (s *Server) handleDeleteName(w http.ResponseWriter, r *http.Request) {
	id, ok := s.recordID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteMedicationName(id); err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	measurements, err := s.store.ListMeasurements(false)
	if err != nil {
		s.storageError(w, err)
		return
	}
	medications, err := s.store.ListMedications(false)
	if err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chart.Build(s.chartCfg, measurements, medications, time.Now()))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary := map[string]any{}

	latest, err := s.store.LatestMeasurement()
	switch {
	case err == nil:
		summary["latest_temperature"] = latest
		summary["critical"] = latest.ValueCelsius >= s.chartCfg.CriticalTemp
	case errors.Is(err, storage.ErrNotFound):
		summary["latest_temperature"] = nil
	default:
		s.storageError(w, err)
		return
	}

	medications, err := s.store.ListMedications(false)
	if err != nil {
		s.storageError(w, err)
		return
	}
	if len(medications) > 0 {
		summary["last_medication"] = medications[len(medications)-1]
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "not_found_error", "unknown export kind")
		return
	}
	out, err := s.store.ExportCSV(kind)
	if err != nil {
		s.storageError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+string(kind)+`.csv"`)
	_, _ = w.Write([]byte(out))
}
