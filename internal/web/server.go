// ABOUTME: Local dashboard HTTP server.
// ABOUTME: Serves the embedded page and a JSON API over the storage layer.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/fevertrack/internal/chart"
	"github.com/harperreed/fevertrack/internal/models"
	"github.com/harperreed/fevertrack/internal/storage"
)

//go:embed static/index.html
var staticFS embed.FS

// Server handles HTTP requests for the fever dashboard.
type Server struct {
	store    storage.Repository
	chartCfg chart.Config
	logger   *slog.Logger
}

// New creates a dashboard server over the given store. The critical
// temperature controls chart styling.
func New(store storage.Repository, criticalTemp float64, logger *slog.Logger) *Server {
	cfg := chart.DefaultConfig()
	if criticalTemp > 0 {
		cfg.CriticalTemp = criticalTemp
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, chartCfg: cfg, logger: logger}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/export/{kind}.csv", s.handleExportCSV)

	r.Route("/api", func(r chi.Router) {
		r.Get("/chart", s.handleChart)
		r.Get("/summary", s.handleSummary)

		r.Get("/measurements", s.handleListMeasurements)
		r.Post("/measurements", s.handleAddMeasurement)
		r.Patch("/measurements/{id}", s.handleUpdateMeasurement)
		r.Delete("/measurements/{id}", s.handleDelete(models.KindMeasurement))
		r.Post("/measurements/{id}/undo", s.handleUndo(models.KindMeasurement))

		r.Get("/medications", s.handleListMedications)
		r.Post("/medications", s.handleAddMedication)
		r.Patch("/medications/{id}", s.handleUpdateMedication)
		r.Delete("/medications/{id}", s.handleDelete(models.KindMedication))
		r.Post("/medications/{id}/undo", s.handleUndo(models.KindMedication))

		r.Get("/medication-names", s.handleListNames)
		r.Post("/medication-names", s.handleAddName)
		r.Patch("/medication-names/{id}", s.handleRenameName)
		r.Delete("/medication-names/{id}", s.handleDeleteName)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "api_error", "load page: %v", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, format string, args ...any) {
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}})
}

// storageError maps storage error kinds onto HTTP statuses.
func (s *Server) storageError(w http.ResponseWriter, err error) {
	var ve *storage.ValidationError
	switch {
	case errors.As(err, &ve):
		s.writeError(w, http.StatusBadRequest, "invalid_request_error", "%s", ve.Error())
	case errors.Is(err, storage.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "not_found_error", "%s", err.Error())
	default:
		s.logger.Error("storage error", "err", err)
		s.writeError(w, http.StatusInternalServerError, "api_error", "%s", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
