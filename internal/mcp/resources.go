// ABOUTME: MCP resource implementations for the fever tracker.
// ABOUTME: Provides fever://recent, fever://today, and fever://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fevertrack/internal/models"
	"github.com/harperreed/fevertrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fever://recent - last entries across measurements and medications
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fever://recent",
		Name:        "Recent Entries",
		Description: "Last 10 temperature measurements and last 5 medication doses",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fever://today - everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fever://today",
		Name:        "Today's Entries",
		Description: "All measurements and medications logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fever://summary - latest temperature plus last medication
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fever://summary",
		Name:        "Fever Summary",
		Description: "Latest temperature, critical status, and most recent medication",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	measurements, err := s.repo.ListMeasurements(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	if len(measurements) > 10 {
		measurements = measurements[len(measurements)-10:]
	}

	medications, err := s.repo.ListMedications(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(medications) > 5 {
		medications = medications[len(medications)-5:]
	}

	return resourceResult("fever://recent", map[string]any{
		"measurements": measurements,
		"medications":  medications,
	})
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	measurements, err := s.repo.ListMeasurements(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	var todayMeasurements []*models.Measurement
	for _, m := range measurements {
		if !m.Timestamp.Before(todayStart) {
			todayMeasurements = append(todayMeasurements, m)
		}
	}

	medications, err := s.repo.ListMedications(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	var todayMedications []*models.Medication
	for _, m := range medications {
		if !m.Timestamp.Before(todayStart) {
			todayMedications = append(todayMedications, m)
		}
	}

	return resourceResult("fever://today", map[string]any{
		"date":         todayStart.Format("2006-01-02"),
		"measurements": todayMeasurements,
		"medications":  todayMedications,
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary := map[string]any{}

	latest, err := s.repo.LatestMeasurement()
	switch {
	case err == nil:
		summary["latest_temperature"] = latest
		summary["critical"] = latest.ValueCelsius >= models.DefaultCriticalTempC
	case errors.Is(err, storage.ErrNotFound):
		summary["latest_temperature"] = nil
	default:
		return nil, fmt.Errorf("failed to get latest temperature: %w", err)
	}

	medications, err := s.repo.ListMedications(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(medications) > 0 {
		summary["last_medication"] = medications[len(medications)-1]
	}

	return resourceResult("fever://summary", summary)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
