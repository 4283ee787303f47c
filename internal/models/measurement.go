// ABOUTME: Measurement model for temperature readings.
// ABOUTME: Records carry a soft-delete flag and are retained for undo.
package models

import "time"

// Temperature sanity bounds in Celsius. Values outside this range are
// rejected as input errors rather than stored.
const (
	MinTempC = 30.0
	MaxTempC = 45.0
)

// DefaultCriticalTempC is the threshold highlighted on the chart.
const DefaultCriticalTempC = 39.8

// Measurement is a single temperature reading.
type Measurement struct {
	ID           int64     `json:"id" yaml:"id"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	ValueCelsius float64   `json:"value_celsius" yaml:"value_celsius"`
	Note         *string   `json:"note,omitempty" yaml:"note,omitempty"`
	Deleted      bool      `json:"deleted" yaml:"deleted"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NoteText returns the note or an empty string.
func (m *Measurement) NoteText() string {
	if m.Note == nil {
		return ""
	}
	return *m.Note
}
