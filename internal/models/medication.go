// ABOUTME: Medication dose model and the medication name catalog.
// ABOUTME: Doses are independent of measurements, correlated only by time.
package models

import "time"

// Medication is a single administered dose.
type Medication struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Name      string    `json:"name" yaml:"name"`
	Dose      string    `json:"dose" yaml:"dose"`
	Note      *string   `json:"note,omitempty" yaml:"note,omitempty"`
	Deleted   bool      `json:"deleted" yaml:"deleted"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NoteText returns the note or an empty string.
func (m *Medication) NoteText() string {
	if m.Note == nil {
		return ""
	}
	return *m.Note
}

// Label formats the dose for display, e.g. "Paracetamol (120 mg)".
func (m *Medication) Label() string {
	if m.Dose == "" {
		return m.Name
	}
	return m.Name + " (" + m.Dose + ")"
}

// MedicationName is a catalog entry used to pre-fill medication forms.
type MedicationName struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
