// ABOUTME: Kind identifies which record log an operation targets.
// ABOUTME: Used by soft delete, undo, and export, which work across both tables.
package models

// Kind names one of the two record logs.
type Kind string

const (
	KindMeasurement Kind = "measurements"
	KindMedication  Kind = "medications"
)

// AllKinds returns both record kinds.
var AllKinds = []Kind{KindMeasurement, KindMedication}

// Valid reports whether k names a known record log.
func (k Kind) Valid() bool {
	return k == KindMeasurement || k == KindMedication
}

// ParseKind resolves user-facing spellings ("temp", "med", ...) to a Kind.
// Returns false when the string matches neither log.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "measurements", "measurement", "temps", "temp", "t":
		return KindMeasurement, true
	case "medications", "medication", "meds", "med", "m":
		return KindMedication, true
	}
	return "", false
}
