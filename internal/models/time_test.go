// ABOUTME: Tests for timestamp parsing and formatting.
// ABOUTME: Covers accepted layouts, minute truncation, and rejections.
package models

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: "2026-02-01T13:45", wantErr: false},
		{name: "date and time with space", input: "2026-02-01 13:45", wantErr: false},
		{name: "with seconds", input: "2026-02-01 13:45:59", wantErr: false},
		{name: "date only", input: "2026-02-01", wantErr: false},
		{name: "RFC3339", input: "2026-02-01T00:00:00Z", wantErr: false},
		{name: "day first", input: "01-02-2026", wantErr: true},
		{name: "random string", input: "n/a", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseTimestampTruncatesToMinute(t *testing.T) {
	got, err := ParseTimestamp("2026-02-01 13:45:59")
	if err != nil {
		t.Fatalf("ParseTimestamp failed: %v", err)
	}
	if FormatTimestamp(got) != "2026-02-01T13:45" {
		t.Errorf("expected minute precision, got %s", FormatTimestamp(got))
	}
	if got.Second() != 0 {
		t.Errorf("expected zero seconds, got %d", got.Second())
	}
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	want := time.Date(2026, 2, 1, 8, 30, 0, 0, time.Local)
	got, err := ParseTimestamp(FormatTimestamp(want))
	if err != nil {
		t.Fatalf("ParseTimestamp failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch: got %v, want %v", got, want)
	}
}

func TestParseTimestampUsesLocalZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	orig := time.Local
	time.Local = tokyo
	t.Cleanup(func() { time.Local = orig })

	got, err := ParseTimestamp("2026-02-01T13:45")
	if err != nil {
		t.Fatalf("ParseTimestamp failed: %v", err)
	}
	want := time.Date(2026, 2, 1, 13, 45, 0, 0, tokyo)
	if !got.Equal(want) {
		t.Errorf("expected wall-clock time in the local zone: got %v, want %v", got, want)
	}
	if got.Location() != tokyo {
		t.Errorf("expected local location, got %v", got.Location())
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"temp", "temps", "measurement", "measurements"} {
		k, ok := ParseKind(s)
		if !ok || k != KindMeasurement {
			t.Errorf("ParseKind(%q) = %v, %v; want measurements", s, k, ok)
		}
	}
	for _, s := range []string{"med", "meds", "medication", "medications"} {
		k, ok := ParseKind(s)
		if !ok || k != KindMedication {
			t.Errorf("ParseKind(%q) = %v, %v; want medications", s, k, ok)
		}
	}
	if _, ok := ParseKind("potions"); ok {
		t.Error("ParseKind accepted unknown kind")
	}
	if Kind("potions").Valid() {
		t.Error("Valid accepted unknown kind")
	}
}
