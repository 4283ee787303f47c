// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers entryTimestamp, parseID, parseRecordRef, truncate, and padRight.
package main

import (
	"testing"
	"time"

	"github.com/harperreed/fevertrack/internal/models"
)

func TestEntryTimestamp(t *testing.T) {
	addAt = ""
	got := entryTimestamp()
	if _, err := time.Parse(models.TimeLayout, got); err != nil {
		t.Errorf("default timestamp %q not in expected layout: %v", got, err)
	}

	addAt = "2026-02-10 03:00"
	defer func() { addAt = "" }()
	if got := entryTimestamp(); got != "2026-02-10 03:00" {
		t.Errorf("expected --at value passed through, got %q", got)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseID(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseID(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseRecordRef(t *testing.T) {
	kind, id, err := parseRecordRef("temp", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != models.KindMeasurement || id != 7 {
		t.Errorf("got (%s, %d), want (measurements, 7)", kind, id)
	}

	kind, _, err = parseRecordRef("meds", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != models.KindMedication {
		t.Errorf("expected medications kind, got %s", kind)
	}

	if _, _, err := parseRecordRef("potions", "1"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, _, err := parseRecordRef("temp", "x"); err == nil {
		t.Error("expected error for bad id")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer string", 10, "this is..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}
