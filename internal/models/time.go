// ABOUTME: Timestamp parsing and formatting at minute precision.
// ABOUTME: Records store naive local time as ISO-8601 strings.
package models

import (
	"fmt"
	"time"
)

// TimeLayout is the canonical stored form, e.g. "2026-02-01T13:45".
const TimeLayout = "2006-01-02T15:04"

var timeLayouts = []string{
	TimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseTimestamp parses a user-supplied timestamp in any accepted layout
// and truncates it to minute precision. Layouts without a zone are taken
// as local wall-clock time, matching the time.Now() values they are
// compared against.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}

// FormatTimestamp renders t in the canonical stored form.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}
