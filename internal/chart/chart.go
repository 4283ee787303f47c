// ABOUTME: Chart model for the temperature dashboard.
// ABOUTME: Pure data assembly; the web page does the actual drawing.
package chart

import (
	"fmt"
	"time"

	"github.com/harperreed/fevertrack/internal/models"
)

// Config controls chart assembly.
type Config struct {
	// CriticalTemp is the threshold that styles a reading as high and
	// draws the horizontal guideline.
	CriticalTemp float64

	// MaxLanes is the number of label lanes for medication markers.
	MaxLanes int

	// LaneWindow is the minimum spacing between two markers sharing a lane.
	LaneWindow time.Duration
}

// DefaultConfig returns the standard chart configuration.
func DefaultConfig() Config {
	return Config{
		CriticalTemp: models.DefaultCriticalTempC,
		MaxLanes:     3,
		LaneWindow:   180 * time.Minute,
	}
}

// Point is one temperature reading on the line.
type Point struct {
	Time         time.Time `json:"time"`
	ValueCelsius float64   `json:"value_celsius"`
	High         bool      `json:"high"`
}

// Tick is a vertical grid line. Major ticks fall on 6-hour boundaries.
type Tick struct {
	Time  time.Time `json:"time"`
	Major bool      `json:"major"`
}

// Marker is a vertical medication event with a stacked label lane.
type Marker struct {
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
	Lane  int       `json:"lane"`
	Ago   string    `json:"ago"`
}

// Chart is the full model consumed by the dashboard page.
type Chart struct {
	Points       []Point  `json:"points"`
	Ticks        []Tick   `json:"ticks"`
	Markers      []Marker `json:"markers"`
	YMin         float64  `json:"y_min"`
	YMax         float64  `json:"y_max"`
	CriticalTemp float64  `json:"critical_temp"`
}

// Build assembles the chart model from non-deleted records sorted by
// timestamp ascending, the order the storage layer lists them in.
func Build(cfg Config, measurements []*models.Measurement, medications []*models.Medication, now time.Time) *Chart {
	c := &Chart{
		YMin:         36.0,
		YMax:         41.0,
		CriticalTemp: cfg.CriticalTemp,
	}

	for _, m := range measurements {
		c.Points = append(c.Points, Point{
			Time:         m.Timestamp,
			ValueCelsius: m.ValueCelsius,
			High:         m.ValueCelsius >= cfg.CriticalTemp,
		})
	}

	c.Ticks = hourlyTicks(measurements, medications)

	lanes := assignLanes(medicationTimes(medications), cfg.LaneWindow, cfg.MaxLanes)
	for i, m := range medications {
		c.Markers = append(c.Markers, Marker{
			Time:  m.Timestamp,
			Label: m.Label(),
			Lane:  lanes[i],
			Ago:   timeAgo(now, m.Timestamp),
		})
	}

	return c
}

// hourlyTicks returns one tick per hour from the hour-floor of the
// earliest entry to the hour-ceiling of the latest, across both logs.
func hourlyTicks(measurements []*models.Measurement, medications []*models.Medication) []Tick {
	var minT, maxT time.Time
	observe := func(t time.Time) {
		if minT.IsZero() || t.Before(minT) {
			minT = t
		}
		if maxT.IsZero() || t.After(maxT) {
			maxT = t
		}
	}
	for _, m := range measurements {
		observe(m.Timestamp)
	}
	for _, m := range medications {
		observe(m.Timestamp)
	}
	if minT.IsZero() {
		return nil
	}

	start := minT.Truncate(time.Hour)
	end := maxT.Truncate(time.Hour)
	if end.Before(maxT) {
		end = end.Add(time.Hour)
	}

	var ticks []Tick
	for cur := start; !cur.After(end); cur = cur.Add(time.Hour) {
		ticks = append(ticks, Tick{Time: cur, Major: cur.Hour()%6 == 0})
	}
	return ticks
}

// assignLanes distributes marker labels across lanes so that labels close
// in time do not overlap. Each marker takes the first lane whose previous
// occupant is at least window older; when every lane is crowded the
// marker falls back to round-robin.
func assignLanes(times []time.Time, window time.Duration, maxLanes int) []int {
	if maxLanes < 1 {
		maxLanes = 1
	}
	laneLast := make([]time.Time, maxLanes)
	lanes := make([]int, len(times))

	for i, t := range times {
		lane := -1
		for li := 0; li < maxLanes; li++ {
			if laneLast[li].IsZero() || t.Sub(laneLast[li]) >= window {
				lane = li
				break
			}
		}
		if lane == -1 {
			lane = i % maxLanes
		}
		laneLast[lane] = t
		lanes[i] = lane
	}
	return lanes
}

func medicationTimes(medications []*models.Medication) []time.Time {
	times := make([]time.Time, len(medications))
	for i, m := range medications {
		times[i] = m.Timestamp
	}
	return times
}

// timeAgo renders the elapsed time since t at minute granularity,
// e.g. "2h05mins ago", "3h ago", "12mins ago", "just now".
func timeAgo(now, t time.Time) string {
	delta := now.Sub(t)
	if delta < 0 {
		return "in future"
	}
	totalMinutes := int(delta.Minutes())
	hrs := totalMinutes / 60
	mins := totalMinutes % 60
	switch {
	case hrs > 0 && mins > 0:
		return fmt.Sprintf("%dh%02dmins ago", hrs, mins)
	case hrs > 0:
		return fmt.Sprintf("%dh ago", hrs)
	case mins > 0:
		return fmt.Sprintf("%dmins ago", mins)
	}
	return "just now"
}
