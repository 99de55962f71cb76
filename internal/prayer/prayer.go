// Package prayer computes the six daily prayer times from solar geometry
// and provides helpers for presenting them: next/current lookup, countdown
// formatting and display templates.
package prayer

import (
	"fmt"
	"strings"
	"time"
)

// Prayer is a single computed time anchored to a calendar day.
type Prayer struct {
	Name    string
	Time    time.Time
	Clamped bool // polar day or night; the time is a boundary, not a crossing
}

// DefaultPrayerNames are the prayers tracked by default.
var DefaultPrayerNames = []string{
	"Fajr", "Sunrise", "Zuhr", "Asr", "Maghrib", "Isha",
}

// ShortNames maps full prayer names to single-character abbreviations.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Zuhr":    "Z",
	"Asr":     "A",
	"Maghrib": "M",
	"Isha":    "I",
}

// Select filters prayers to the given names, in the order requested.
// Names are matched case-insensitively; "Dhuhr" selects Zuhr.
func Select(prayers []Prayer, names []string) ([]Prayer, error) {
	byName := make(map[string]Prayer, len(prayers))
	for _, p := range prayers {
		byName[p.Name] = p
	}

	selected := make([]Prayer, 0, len(names))
	for _, name := range names {
		e, ok := ParseEvent(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown prayer name: %s", name)
		}
		p, ok := byName[e.String()]
		if !ok {
			return nil, fmt.Errorf("no time computed for %s", e)
		}
		selected = append(selected, p)
	}

	return selected, nil
}

// SplitNames parses a comma-separated prayer list. An empty string yields
// DefaultPrayerNames.
func SplitNames(list string) []string {
	if strings.TrimSpace(list) == "" {
		return DefaultPrayerNames
	}
	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// NextPrayer finds the next upcoming prayer from the given slice, relative to now.
// If all prayers for today have passed, it returns nil (caller should compute tomorrow's Fajr).
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// CurrentPrayer returns the most recent prayer at or before now, or nil
// if now is before the first one.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var current *Prayer
	for i := range prayers {
		if prayers[i].Time.After(now) {
			break
		}
		current = &prayers[i]
	}
	return current
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
