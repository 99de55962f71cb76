package prayer

import (
	"fmt"
	"math"
	"strings"
)

// minuteEpsilon absorbs float noise so that 5.25 h is 05:15, not 05:16.
const minuteEpsilon = 1e-9

const minutesPerDay = 24 * 60

// ceilMinutes converts decimal hours to whole minutes, rounding up.
func ceilMinutes(h float64) int {
	return int(math.Ceil(h*60 - minuteEpsilon))
}

// ClockMinutes returns minutes after midnight for decimal hours h, with the
// minute rounded up and the result wrapped into [0, 1440).
func ClockMinutes(h float64) int {
	m := ceilMinutes(h) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return m
}

// FormatClock renders decimal hours as a 12-hour "HH:MM AM" string.
// Values outside [0, 24) wrap around midnight; a minute that rounds up to
// 60 carries into the hour.
func FormatClock(h float64) string {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return "--:--"
	}

	m := ClockMinutes(h)
	hour, minute := m/60, m%60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour, minute, period)
}

// ParseClock parses a FormatClock string back into a 24-hour hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	var period string
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d %s", &hour, &minute, &period); err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}

	switch strings.ToUpper(period) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid clock time %q: period must be AM or PM", s)
	}

	return hour, minute, nil
}
