package prayer

import (
	"strings"

	"github.com/smokyabdulrahman/prayer-calc/internal/astro"
)

// Location is everything the calculation needs to know about where and when.
// Range checks are the caller's job; only physically undefined inputs
// (negative elevation, polar geometry) are rejected.
type Location struct {
	Latitude     float64 // degrees, north positive
	Longitude    float64 // degrees, east positive
	Elevation    float64 // meters above sea level
	Timezone     float64 // UTC offset in hours
	FajrAngle    float64 // degrees below the horizon
	IshaAngle    float64 // degrees below the horizon
	ShadowFactor float64 // 1 (Shafi) or 2 (Hanafi)
	Date         astro.CivilTime
}

// Event identifies one of the six daily times.
type Event int

const (
	Fajr Event = iota
	Sunrise
	Zuhr
	Asr
	Maghrib
	Isha
)

// Events lists the six times in output order.
var Events = [6]Event{Fajr, Sunrise, Zuhr, Asr, Maghrib, Isha}

// altitudeEvents are the events defined by a sun altitude, in the order
// used by Altitudes and HourAngles. Zuhr is the transit itself.
var altitudeEvents = [5]Event{Fajr, Sunrise, Asr, Maghrib, Isha}

var eventNames = [6]string{"Fajr", "Sunrise", "Zuhr", "Asr", "Maghrib", "Isha"}

func (e Event) String() string {
	if e < Fajr || e > Isha {
		return "Unknown"
	}
	return eventNames[e]
}

// ParseEvent looks up an event by name, ignoring case.
// "Dhuhr" is accepted as an alias for Zuhr.
func ParseEvent(name string) (Event, bool) {
	for _, e := range Events {
		if strings.EqualFold(e.String(), name) {
			return e, true
		}
	}
	if strings.EqualFold(name, "Dhuhr") {
		return Zuhr, true
	}
	return 0, false
}
