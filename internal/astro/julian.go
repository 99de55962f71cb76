// Package astro implements the solar-position astronomy behind prayer time
// calculation: Julian Day conversion, solar declination, the equation of
// time, and degree-based trigonometry helpers.
package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// CivilTime is a Gregorian calendar date-time in some civil timezone.
// Fields are not validated; a month of 13 yields whatever the formula gives.
type CivilTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromTime returns the wall-clock fields of t in its own location.
func FromTime(t time.Time) CivilTime {
	return CivilTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// DayFraction returns the time of day as a fraction of 24 hours.
func (c CivilTime) DayFraction() float64 {
	return (float64(c.Hour) + float64(c.Minute)/60.0 + float64(c.Second)/3600.0) / 24.0
}

// JulianDay converts a civil date-time observed at UTC offset tz (hours)
// to a UTC-referenced Julian Day.
//
// The calendar part is Meeus (7.1): January and February count as months
// 13 and 14 of the previous year before the Gregorian century correction
// is applied.
func JulianDay(c CivilTime, tz float64) float64 {
	jd := julian.CalendarGregorianToJD(c.Year, c.Month, float64(c.Day)+c.DayFraction())
	return jd - tz/24.0
}
