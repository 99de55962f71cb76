package prayer

import "time"

// Schedule is the result of one pipeline run, including every
// intermediate value.
type Schedule struct {
	Location Location

	JulianDay      float64
	Declination    float64 // degrees
	EquationOfTime float64 // minutes
	Transit        float64 // decimal hours

	Altitudes  Altitudes
	HourAngles [5]HourAngle
	Times      [6]float64 // decimal hours, Events order
}

// Time returns the decimal-hour time of e.
func (s *Schedule) Time(e Event) float64 {
	return s.Times[e]
}

// Clamped reports whether e was pinned to polar day or night.
func (s *Schedule) Clamped(e Event) bool {
	for _, ha := range s.HourAngles {
		if ha.Event == e {
			return ha.Clamped
		}
	}
	return false
}

// ClampedEvents lists the events that hit the clamp, in Events order.
func (s *Schedule) ClampedEvents() []Event {
	var out []Event
	for _, e := range Events {
		if s.Clamped(e) {
			out = append(out, e)
		}
	}
	return out
}

// Formatted returns the six times as "HH:MM AM/PM" strings.
func (s *Schedule) Formatted() []string {
	out := make([]string, len(s.Times))
	for i, t := range s.Times {
		out[i] = FormatClock(t)
	}
	return out
}

// Prayers anchors the schedule to a calendar day. day supplies the date and
// location; minutes are rounded up the same way FormatClock rounds them, and
// times past midnight land on the following day.
//
// Times are wall-clock minutes after midnight, so a DST change earlier in
// the day does not shift them.
func (s *Schedule) Prayers(day time.Time) []Prayer {
	y, m, d := day.Date()

	prayers := make([]Prayer, 0, len(Events))
	for _, e := range Events {
		prayers = append(prayers, Prayer{
			Name:    e.String(),
			Time:    time.Date(y, m, d, 0, ceilMinutes(s.Time(e)), 0, 0, day.Location()),
			Clamped: s.Clamped(e),
		})
	}
	return prayers
}
