package prayer

import (
	"math"

	"github.com/smokyabdulrahman/prayer-calc/internal/astro"
)

const (
	// horizonAltitude is the sun's centre altitude at rise and set:
	// 34' of refraction plus a 16' semi-diameter.
	horizonAltitude = -0.8333

	// dipPerSqrtMeter converts sqrt(elevation in m) to horizon dip in degrees.
	dipPerSqrtMeter = 0.0347

	// MaghribMargin is added after sunset, in hours.
	MaghribMargin = 10.0 / 60.0

	// minDenominator bounds |cos φ · cos δ| away from zero.
	minDenominator = 1e-12
)

// Altitudes holds the target sun altitude in degrees for Fajr, Sunrise,
// Asr, Maghrib and Isha, in that order.
type Altitudes [5]float64

// HourAngle is the angular distance of an event from transit.
type HourAngle struct {
	Event   Event
	Degrees float64 // always in [0, 180]

	// Clamped is set when the sun never reaches the target altitude on this
	// day (polar day or night) and Degrees was pinned to 0 or 180.
	Clamped bool
}

// Hours converts the hour angle to hours at 15 degrees per hour.
func (h HourAngle) Hours() float64 {
	return h.Degrees / 15
}

// TransitTime returns local solar noon in decimal hours of the civil
// timezone tz, for longitude lon and equation of time eot (minutes).
func TransitTime(tz, lon, eot float64) float64 {
	return 12 + tz - lon/15 - eot/60
}

// SunAltitudes computes the target altitude for each altitude-defined event.
func SunAltitudes(loc Location, declination float64) (Altitudes, error) {
	if loc.Elevation < 0 {
		return Altitudes{}, &DomainError{Op: "sun altitude", Value: loc.Elevation, Err: ErrNegativeElevation}
	}

	horizon := horizonAltitude - dipPerSqrtMeter*math.Sqrt(loc.Elevation)
	asr := astro.AcotDeg(loc.ShadowFactor + astro.TanDeg(math.Abs(declination-loc.Latitude)))

	return Altitudes{
		-loc.FajrAngle,
		horizon,
		asr,
		horizon,
		-loc.IshaAngle,
	}, nil
}

// HourAngles solves the spherical-astronomy cosine relation for every altitude.
// A cosine outside [-1, 1] is clamped and the result flagged.
func HourAngles(alts Altitudes, latitude, declination float64) ([5]HourAngle, error) {
	var out [5]HourAngle

	denom := astro.CosDeg(latitude) * astro.CosDeg(declination)
	if math.Abs(denom) < minDenominator {
		return out, &DomainError{Op: "hour angle", Value: latitude, Err: ErrDegenerateGeometry}
	}

	sinLatSinDecl := astro.SinDeg(latitude) * astro.SinDeg(declination)
	for i, alt := range alts {
		cosHA := (astro.SinDeg(alt) - sinLatSinDecl) / denom
		clamped := astro.Clamp(cosHA, -1, 1)
		out[i] = HourAngle{
			Event:   altitudeEvents[i],
			Degrees: astro.AcosDeg(clamped),
			Clamped: clamped != cosHA,
		}
	}

	return out, nil
}

// ComposeTimes turns transit and hour angles into six decimal-hour times,
// in Events order. Values may fall outside [0, 24).
func ComposeTimes(transit float64, has [5]HourAngle) [6]float64 {
	return [6]float64{
		transit - has[0].Hours(),
		transit - has[1].Hours(),
		transit,
		transit + has[2].Hours(),
		transit + has[3].Hours() + MaghribMargin,
		transit + has[4].Hours(),
	}
}

// Compute runs the full pipeline for loc.
func Compute(loc Location) (*Schedule, error) {
	jd := astro.JulianDay(loc.Date, loc.Timezone)
	pos := astro.Position(jd)
	transit := TransitTime(loc.Timezone, loc.Longitude, pos.EquationOfTime)

	alts, err := SunAltitudes(loc, pos.Declination)
	if err != nil {
		return nil, err
	}

	has, err := HourAngles(alts, loc.Latitude, pos.Declination)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		Location:       loc,
		JulianDay:      jd,
		Declination:    pos.Declination,
		EquationOfTime: pos.EquationOfTime,
		Transit:        transit,
		Altitudes:      alts,
		HourAngles:     has,
		Times:          ComposeTimes(transit, has),
	}, nil
}

// Times computes the six formatted times for loc, in the order
// Fajr, Sunrise, Zuhr, Asr, Maghrib, Isha.
func Times(loc Location) ([]string, error) {
	s, err := Compute(loc)
	if err != nil {
		return nil, err
	}
	return s.Formatted(), nil
}
