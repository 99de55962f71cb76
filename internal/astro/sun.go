package astro

import "math"

// SolarPosition holds the two solar quantities prayer times depend on.
type SolarPosition struct {
	Declination    float64 // degrees
	EquationOfTime float64 // minutes
}

// SunDeclination returns the sun's declination in degrees for the given
// Julian Day. It is a three-harmonic series in the day of the tropical
// year, accurate to a few hundredths of a degree.
func SunDeclination(jd float64) float64 {
	t := 2 * math.Pi * (jd - J2000) / 365.25
	x := 57.297 * t
	return 0.37877 +
		23.264*SinDeg(x-79.547) +
		0.3812*SinDeg(2*x-82.682) +
		0.17132*SinDeg(3*x-59.722)
}

// EquationOfTime returns apparent minus mean solar time, in minutes, for
// the given Julian Day.
func EquationOfTime(jd float64) float64 {
	u := (jd - J2000) / 36525
	l0 := 280.46607 + 36000.7698*u

	// Coefficients are in thousandths of a minute.
	et1000 := -(1789+237*u)*SinDeg(l0) -
		(7146-62*u)*CosDeg(l0) +
		(9934-14*u)*SinDeg(2*l0) -
		(29+5*u)*CosDeg(2*l0) +
		(74+10*u)*SinDeg(3*l0) +
		(320-4*u)*CosDeg(3*l0) -
		212*SinDeg(4*l0)

	return et1000 / 1000
}

// Position computes declination and equation of time for jd.
func Position(jd float64) SolarPosition {
	return SolarPosition{
		Declination:    SunDeclination(jd),
		EquationOfTime: EquationOfTime(jd),
	}
}
