package astro

import "math"

// Degree-based trigonometry. Angles cross into radians only at this boundary.

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 { return math.Sin(degToRad(deg)) }

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 { return math.Cos(degToRad(deg)) }

// TanDeg returns the tangent of an angle given in degrees.
func TanDeg(deg float64) float64 { return math.Tan(degToRad(deg)) }

// AcosDeg returns the arc cosine of x in degrees.
func AcosDeg(x float64) float64 { return radToDeg(math.Acos(x)) }

// AcotDeg returns the arc cotangent of x in degrees, in (0, 180).
// AcotDeg(0) is 90.
func AcotDeg(x float64) float64 { return radToDeg(math.Atan2(1, x)) }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
