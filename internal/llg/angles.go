package llg

import "math"

// NormalizeAngle wraps x into [0, period). The shift after math.Mod keeps
// negative inputs non-negative.
func NormalizeAngle(x, period float64) float64 {
	a := math.Mod(x, period)
	if a < 0 {
		a += period
	}
	// A tiny negative input can round up to exactly the period.
	if a == period {
		a = 0
	}
	return a
}

// InAziRange reports whether azi lies in the canonical azimuth range [0, 2pi).
func InAziRange(azi float64) bool {
	return azi >= 0 && azi < 2*math.Pi
}

// ValidPolar reports whether pol lies strictly inside (0, pi).
func ValidPolar(pol float64) bool {
	return pol > 0 && pol < math.Pi
}
