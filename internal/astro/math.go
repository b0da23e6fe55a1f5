// Package astro provides the spherical-astronomy math: time scales,
// coordinate frame transformations and the low-precision Sun and Moon
// position models.
package astro

import (
	"math"

	"github.com/litescript/ls-suncalc/internal/vecmath"
)

const (
	// Pi2 is a full circle in radians.
	Pi2 = 2.0 * math.Pi

	// Arcs is the number of arc seconds per radian.
	Arcs = 3600.0 * 180.0 / math.Pi

	// EarthMeanRadius is the mean radius of the Earth, in kilometers.
	EarthMeanRadius = 6371.0

	// zeroEpsilon is the magnitude below which a value counts as zero.
	zeroEpsilon = 1e-9
)

// Frac returns the fractional part of x, keeping the sign of x.
// Frac(-0.5) is -0.5, not 0.5.
func Frac(x float64) float64 {
	return math.Mod(x, 1.0)
}

// IsZero reports whether x is negligibly small. NaN and infinities are
// never zero; both +0.0 and -0.0 are.
func IsZero(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return math.Abs(x) < zeroEpsilon
}

// DMS converts degrees, minutes and seconds to decimal degrees. Only the
// sign of the degrees determines the sign of the result; minutes and
// seconds contribute their absolute value. Out-of-range minutes or seconds
// are summed arithmetically rather than rejected.
func DMS(d, m int, s float64) float64 {
	sign := 1.0
	if d < 0 {
		sign = -1.0
	}
	return sign * ((math.Abs(s)/60.0+math.Abs(float64(m)))/60.0 + math.Abs(float64(d)))
}

// ApparentRefraction returns the atmospheric refraction for a true altitude,
// in radians, using the Saemundsson formula.
func ApparentRefraction(h float64) float64 {
	hDeg := h * 180.0 / math.Pi
	refMin := 1.02 / math.Tan((hDeg+10.3/(hDeg+5.11))*math.Pi/180.0)
	return refMin * math.Pi / 10800.0
}

// RefractionAtHorizon is the mean atmospheric refraction at the horizon,
// in radians.
var RefractionAtHorizon = ApparentRefraction(0.0)

// Parallax returns the geocentric-to-topocentric altitude correction for an
// observer at the given height above sea level (meters) watching a body at
// the given distance (kilometers). The dip of the horizon caused by the
// observer height is folded into the result.
func Parallax(height, distance float64) float64 {
	return math.Asin(EarthMeanRadius/distance) -
		math.Acos(EarthMeanRadius/(EarthMeanRadius+height/1000.0))
}

// EquatorialToEcliptical returns the rotation matrix from the equatorial to
// the ecliptical frame at the given date. The obliquity of the ecliptic
// decreases slowly with the Julian century.
func EquatorialToEcliptical(jd JulianDate) vecmath.Matrix {
	t := jd.JulianCentury()
	eps := (23.43929111 - (46.8150+(0.00059-0.001813*t)*t)*t/3600.0) * math.Pi / 180.0
	return vecmath.RotateX(eps)
}

// EquatorialToHorizontal transforms an equatorial position given by hour
// angle tau, declination and distance to the horizontal frame of an observer
// at the given latitude. The polar form of the result holds azimuth
// (south-based), altitude and distance.
func EquatorialToHorizontal(tau, dec, dist, lat float64) vecmath.Vector {
	return vecmath.RotateY(math.Pi/2.0 - lat).
		MultiplyVector(vecmath.FromPolar(tau, dec, dist))
}
