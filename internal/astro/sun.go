package astro

import (
	"math"

	"github.com/litescript/ls-suncalc/internal/vecmath"
)

const (
	// sunDistance is the mean Sun-Earth distance, in kilometers.
	sunDistance = 149598000.0

	// sunMeanRadius is the mean radius of the Sun, in kilometers.
	sunMeanRadius = 695700.0
)

// SunPositionEquatorial returns the Sun position in the equatorial frame,
// from a low-precision series expansion of its ecliptic longitude. The polar
// form of the result carries longitude, latitude (zero for the Sun) and
// distance.
func SunPositionEquatorial(jd JulianDate) vecmath.Vector {
	t := jd.JulianCentury()

	m := Pi2 * Frac(0.993133+99.997361*t)
	l := Pi2 * Frac(0.7859453+m/Pi2+
		(6893.0*math.Sin(m)+72.0*math.Sin(2.0*m)+6191.2*t)/1296.0e3)

	d := sunDistance * (1 - 0.016718*math.Cos(jd.TrueAnomaly()))

	return vecmath.FromPolar(l, 0.0, d)
}

// SunPosition returns the geocentric Sun position, rotated from the
// ecliptical into the equatorial frame. The transpose runs the obliquity
// rotation in the ecliptic-to-equatorial direction.
func SunPosition(jd JulianDate) vecmath.Vector {
	rotate := EquatorialToEcliptical(jd).Transpose()
	return rotate.MultiplyVector(SunPositionEquatorial(jd))
}

// SunPositionHorizontal returns the Sun position in the horizontal frame of
// an observer at the given latitude and longitude, in radians.
func SunPositionHorizontal(jd JulianDate, lat, lng float64) vecmath.Vector {
	pos := SunPosition(jd)
	tau := jd.GreenwichMeanSiderealTime() + lng - pos.Phi()
	return EquatorialToHorizontal(tau, pos.Theta(), pos.R(), lat)
}

// SunAngularRadius returns the apparent angular radius of the Sun disc at
// the given distance, in radians.
func SunAngularRadius(distance float64) float64 {
	return math.Asin(sunMeanRadius / distance)
}
