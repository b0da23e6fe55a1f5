package astro

import (
	"math"

	"github.com/litescript/ls-suncalc/internal/vecmath"
)

// moonMeanRadius is the mean radius of the Moon, in kilometers.
const moonMeanRadius = 1737.1

// MoonPositionEquatorial returns the Moon position in the equatorial frame,
// from a truncated series expansion of its ecliptic longitude, latitude and
// distance. The polar form of the result carries longitude, latitude and
// distance in kilometers.
func MoonPositionEquatorial(jd JulianDate) vecmath.Vector {
	t := jd.JulianCentury()

	// Mean elements of the lunar orbit: mean longitude, mean anomaly of
	// the Moon and the Sun, Moon-Sun elongation, argument of latitude.
	l0 := Frac(0.606433 + 1336.855225*t)
	l := Pi2 * Frac(0.374897+1325.552410*t)
	ls := Pi2 * Frac(0.993133+99.997361*t)
	d := Pi2 * Frac(0.827361+1236.853086*t)
	f := Pi2 * Frac(0.259086+1342.227825*t)

	l2 := 2.0 * l
	d2 := 2.0 * d
	f2 := 2.0 * f

	// Perturbations of the ecliptic longitude, in arc seconds.
	dL := 22640.0*math.Sin(l) -
		4586.0*math.Sin(l-d2) +
		2370.0*math.Sin(d2) +
		769.0*math.Sin(l2) -
		668.0*math.Sin(ls) -
		412.0*math.Sin(f2) -
		212.0*math.Sin(l2-d2) -
		206.0*math.Sin(l+ls-d2) +
		192.0*math.Sin(l+d2) -
		165.0*math.Sin(ls-d2) -
		125.0*math.Sin(d) -
		110.0*math.Sin(l+ls) +
		148.0*math.Sin(l-ls) -
		55.0*math.Sin(f2-d2)

	s := f + (dL+412.0*math.Sin(f2)+541.0*math.Sin(ls))/Arcs
	h := f - d2

	n := -526.0*math.Sin(h) +
		44.0*math.Sin(l+h) -
		31.0*math.Sin(-l+h) -
		23.0*math.Sin(ls+h) +
		11.0*math.Sin(-ls+h) -
		25.0*math.Sin(-l2+f) +
		21.0*math.Sin(-l+f)

	// Ecliptic longitude and latitude.
	lMoon := Pi2 * Frac(l0+dL/1296.0e3)
	bMoon := (18520.0*math.Sin(s) + n) / Arcs

	dt := 385000.5584 -
		20905.3550*math.Cos(l) -
		3699.1109*math.Cos(d2-l) -
		2955.9676*math.Cos(d2) -
		569.9251*math.Cos(l2)

	return vecmath.FromPolar(lMoon, bMoon, dt)
}

// MoonPosition returns the geocentric Moon position, rotated from the
// ecliptical into the equatorial frame.
func MoonPosition(jd JulianDate) vecmath.Vector {
	rotate := EquatorialToEcliptical(jd).Transpose()
	return rotate.MultiplyVector(MoonPositionEquatorial(jd))
}

// MoonPositionHorizontal returns the Moon position in the horizontal frame
// of an observer at the given latitude and longitude, in radians.
func MoonPositionHorizontal(jd JulianDate, lat, lng float64) vecmath.Vector {
	pos := MoonPosition(jd)
	tau := jd.GreenwichMeanSiderealTime() + lng - pos.Phi()
	return EquatorialToHorizontal(tau, pos.Theta(), pos.R(), lat)
}

// MoonAngularRadius returns the apparent angular radius of the Moon disc at
// the given distance, in radians.
func MoonAngularRadius(distance float64) float64 {
	return math.Asin(moonMeanRadius / distance)
}
