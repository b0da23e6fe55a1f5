package suncalc

import (
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
)

// MoonPosition is the apparent position of the Moon for an observer.
type MoonPosition struct {
	Azimuth          float64 // Degrees, north-based, in [0, 360)
	Altitude         float64 // Apparent altitude in degrees, refraction corrected
	TrueAltitude     float64 // Geometric altitude in degrees
	Distance         float64 // Moon-Earth distance in kilometers
	ParallacticAngle float64 // Degrees; orientation of the lunar disk relative to the horizon
}

// ComputeMoonPosition calculates the Moon position at the given time as seen
// from the observer.
func ComputeMoonPosition(t time.Time, obs Observer) (MoonPosition, error) {
	if err := obs.Validate(); err != nil {
		return MoonPosition{}, err
	}

	jd := astro.NewJulianDate(t)
	lat := obs.latRad()

	mc := astro.MoonPosition(jd)
	tau := jd.GreenwichMeanSiderealTime() + obs.lonRad() - mc.Phi()

	pos := astro.EquatorialToHorizontal(tau, mc.Theta(), mc.R(), lat)

	pa := math.Atan2(math.Sin(tau),
		math.Tan(lat)*math.Cos(mc.Theta()) - math.Sin(mc.Theta())*math.Cos(tau))

	trueAlt := pos.Theta()
	return MoonPosition{
		Azimuth:          azimuthDeg(pos.Phi()),
		Altitude:         deg(trueAlt + astro.ApparentRefraction(trueAlt)),
		TrueAltitude:     deg(trueAlt),
		Distance:         mc.R(),
		ParallacticAngle: deg(pa),
	}, nil
}
