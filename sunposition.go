package suncalc

import (
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
)

// SunPosition is the apparent position of the Sun for an observer.
type SunPosition struct {
	Azimuth      float64 // Degrees, north-based, in [0, 360)
	Altitude     float64 // Apparent altitude in degrees, refraction corrected
	TrueAltitude float64 // Geometric altitude in degrees
	Distance     float64 // Sun-Earth distance in kilometers
}

// ComputeSunPosition calculates the Sun position at the given time as seen
// from the observer.
func ComputeSunPosition(t time.Time, obs Observer) (SunPosition, error) {
	if err := obs.Validate(); err != nil {
		return SunPosition{}, err
	}

	jd := astro.NewJulianDate(t)
	pos := astro.SunPositionHorizontal(jd, obs.latRad(), obs.lonRad())

	trueAlt := pos.Theta()
	return SunPosition{
		Azimuth:      azimuthDeg(pos.Phi()),
		Altitude:     deg(trueAlt + astro.ApparentRefraction(trueAlt)),
		TrueAltitude: deg(trueAlt),
		Distance:     pos.R(),
	}, nil
}

// azimuthDeg converts a south-based azimuth in radians to a north-based
// azimuth in degrees within [0, 360).
func azimuthDeg(phi float64) float64 {
	return math.Mod(deg(phi)+180.0, 360.0)
}

// deg converts radians to degrees.
func deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// rad converts degrees to radians.
func rad(d float64) float64 {
	return d * math.Pi / 180.0
}
