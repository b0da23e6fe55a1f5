package suncalc

import (
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
)

// MoonIllumination describes how the moon looks at a given time. It is
// independent of the observer location.
type MoonIllumination struct {
	// Fraction of the lunar disk that is illuminated, in [0, 1].
	Fraction float64

	// Phase angle in degrees, in [-180, 180]. Negative while waxing,
	// positive while waning; 0 is full moon.
	Phase float64

	// Angle of the moon's bright limb in degrees: the midpoint of the
	// illuminated edge measured from the disk's celestial north,
	// eastward. Values below zero mean the waxing side.
	Angle float64
}

// ClosestPhase returns the phase preset best matching this illumination.
func (mi MoonIllumination) ClosestPhase() Phase {
	return ClosestPhase(mi.Phase + 180.0)
}

// ComputeMoonIllumination calculates the illuminated fraction, phase angle
// and bright limb angle of the moon at the given time.
func ComputeMoonIllumination(t time.Time) MoonIllumination {
	jd := astro.NewJulianDate(t)

	s := astro.SunPosition(jd)
	m := astro.MoonPosition(jd)

	phi := math.Pi - math.Acos(m.Dot(s)/(m.R()*s.R()))

	sunMoon := m.Cross(s)

	angle := math.Atan2(
		math.Cos(s.Theta())*math.Sin(s.Phi()-m.Phi()),
		math.Sin(s.Theta())*math.Cos(m.Theta()) -
			math.Cos(s.Theta())*math.Sin(m.Theta())*math.Cos(s.Phi()-m.Phi()))

	return MoonIllumination{
		Fraction: (1.0 + math.Cos(phi)) / 2.0,
		Phase:    deg(phi) * sign(sunMoon.Theta()),
		Angle:    deg(angle),
	}
}

// sign returns -1, 0 or 1 depending on the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0.0:
		return 1.0
	case x < 0.0:
		return -1.0
	default:
		return x
	}
}
