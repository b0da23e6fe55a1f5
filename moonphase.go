package suncalc

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
	"github.com/litescript/ls-suncalc/internal/numeric"
)

const (
	// phaseStep is the sampling rate of the phase search: one week, in
	// Julian centuries. A lunation is about four weeks, so consecutive
	// samples can never skip a phase.
	phaseStep = 7.0 / 36525.0

	// phaseAccuracy is the Pegasus convergence target: 30 seconds, in
	// Julian centuries.
	phaseAccuracy = (0.5 / 1440.0) / 36525.0

	// sunLightTimeTau is the light travel time from the Sun, about 8.32
	// minutes, in Julian centuries. The Sun is seen where it was that
	// long ago.
	sunLightTimeTau = 8.32 / (1440.0 * 36525.0)

	// superMoonDist and microMoonDist are the distance bounds, in
	// kilometers, for classifying an unusually close or far moon.
	superMoonDist = 360000.0
	microMoonDist = 405000.0
)

// MoonPhaseConfig configures a moon phase search.
type MoonPhaseConfig struct {
	// Phase selects the phase to search for. The zero value is NewMoon.
	Phase Phase

	// AngleDeg, if set, overrides Phase with a custom phase angle in
	// degrees.
	AngleDeg *float64
}

// MoonPhase is the instant the moon reaches a phase, with its distance at
// that moment.
type MoonPhase struct {
	Time     time.Time
	Distance float64 // Moon-Earth distance in kilometers
}

// IsSuperMoon reports whether the moon is unusually close to Earth at this
// phase, closer than 360000 km.
func (p MoonPhase) IsSuperMoon() bool {
	return p.Distance < superMoonDist
}

// IsMicroMoon reports whether the moon is unusually far from Earth at this
// phase, farther than 405000 km.
func (p MoonPhase) IsMicroMoon() bool {
	return p.Distance > microMoonDist
}

// ComputeMoonPhase finds the first time after t the moon reaches the
// configured phase.
//
// The search steps forward a week at a time tracking the signed angular
// difference between the ecliptic longitudes of Moon and Sun, offset by the
// target phase angle. A sign change or a wrap of the difference brackets
// the event, which is then refined with the Pegasus root finder.
func ComputeMoonPhase(t time.Time, cfg MoonPhaseConfig) (MoonPhase, error) {
	jd := astro.NewJulianDate(t)

	target := cfg.Phase.angleRad()
	if cfg.AngleDeg != nil {
		target = rad(*cfg.AngleDeg)
	}

	phaseAt := func(tc float64) float64 {
		return phaseDelta(jd, tc, target)
	}

	t0 := jd.JulianCentury()
	t1 := t0 + phaseStep
	d0 := phaseAt(t0)
	d1 := phaseAt(t1)

	// Advance until the delta changes sign, or wraps around. The wrap
	// shows up as a decrease between consecutive samples.
	for d0*d1 > 0.0 || d1 < d0 {
		t0, d0 = t1, d1
		t1 += phaseStep
		d1 = phaseAt(t1)
	}

	tPhase, err := numeric.Pegasus(t0, t1, phaseAccuracy, phaseAt)
	if err != nil {
		return MoonPhase{}, fmt.Errorf("suncalc: refine moon phase: %w", err)
	}

	tjd := jd.AtJulianCentury(tPhase)
	return MoonPhase{
		Time:     tjd.Time(),
		Distance: astro.MoonPositionEquatorial(tjd).R(),
	}, nil
}

// phaseDelta returns the angular difference between the Moon-Sun elongation
// and the target phase angle at Julian century tc, normalized into (-π, π].
// The Sun position is taken at tc minus its light travel time.
func phaseDelta(jd astro.JulianDate, tc, target float64) float64 {
	sun := astro.SunPositionEquatorial(jd.AtJulianCentury(tc - sunLightTimeTau)).Phi()
	moon := astro.MoonPositionEquatorial(jd.AtJulianCentury(tc)).Phi()

	diff := moon - sun - target
	for diff < 0.0 {
		diff += astro.Pi2
	}
	return math.Mod(diff+math.Pi, astro.Pi2) - math.Pi
}
