package suncalc

import (
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
	"github.com/litescript/ls-suncalc/internal/numeric"
)

// MoonTimesConfig configures a moon event search.
type MoonTimesConfig struct {
	// Window bounds the search, starting at the given time. Zero means
	// one full year.
	Window time.Duration
}

// MoonTimes holds the outcome of a moon event search. Event times are nil
// if the event does not occur within the search window.
type MoonTimes struct {
	Rise *time.Time // Moonrise
	Set  *time.Time // Moonset

	AlwaysUp   bool // No set within the window
	AlwaysDown bool // No rise within the window
}

// ComputeMoonTimes searches for the next moonrise and moonset after the
// given time, using the same hourly sampling scheme as ComputeSunTimes. The
// moon always observes the visible upper limb: the altitude is corrected
// for parallax, refraction at the horizon and the lunar disk size.
func ComputeMoonTimes(t time.Time, obs Observer, cfg MoonTimesConfig) (MoonTimes, error) {
	if err := obs.Validate(); err != nil {
		return MoonTimes{}, err
	}
	if cfg.Window < 0 {
		return MoonTimes{}, ErrNegativeWindow
	}

	window := cfg.Window
	if window == 0 {
		window = defaultWindow
	}

	jd := astro.NewJulianDate(t)
	height := func(hour float64) float64 {
		return correctedMoonHeight(jd.AtHour(hour), obs)
	}

	limitHours := window.Hours()
	maxHours := int(math.Ceil(limitHours))

	var rise, set *float64
	var alwaysUp, alwaysDown bool

	hour := 0
	yMinus := height(float64(hour) - 1.0)
	y0 := height(float64(hour))
	yPlus := height(float64(hour) + 1.0)

	if y0 > 0.0 {
		alwaysUp = true
	} else {
		alwaysDown = true
	}

	for hour <= maxHours {
		q := numeric.NewQuadratic(yMinus, y0, yPlus)

		switch q.NumberOfRoots() {
		case 1:
			rt := q.Root1() + float64(hour)
			if yMinus < 0.0 {
				if rise == nil && rt >= 0.0 && rt < limitHours {
					rise = &rt
					alwaysDown = false
				}
			} else {
				if set == nil && rt >= 0.0 && rt < limitHours {
					set = &rt
					alwaysUp = false
				}
			}
		case 2:
			ye := q.Ye()
			if rise == nil {
				rt := float64(hour) + pick(ye < 0.0, q.Root2(), q.Root1())
				if rt >= 0.0 && rt < limitHours {
					rise = &rt
					alwaysDown = false
				}
			}
			if set == nil {
				rt := float64(hour) + pick(ye < 0.0, q.Root1(), q.Root2())
				if rt >= 0.0 && rt < limitHours {
					set = &rt
					alwaysUp = false
				}
			}
		}

		if rise != nil && set != nil {
			break
		}

		hour++
		yMinus = y0
		y0 = yPlus
		yPlus = height(float64(hour) + 1.0)
	}

	return MoonTimes{
		Rise:       eventTime(jd, rise),
		Set:        eventTime(jd, set),
		AlwaysUp:   alwaysUp,
		AlwaysDown: alwaysDown,
	}, nil
}

// correctedMoonHeight returns the apparent altitude of the moon's upper
// limb above the horizon, in radians.
func correctedMoonHeight(jd astro.JulianDate, obs Observer) float64 {
	pos := astro.MoonPositionHorizontal(jd, obs.latRad(), obs.lonRad())
	hc := astro.Parallax(obs.height(), pos.R()) -
		astro.RefractionAtHorizon -
		astro.MoonAngularRadius(pos.R())
	return pos.Theta() - hc
}
