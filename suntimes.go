package suncalc

import (
	"math"
	"time"

	"github.com/litescript/ls-suncalc/internal/astro"
	"github.com/litescript/ls-suncalc/internal/numeric"
)

// defaultWindow is the search window used when none is configured. A full
// year guarantees rise and set are found even in polar regions.
const defaultWindow = 365 * 24 * time.Hour

// SunTimesConfig configures a sun event search.
type SunTimesConfig struct {
	// Twilight selects the sun angle defining rise and set. The zero
	// value is TwilightVisual, the common sunrise/sunset definition.
	Twilight Twilight

	// AngleDeg, if set, overrides Twilight with a custom geocentric sun
	// angle in degrees.
	AngleDeg *float64

	// Window bounds the search, starting at the given time. Zero means
	// one full year.
	Window time.Duration
}

// SunTimes holds the outcome of a sun event search. Event times are nil if
// the event does not occur within the search window.
type SunTimes struct {
	Rise  *time.Time // Sun crosses the threshold upward
	Set   *time.Time // Sun crosses the threshold downward
	Noon  *time.Time // Sun at its highest, may still be below the horizon
	Nadir *time.Time // Sun at its lowest

	AlwaysUp   bool // No set within the window, sun stays above the threshold
	AlwaysDown bool // No rise within the window, sun stays below the threshold
}

// ComputeSunTimes searches for the next sunrise, sunset, solar noon and
// nadir after the given time.
//
// The search samples the corrected sun altitude hour by hour and fits a
// parabola through each consecutive sample triple. Roots of the parabola are
// rise and set candidates; its extremum tracks noon and nadir, which are
// then sharpened to sub-second precision.
func ComputeSunTimes(t time.Time, obs Observer, cfg SunTimesConfig) (SunTimes, error) {
	if err := obs.Validate(); err != nil {
		return SunTimes{}, err
	}
	if cfg.Window < 0 {
		return SunTimes{}, ErrNegativeWindow
	}

	window := cfg.Window
	if window == 0 {
		window = defaultWindow
	}

	jd := astro.NewJulianDate(t)
	height := func(hour float64) float64 {
		return correctedSunHeight(jd.AtHour(hour), obs, cfg)
	}

	limitHours := window.Hours()
	maxHours := int(math.Ceil(limitHours))

	var rise, set, noon, nadir *float64
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
		ye := q.Ye()

		switch q.NumberOfRoots() {
		case 1:
			rt := q.Root1() + float64(hour)
			if yMinus < 0.0 {
				// Crossing upward.
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
			// Both events inside one hour. The sign of the extremum
			// decides which root is the rise and which the set.
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

		if math.Abs(q.Xe()) <= 1.0 {
			xeHour := q.Xe() + float64(hour)
			if xeHour >= 0.0 {
				if q.IsMaximum() {
					if noon == nil {
						noon = &xeHour
					}
				} else if nadir == nil {
					nadir = &xeHour
				}
			}
		}

		if rise != nil && set != nil && noon != nil && nadir != nil {
			break
		}

		hour++
		yMinus = y0
		y0 = yPlus
		yPlus = height(float64(hour) + 1.0)
	}

	if noon != nil {
		refined := numeric.ReadjustMax(*noon, 2.0, 14, height)
		if refined < 0.0 || refined >= limitHours {
			noon = nil
		} else {
			noon = &refined
		}
	}
	if nadir != nil {
		refined := numeric.ReadjustMin(*nadir, 2.0, 14, height)
		if refined < 0.0 || refined >= limitHours {
			nadir = nil
		} else {
			nadir = &refined
		}
	}

	return SunTimes{
		Rise:       eventTime(jd, rise),
		Set:        eventTime(jd, set),
		Noon:       eventTime(jd, noon),
		Nadir:      eventTime(jd, nadir),
		AlwaysUp:   alwaysUp,
		AlwaysDown: alwaysDown,
	}, nil
}

// correctedSunHeight returns the sun altitude above the configured event
// threshold, in radians. For the visual twilights the threshold is shifted
// by parallax, refraction and the angular radius of the solar disk.
func correctedSunHeight(jd astro.JulianDate, obs Observer, cfg SunTimesConfig) float64 {
	pos := astro.SunPositionHorizontal(jd, obs.latRad(), obs.lonRad())

	var hc float64
	if cfg.AngleDeg != nil {
		hc = rad(*cfg.AngleDeg)
	} else {
		hc = rad(cfg.Twilight.AngleDeg())
		if cfg.Twilight.topocentric() {
			hc += astro.Parallax(obs.height(), pos.R())
			hc -= astro.ApparentRefraction(hc)
			if cfg.Twilight == TwilightVisualLower {
				hc += astro.SunAngularRadius(pos.R())
			} else {
				hc -= astro.SunAngularRadius(pos.R())
			}
		}
	}

	return pos.Theta() - hc
}

// eventTime converts an hour offset into an absolute timestamp, preserving
// the zone of the search start.
func eventTime(jd astro.JulianDate, hour *float64) *time.Time {
	if hour == nil {
		return nil
	}
	t := jd.AtHour(*hour).Time()
	return &t
}

// pick returns a if cond is true, else b.
func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
