package astro

import (
	"fmt"
	"math"
	"time"
)

// JulianDate wraps a zoned timestamp together with its Modified Julian Date.
// Values are immutable; the At* methods return new instances preserving the
// original time zone.
type JulianDate struct {
	t   time.Time
	mjd float64
}

// NewJulianDate creates a JulianDate for the given time.
func NewJulianDate(t time.Time) JulianDate {
	return JulianDate{
		t:   t,
		mjd: float64(t.UnixMilli())/86400000.0 + 40587.0,
	}
}

// Time returns the wrapped timestamp.
func (j JulianDate) Time() time.Time {
	return j.t
}

// AtHour returns a JulianDate offset by the given number of hours.
// Fractions are used for minutes and seconds.
func (j JulianDate) AtHour(hour float64) JulianDate {
	return NewJulianDate(j.t.Add(time.Duration(math.Round(hour*60.0*60.0)) * time.Second))
}

// AtModifiedJulianDate returns a JulianDate of the given Modified Julian
// Date, in the same time zone.
func (j JulianDate) AtModifiedJulianDate(mjd float64) JulianDate {
	millis := int64(math.Round((mjd - 40587.0) * 86400000.0))
	return NewJulianDate(time.UnixMilli(millis).In(j.t.Location()))
}

// AtJulianCentury returns a JulianDate of the given Julian century relative
// to J2000.0, in the same time zone.
func (j JulianDate) AtJulianCentury(jc float64) JulianDate {
	return j.AtModifiedJulianDate(jc*36525.0 + 51544.5)
}

// ModifiedJulianDate returns the Modified Julian Date, UTC based.
func (j JulianDate) ModifiedJulianDate() float64 {
	return j.mjd
}

// JulianCentury returns the Julian centuries since the J2000.0 epoch.
func (j JulianDate) JulianCentury() float64 {
	return (j.mjd - 51544.5) / 36525.0
}

// GreenwichMeanSiderealTime returns the GMST of this date, in radians
// within [0, 2π).
func (j JulianDate) GreenwichMeanSiderealTime() float64 {
	const secs = 86400.0

	mjd0 := math.Floor(j.mjd)
	ut := (j.mjd - mjd0) * secs
	t0 := (mjd0 - 51544.5) / 36525.0
	t := (j.mjd - 51544.5) / 36525.0

	gmst := 24110.54841 +
		8640184.812866*t0 +
		1.0027379093*ut +
		(0.093104-6.2e-6*t)*t*t

	return (Pi2 / secs) * math.Mod(gmst, secs)
}

// TrueAnomaly returns the Earth's true anomaly at this date, in radians.
// A simple day-of-year approximation is used.
func (j JulianDate) TrueAnomaly() float64 {
	return Pi2 * Frac((float64(j.t.YearDay())-5.0)/365.256363)
}

// String formats the Modified Julian Date as days, hours, minutes, seconds.
func (j JulianDate) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds",
		int64(j.mjd),
		int64(math.Mod(j.mjd*24, 24)),
		int64(math.Mod(j.mjd*24*60, 60)),
		int64(math.Mod(j.mjd*24*60*60, 60)))
}
