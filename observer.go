package suncalc

import (
	"errors"
	"math"
)

// Validation errors for observer coordinates and configuration.
var (
	ErrLatitudeRange  = errors.New("suncalc: latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("suncalc: longitude out of range [-180, 180]")
	ErrNegativeWindow = errors.New("suncalc: search window must not be negative")
)

// Observer is a ground-based observer location.
type Observer struct {
	LatDeg  float64 // Latitude in degrees, north positive
	LonDeg  float64 // Longitude in degrees, east positive
	HeightM float64 // Height above sea level in meters
}

// Validate checks the observer coordinates. A negative height is not an
// error; it is treated as sea level.
func (o Observer) Validate() error {
	if o.LatDeg < -90.0 || o.LatDeg > 90.0 || math.IsNaN(o.LatDeg) {
		return ErrLatitudeRange
	}
	if o.LonDeg < -180.0 || o.LonDeg > 180.0 || math.IsNaN(o.LonDeg) {
		return ErrLongitudeRange
	}
	return nil
}

// latRad returns the latitude in radians.
func (o Observer) latRad() float64 {
	return o.LatDeg * math.Pi / 180.0
}

// lonRad returns the longitude in radians.
func (o Observer) lonRad() float64 {
	return o.LonDeg * math.Pi / 180.0
}

// height returns the observer height in meters, clamped to sea level.
func (o Observer) height() float64 {
	if o.HeightM < 0.0 {
		return 0.0
	}
	return o.HeightM
}
