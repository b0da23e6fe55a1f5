package suncalc

import "math"

// Phase is a named moon phase, expressed as the angular difference between
// the ecliptic longitudes of Moon and Sun.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// AngleDeg returns the phase angle, in degrees within [0, 360).
func (p Phase) AngleDeg() float64 {
	return float64(p) * 45.0
}

// angleRad returns the phase angle in radians.
func (p Phase) angleRad() float64 {
	return rad(p.AngleDeg())
}

func (p Phase) String() string {
	switch p {
	case NewMoon:
		return "new moon"
	case WaxingCrescent:
		return "waxing crescent"
	case FirstQuarter:
		return "first quarter"
	case WaxingGibbous:
		return "waxing gibbous"
	case FullMoon:
		return "full moon"
	case WaningGibbous:
		return "waning gibbous"
	case LastQuarter:
		return "last quarter"
	case WaningCrescent:
		return "waning crescent"
	default:
		return "unknown"
	}
}

// ClosestPhase returns the phase preset closest to the given phase angle,
// using 22.5 degree half-width bins around each preset.
func ClosestPhase(angleDeg float64) Phase {
	normalized := math.Mod(math.Mod(angleDeg, 360.0)+360.0, 360.0)
	bin := int(math.Round(normalized/45.0)) % 8
	return Phase(bin)
}
