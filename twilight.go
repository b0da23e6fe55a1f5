package suncalc

// Twilight is a named sun-angle threshold defining when rise and set events
// occur.
type Twilight int

const (
	// TwilightVisual is the moment the upper edge of the sun crosses the
	// horizon, corrected for refraction, parallax and the solar disk size.
	// This is the usual definition of sunrise and sunset.
	TwilightVisual Twilight = iota

	// TwilightVisualLower is the moment the lower edge of the sun crosses
	// the horizon, with the same corrections as TwilightVisual.
	TwilightVisualLower

	// TwilightHorizon is the moment the center of the sun crosses the
	// geometric horizon, with no corrections applied.
	TwilightHorizon

	// TwilightCivil is the civil twilight boundary, sun at -6 degrees.
	TwilightCivil

	// TwilightNautical is the nautical twilight boundary, sun at -12 degrees.
	TwilightNautical

	// TwilightAstronomical is the astronomical twilight boundary, sun at
	// -18 degrees.
	TwilightAstronomical

	// TwilightGoldenHour is the end of the golden hour, sun at +6 degrees.
	TwilightGoldenHour

	// TwilightBlueHour is the middle of the blue hour, sun at -4 degrees.
	TwilightBlueHour
)

// twilightAngles maps each preset to its geocentric sun angle in degrees.
var twilightAngles = map[Twilight]float64{
	TwilightVisual:       0.0,
	TwilightVisualLower:  0.0,
	TwilightHorizon:      0.0,
	TwilightCivil:        -6.0,
	TwilightNautical:     -12.0,
	TwilightAstronomical: -18.0,
	TwilightGoldenHour:   6.0,
	TwilightBlueHour:     -4.0,
}

// AngleDeg returns the sun angle of this twilight, in degrees.
func (tw Twilight) AngleDeg() float64 {
	return twilightAngles[tw]
}

// topocentric reports whether this twilight observes the visible disk edge,
// requiring refraction, parallax and angular-radius corrections.
func (tw Twilight) topocentric() bool {
	return tw == TwilightVisual || tw == TwilightVisualLower
}

func (tw Twilight) String() string {
	switch tw {
	case TwilightVisual:
		return "visual"
	case TwilightVisualLower:
		return "visual_lower"
	case TwilightHorizon:
		return "horizon"
	case TwilightCivil:
		return "civil"
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	case TwilightGoldenHour:
		return "golden_hour"
	case TwilightBlueHour:
		return "blue_hour"
	default:
		return "unknown"
	}
}

// ParseTwilight parses a twilight preset name. Unknown names map to
// TwilightVisual.
func ParseTwilight(s string) Twilight {
	switch s {
	case "visual_lower":
		return TwilightVisualLower
	case "horizon":
		return TwilightHorizon
	case "civil":
		return TwilightCivil
	case "nautical":
		return TwilightNautical
	case "astronomical":
		return TwilightAstronomical
	case "golden_hour", "golden":
		return TwilightGoldenHour
	case "blue_hour", "blue":
		return TwilightBlueHour
	default:
		return TwilightVisual
	}
}
