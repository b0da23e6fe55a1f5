// Package suncalc calculates Sun and Moon positions and event times for a
// given place and time: azimuth and altitude, rise and set, solar noon and
// nadir, moon phases and illumination.
//
// All computations are pure functions of their inputs. Results are plain
// immutable values, safe to share between goroutines. The underlying models
// are low-precision series expansions, good to about a minute for rise and
// set times at moderate latitudes.
package suncalc
