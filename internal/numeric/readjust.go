package numeric

import "math"

// readjustEpsilon is the step size below which further refinement stops.
const readjustEpsilon = 1e-9

// ReadjustMax sharpens an approximate maximum of f found on a coarse grid.
// Starting at x with a sampling frame of deltaT, it repeatedly fits a
// parabola through f(x-dt), f(x), f(x+dt), moves x to the fitted extremum
// and halves the frame, until maxIterations is exhausted or the step becomes
// negligible.
func ReadjustMax(x, deltaT float64, maxIterations int, f func(float64) float64) float64 {
	return readjust(x, deltaT, maxIterations, f)
}

// ReadjustMin sharpens an approximate minimum of f. See ReadjustMax.
func ReadjustMin(x, deltaT float64, maxIterations int, f func(float64) float64) float64 {
	return readjust(x, deltaT, maxIterations, func(t float64) float64 {
		return -f(t)
	})
}

func readjust(x, deltaT float64, maxIterations int, f func(float64) float64) float64 {
	dt := deltaT
	for i := 0; i < maxIterations; i++ {
		q := NewQuadratic(f(x-dt), f(x), f(x+dt))
		if math.IsNaN(q.Xe()) {
			// Degenerate fit: the three samples are collinear.
			break
		}

		// Step toward the extremum, but never past the sampling frame.
		var dx float64
		switch {
		case math.Abs(q.Xe()) <= 1.0:
			dx = q.Xe() * dt
		case q.Xe() > 0.0:
			dx = dt
		default:
			dx = -dt
		}

		x += dx
		if math.Abs(dx) < readjustEpsilon {
			break
		}
		dt *= 0.5
	}
	return x
}
