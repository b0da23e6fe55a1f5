package numeric

import (
	"errors"
	"math"
)

// Errors returned by Pegasus.
var (
	// ErrNoRoot means the function does not change sign across the given
	// bracket, so no root can be located inside it.
	ErrNoRoot = errors.New("numeric: no root within the given bracket")

	// ErrNoConvergence means the iteration cap was reached before the
	// bracket shrank to the requested accuracy.
	ErrNoConvergence = errors.New("numeric: maximum number of iterations exceeded")
)

// pegasusMaxIterations bounds the refinement loop so an ill-conditioned
// function cannot spin forever.
const pegasusMaxIterations = 30

// Pegasus finds a root of f within [lower, upper] using the Pegasus variant
// of the regula falsi method. The two endpoint values must have opposite
// signs, otherwise ErrNoRoot is returned; an endpoint that already is a root
// is returned as is. Iteration stops once the bracket width is within
// accuracy.
func Pegasus(lower, upper, accuracy float64, f func(float64) float64) (float64, error) {
	x1, x2 := lower, upper
	f1, f2 := f(x1), f(x2)

	// An endpoint may already be the root.
	if f1 == 0.0 {
		return x1, nil
	}
	if f2 == 0.0 {
		return x2, nil
	}
	if f1*f2 > 0.0 {
		return 0, ErrNoRoot
	}

	for i := 0; i < pegasusMaxIterations; i++ {
		x3 := x2 - f2/((f2-f1)/(x2-x1))
		f3 := f(x3)

		if f3*f2 <= 0.0 {
			// Root is between x2 and x3: shift the bracket.
			x1, f1 = x2, f2
		} else {
			// Same side: scale f1 down to keep superlinear convergence.
			f1 = f1 * f2 / (f2 + f3)
		}
		x2, f2 = x3, f3

		if math.Abs(x2-x1) <= accuracy {
			if math.Abs(f1) < math.Abs(f2) {
				return x1, nil
			}
			return x2, nil
		}
	}

	return 0, ErrNoConvergence
}
