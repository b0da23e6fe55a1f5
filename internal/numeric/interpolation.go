// Package numeric provides the root-finding and interpolation machinery used
// to locate rise, set and culmination events on a coarsely sampled altitude
// curve.
package numeric

import "math"

// Quadratic is a parabola fitted through three samples taken at x = -1, 0, +1.
// It reports the extremum and up to two roots within [-1, 1].
type Quadratic struct {
	xe, ye       float64
	root1, root2 float64
	nRoots       int
	maximum      bool
}

// NewQuadratic fits a parabola y = a*x^2 + b*x + c through the samples
// yMinus, y0, yPlus at x = -1, 0, +1.
func NewQuadratic(yMinus, y0, yPlus float64) Quadratic {
	a := 0.5*(yPlus+yMinus) - y0
	b := 0.5 * (yPlus - yMinus)
	c := y0

	q := Quadratic{
		root1: math.NaN(),
		root2: math.NaN(),
	}

	q.xe = -b / (2.0 * a)
	q.ye = (a*q.xe+b)*q.xe + c
	q.maximum = a < 0.0

	dis := b*b - 4.0*a*c
	if dis >= 0.0 {
		dx := 0.5 * math.Sqrt(dis) / math.Abs(a)
		q.root1 = q.xe - dx
		q.root2 = q.xe + dx

		if math.Abs(q.root1) <= 1.0 {
			q.nRoots++
		}
		if math.Abs(q.root2) <= 1.0 {
			q.nRoots++
		}
		if q.root1 < -1.0 {
			q.root1 = q.root2
		}
	}

	return q
}

// Xe returns the x location of the extremum.
func (q Quadratic) Xe() float64 { return q.xe }

// Ye returns the y value at the extremum.
func (q Quadratic) Ye() float64 { return q.ye }

// Root1 returns the first root within [-1, 1]. If the smaller root lies
// outside the interval, the larger root is reported instead.
func (q Quadratic) Root1() float64 { return q.root1 }

// Root2 returns the second root.
func (q Quadratic) Root2() float64 { return q.root2 }

// NumberOfRoots returns how many roots lie within [-1, 1]: 0, 1 or 2.
func (q Quadratic) NumberOfRoots() int { return q.nRoots }

// IsMaximum reports whether the extremum is a maximum.
func (q Quadratic) IsMaximum() bool { return q.maximum }
