// Package vecmath provides the small 3D vector and matrix algebra used by the
// coordinate transformations. All types are immutable values; every operation
// returns a new instance.
package vecmath

import (
	"errors"
	"math"
)

// ErrVectorLength is returned when constructing a vector from a slice that
// does not have exactly three elements.
var ErrVectorLength = errors.New("vecmath: vector requires exactly 3 elements")

// Vector is an immutable 3D point. Alongside the Cartesian components it
// carries its spherical (polar) form, computed once at construction:
//   - phi: azimuthal angle in [0, 2π)
//   - theta: polar angle in [-π/2, π/2]
//   - r: radial distance, >= 0
type Vector struct {
	x, y, z       float64
	phi, theta, r float64
}

// New creates a Vector from Cartesian coordinates.
func New(x, y, z float64) Vector {
	v := Vector{x: x, y: y, z: z}
	v.phi, v.theta, v.r = toPolar(x, y, z)
	return v
}

// FromPolar creates a Vector from spherical coordinates. The polar form is
// stored as given, avoiding a degenerate atan2 round trip at the origin.
func FromPolar(phi, theta, r float64) Vector {
	cosTheta := math.Cos(theta)
	return Vector{
		x:     r * math.Cos(phi) * cosTheta,
		y:     r * math.Sin(phi) * cosTheta,
		z:     r * math.Sin(theta),
		phi:   phi,
		theta: theta,
		r:     r,
	}
}

// FromSlice creates a Vector from a 3-element slice.
func FromSlice(s []float64) (Vector, error) {
	if len(s) != 3 {
		return Vector{}, ErrVectorLength
	}
	return New(s[0], s[1], s[2]), nil
}

// toPolar derives the spherical form of a Cartesian point. The zero vector
// maps to phi = theta = 0.
func toPolar(x, y, z float64) (phi, theta, r float64) {
	rho := x*x + y*y

	if x == 0.0 && y == 0.0 {
		phi = 0.0
	} else {
		phi = math.Atan2(y, x)
	}
	if phi < 0.0 {
		phi += 2.0 * math.Pi
	}

	if z == 0.0 && rho == 0.0 {
		theta = 0.0
	} else {
		theta = math.Atan2(z, math.Sqrt(rho))
	}

	r = math.Sqrt(rho + z*z)
	return phi, theta, r
}

// X returns the Cartesian x component.
func (v Vector) X() float64 { return v.x }

// Y returns the Cartesian y component.
func (v Vector) Y() float64 { return v.y }

// Z returns the Cartesian z component.
func (v Vector) Z() float64 { return v.z }

// Phi returns the azimuthal angle in [0, 2π).
func (v Vector) Phi() float64 { return v.phi }

// Theta returns the polar angle in [-π/2, π/2].
func (v Vector) Theta() float64 { return v.theta }

// R returns the radial distance.
func (v Vector) R() float64 { return v.r }

// Add returns the sum of two vectors.
func (v Vector) Add(u Vector) Vector {
	return New(v.x + u.x, v.y + u.y, v.z + u.z)
}

// Subtract returns the difference of two vectors.
func (v Vector) Subtract(u Vector) Vector {
	return New(v.x - u.x, v.y - u.y, v.z - u.z)
}

// Multiply returns the vector scaled by a factor.
func (v Vector) Multiply(s float64) Vector {
	return New(v.x*s, v.y*s, v.z*s)
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return New(-v.x, -v.y, -v.z)
}

// Dot returns the scalar product of two vectors.
func (v Vector) Dot(u Vector) float64 {
	return v.x*u.x + v.y*u.y + v.z*u.z
}

// Cross returns the vector product of two vectors.
func (v Vector) Cross(u Vector) Vector {
	return New(
		v.y*u.z - v.z*u.y,
		v.z*u.x - v.x*u.z,
		v.x*u.y - v.y*u.x,
	)
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return v.r
}

// Equals reports exact component equality.
func (v Vector) Equals(u Vector) bool {
	return v.x == u.x && v.y == u.y && v.z == u.z
}
