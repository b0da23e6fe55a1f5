package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrMatrixLength is returned when constructing a matrix from a slice that
// does not have exactly nine elements.
var ErrMatrixLength = errors.New("vecmath: matrix requires exactly 9 elements")

// Matrix is an immutable 3x3 matrix, stored row-major. Instances are produced
// by the named constructors or by algebraic combination only.
type Matrix struct {
	mx [9]float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{mx: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// RotateX returns a rotation matrix around the X axis by the given angle,
// in radians. The coordinate-frame rotation convention is used.
func RotateX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{mx: [9]float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}}
}

// RotateY returns a rotation matrix around the Y axis by the given angle,
// in radians.
func RotateY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{mx: [9]float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}}
}

// RotateZ returns a rotation matrix around the Z axis by the given angle,
// in radians.
func RotateZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{mx: [9]float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}}
}

// MatrixFromSlice creates a Matrix from a flat row-major 9-element slice.
func MatrixFromSlice(s []float64) (Matrix, error) {
	if len(s) != 9 {
		return Matrix{}, ErrMatrixLength
	}
	var m Matrix
	copy(m.mx[:], s)
	return m, nil
}

// At returns the element at the given row and column. Row and column must be
// in [0, 2]; anything else is a programming error and panics.
func (m Matrix) At(row, col int) float64 {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("vecmath: matrix index out of range (%d, %d)", row, col))
	}
	return m.mx[row*3+col]
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{mx: [9]float64{
		m.mx[0], m.mx[3], m.mx[6],
		m.mx[1], m.mx[4], m.mx[7],
		m.mx[2], m.mx[5], m.mx[8],
	}}
}

// Negate returns the matrix with all elements negated.
func (m Matrix) Negate() Matrix {
	var out Matrix
	for i, v := range m.mx {
		out.mx[i] = -v
	}
	return out
}

// Add returns the element-wise sum of two matrices.
func (m Matrix) Add(n Matrix) Matrix {
	var out Matrix
	for i := range m.mx {
		out.mx[i] = m.mx[i] + n.mx[i]
	}
	return out
}

// Subtract returns the element-wise difference of two matrices.
func (m Matrix) Subtract(n Matrix) Matrix {
	var out Matrix
	for i := range m.mx {
		out.mx[i] = m.mx[i] - n.mx[i]
	}
	return out
}

// Multiply returns the matrix product m by n.
func (m Matrix) Multiply(n Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.mx[r*3+k] * n.mx[k*3+c]
			}
			out.mx[r*3+c] = sum
		}
	}
	return out
}

// MultiplyScalar returns the matrix scaled by a factor.
func (m Matrix) MultiplyScalar(s float64) Matrix {
	var out Matrix
	for i, v := range m.mx {
		out.mx[i] = v * s
	}
	return out
}

// MultiplyVector applies the matrix to a column vector.
func (m Matrix) MultiplyVector(v Vector) Vector {
	x, y, z := v.X(), v.Y(), v.Z()
	return New(
		m.mx[0]*x + m.mx[1]*y + m.mx[2]*z,
		m.mx[3]*x + m.mx[4]*y + m.mx[5]*z,
		m.mx[6]*x + m.mx[7]*y + m.mx[8]*z,
	)
}

// Equals reports exact element equality.
func (m Matrix) Equals(n Matrix) bool {
	return m.mx == n.mx
}
