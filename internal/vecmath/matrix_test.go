package vecmath

import (
	"math"
	"testing"
)

func matricesClose(a, b Matrix, tolerance float64) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(a.At(r, c)-b.At(r, c)) > tolerance {
				return false
			}
		}
	}
	return true
}

func TestIdentityIsMultiplicativeIdentity(t *testing.T) {
	m, err := MatrixFromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("MatrixFromSlice() error: %v", err)
	}

	if got := Identity().Multiply(m); !matricesClose(got, m, 1e-12) {
		t.Errorf("Identity().Multiply(m) != m")
	}
	if got := m.Multiply(Identity()); !matricesClose(got, m, 1e-12) {
		t.Errorf("m.Multiply(Identity()) != m")
	}
}

func TestRotationInverses(t *testing.T) {
	angle := 0.7
	tests := []struct {
		name string
		m    Matrix
	}{
		{"rotateX", RotateX(angle).Multiply(RotateX(-angle))},
		{"rotateY", RotateY(angle).Multiply(RotateY(-angle))},
		{"rotateZ", RotateZ(angle).Multiply(RotateZ(-angle))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !matricesClose(tt.m, Identity(), 1e-12) {
				t.Errorf("rotation times its inverse is not identity")
			}
		})
	}
}

func TestRotateZAppliesToVector(t *testing.T) {
	// Rotating the frame by 90 degrees around Z maps the x axis onto -y.
	v := RotateZ(math.Pi / 2).MultiplyVector(New(1, 0, 0))
	if math.Abs(v.X()) > 1e-12 || math.Abs(v.Y()+1) > 1e-12 || math.Abs(v.Z()) > 1e-12 {
		t.Errorf("rotated vector = (%v, %v, %v), want (0, -1, 0)", v.X(), v.Y(), v.Z())
	}
}

func TestTransposeAndAlgebra(t *testing.T) {
	m, _ := MatrixFromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	mt := m.Transpose()

	if mt.At(0, 1) != 4 || mt.At(1, 0) != 2 || mt.At(2, 0) != 3 {
		t.Errorf("Transpose() wrong layout: %v", mt)
	}

	sum := m.Add(m)
	if sum.At(1, 1) != 10 {
		t.Errorf("Add() At(1,1) = %v, want 10", sum.At(1, 1))
	}
	if diff := m.Subtract(m); diff.At(2, 2) != 0 {
		t.Errorf("Subtract() At(2,2) = %v, want 0", diff.At(2, 2))
	}
	if neg := m.Negate(); neg.At(0, 0) != -1 {
		t.Errorf("Negate() At(0,0) = %v, want -1", neg.At(0, 0))
	}
	if sc := m.MultiplyScalar(3); sc.At(0, 2) != 9 {
		t.Errorf("MultiplyScalar() At(0,2) = %v, want 9", sc.At(0, 2))
	}
}

func TestMatrixFromSliceLength(t *testing.T) {
	if _, err := MatrixFromSlice([]float64{1, 2, 3}); err != ErrMatrixLength {
		t.Errorf("MatrixFromSlice(short) error = %v, want ErrMatrixLength", err)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("At(3, 0) did not panic")
		}
	}()
	Identity().At(3, 0)
}
