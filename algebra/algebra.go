package algebra

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when a matrix cannot be inverted.
var ErrSingularMatrix = errors.New("matrix is singular")

// Vector3 is a 3-component column vector.
type Vector3 [3]float64

// Matrix3 is a 3x3 matrix in row-major order.
type Matrix3 [9]float64

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns the matrix product m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3+0]*o[0*3+j] + m[i*3+1]*o[1*3+j] + m[i*3+2]*o[2*3+j]
		}
	}
	return r
}

// MulVec applies the matrix to a column vector.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant.
func (m Matrix3) Det() float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse matrix, or ErrSingularMatrix if the
// determinant is below tolerance.
func (m Matrix3) Inverse() (Matrix3, error) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 {
		return Matrix3{}, ErrSingularMatrix
	}
	invDet := 1.0 / det

	return Matrix3{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (g*b - a*h) * invDet, (a*e - b*d) * invDet,
	}, nil
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix3) ApproxEqual(o Matrix3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// Scale returns m with every element multiplied by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return math.Abs(v[0]-o[0]) <= eps &&
		math.Abs(v[1]-o[1]) <= eps &&
		math.Abs(v[2]-o[2]) <= eps
}
