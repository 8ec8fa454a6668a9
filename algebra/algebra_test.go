package algebra

import (
	"errors"
	"math"
	"testing"
)

func TestInverseRoundTrip(t *testing.T) {
	// sRGB to XYZ matrix, a well-conditioned real-world case.
	m := Matrix3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	prod := inv.Mul(m)
	if !prod.ApproxEqual(Identity(), 1e-10) {
		t.Errorf("inv * m not identity: %v", prod)
	}

	prod = m.Mul(inv)
	if !prod.ApproxEqual(Identity(), 1e-10) {
		t.Errorf("m * inv not identity: %v", prod)
	}
}

func TestInverseSingular(t *testing.T) {
	// Two identical rows.
	m := Matrix3{
		1, 2, 3,
		1, 2, 3,
		4, 5, 6,
	}
	_, err := m.Inverse()
	if !errors.Is(err, ErrSingularMatrix) {
		t.Fatalf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestMulVec(t *testing.T) {
	m := Matrix3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	v := Vector3{1, 0, -1}
	got := m.MulVec(v)
	want := Vector3{-2, -2, -2}
	if got != want {
		t.Errorf("MulVec = %v, want %v", got, want)
	}
}

func TestIdentityMul(t *testing.T) {
	m := Matrix3{
		0.5, 0.1, 0.2,
		0.3, 0.9, 0.4,
		0.7, 0.6, 0.8,
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestTransposeDet(t *testing.T) {
	m := Matrix3{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	}
	if det := m.Det(); math.Abs(det-24) > 1e-12 {
		t.Errorf("Det = %v, want 24", det)
	}
	if tr := m.Transpose(); tr != m {
		t.Errorf("Transpose of diagonal changed: %v", tr)
	}

	n := Matrix3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	if got := n.Transpose().Transpose(); got != n {
		t.Errorf("double transpose = %v, want %v", got, n)
	}
}
