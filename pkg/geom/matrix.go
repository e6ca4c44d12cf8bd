package geom

import "math"

// Matrix is a 2D affine transform in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping x' = A*x + B*y + C and y' = D*x + E*y + F.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix { return Matrix{A: 1, C: x, E: 1, F: y} }

// Scale returns a scaling matrix.
func Scale(x, y float64) Matrix { return Matrix{A: x, E: y} }

// Rotate returns a rotation by deg degrees. Multiples of 90 are exact so
// quarter-turn compensation never accumulates floating point drift.
func Rotate(deg float64) Matrix {
	var sin, cos float64
	switch math.Mod(math.Mod(deg, 360)+360, 360) {
	case 0:
		sin, cos = 0, 1
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		sin, cos = math.Sincos(deg * math.Pi / 180)
	}
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * o, i.e. o is applied first.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Vec) Vec {
	return Vec{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transform and false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool { return m == Identity() }
