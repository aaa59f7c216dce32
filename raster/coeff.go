package raster

import "math"

// rejectDet is the minimum acceptable |determinant| of the source
// matrix (spec.md §4.1: "|det| < 1/80"). Below this the triangle is
// degenerate or subpixel and inverting it would blow up numerically.
const rejectDet = 1.0 / 80.0

// Mat3 is a column-major 3x3 matrix, used only for the coefficient
// matrix this package computes: it needs a reject gate (degenerate
// and back-face detection by determinant sign and magnitude) that a
// generic linear-algebra library's plain Invert does not expose, so it
// is hand-rolled here rather than built on github.com/gviegas/scene/linear
// (which raster.transformMVP uses for the generic 4x4 MVP multiply).
//
// Grounded directly on the original rasterizer's Matrix3f handling in
// ComputeCoeffMatrix (original_source/demo/rasterizer_new.cpp).
type Mat3 [3][3]float32

// MulVec3 returns m * v, where v is a column vector.
func (m *Mat3) MulVec3(v [3]float32) [3]float32 {
	return [3]float32{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// SetupCoefficients computes the coefficient matrix M for three
// projected vertices (spec.md §4.1). M is the inverse of the source
// matrix whose rows are each vertex's (x, y, w) triple; for any
// per-vertex scalar triple s, M*s yields the plane coefficients
// (A,B,C) such that s/w = A*x + B*y + C for (x,y) in NDC.
//
// Returns ok=false, leaving m unspecified, when the triangle is
// degenerate/subpixel (|det| < 1/80) or back-facing (det < 0); callers
// must drop the triangle entirely in that case (spec.md §4.5).
func SetupCoefficients(v1, v2, v3 Vertex) (m Mat3, ok bool) {
	// Source matrix S, row i = vertex i's (x, y, w).
	s := [3][3]float32{
		{v1.X, v1.Y, v1.W},
		{v2.X, v2.Y, v2.W},
		{v3.X, v3.Y, v3.W},
	}

	det := s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])

	if float32(math.Abs(float64(det))) < rejectDet {
		return m, false
	}
	if det < 0 {
		return m, false
	}

	// Cofactors of S.
	c00 := +(s[1][1]*s[2][2] - s[1][2]*s[2][1])
	c01 := -(s[1][0]*s[2][2] - s[1][2]*s[2][0])
	c02 := +(s[1][0]*s[2][1] - s[1][1]*s[2][0])

	c10 := -(s[0][1]*s[2][2] - s[0][2]*s[2][1])
	c11 := +(s[0][0]*s[2][2] - s[0][2]*s[2][0])
	c12 := -(s[0][0]*s[2][1] - s[0][1]*s[2][0])

	c20 := +(s[0][1]*s[1][2] - s[0][2]*s[1][1])
	c21 := -(s[0][0]*s[1][2] - s[0][2]*s[1][0])
	c22 := +(s[0][0]*s[1][1] - s[0][1]*s[1][0])

	// Adjoint (transpose of the cofactor matrix), scaled by 1/det.
	invDet := 1.0 / det
	m = Mat3{
		{c00 * invDet, c10 * invDet, c20 * invDet},
		{c01 * invDet, c11 * invDet, c21 * invDet},
		{c02 * invDet, c12 * invDet, c22 * invDet},
	}
	return m, true
}
