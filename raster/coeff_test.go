package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identityTriangle is the simplest non-degenerate, front-facing,
// w=1 triangle: s/w = s for any attribute, so its plane coefficients
// should reproduce exactly the per-vertex values fed through
// transformTriple.
func identityTriangle() (Vertex, Vertex, Vertex) {
	return Vertex{X: 0, Y: 0, Z: 0, W: 1},
		Vertex{X: 10, Y: 0, Z: 0, W: 1},
		Vertex{X: 0, Y: 10, Z: 0, W: 1}
}

func TestSetupCoefficientsAcceptsFrontFacing(t *testing.T) {
	v1, v2, v3 := identityTriangle()

	_, ok := SetupCoefficients(v1, v2, v3)

	assert.True(t, ok, "a clockwise-in-screen-space, non-degenerate triangle must be accepted")
}

func TestSetupCoefficientsRejectsBackFacing(t *testing.T) {
	v1, v2, v3 := identityTriangle()
	// Swapping two vertices reverses winding and negates the determinant.
	_, ok := SetupCoefficients(v1, v3, v2)

	assert.False(t, ok, "reversed winding must be rejected as back-facing")
}

func TestSetupCoefficientsRejectsDegenerate(t *testing.T) {
	// Three collinear points: zero area, determinant is exactly zero.
	v1 := Vertex{X: 0, Y: 0, Z: 0, W: 1}
	v2 := Vertex{X: 5, Y: 0, Z: 0, W: 1}
	v3 := Vertex{X: 10, Y: 0, Z: 0, W: 1}

	_, ok := SetupCoefficients(v1, v2, v3)

	assert.False(t, ok, "collinear vertices must be rejected as degenerate")
}

func TestSetupCoefficientsRejectsSubpixel(t *testing.T) {
	// A tiny but non-degenerate triangle whose determinant magnitude
	// falls under the 1/80 reject threshold.
	v1 := Vertex{X: 0, Y: 0, Z: 0, W: 1}
	v2 := Vertex{X: 0.01, Y: 0, Z: 0, W: 1}
	v3 := Vertex{X: 0, Y: 0.01, Z: 0, W: 1}

	_, ok := SetupCoefficients(v1, v2, v3)

	assert.False(t, ok, "subpixel triangles below the determinant threshold must be rejected")
}

func TestCoefficientMatrixReproducesIdentityAttribute(t *testing.T) {
	v1, v2, v3 := identityTriangle()

	m, ok := SetupCoefficients(v1, v2, v3)
	if !ok {
		t.Fatal("expected triangle to be accepted")
	}

	// With w==1 everywhere, M*(a1,a2,a3) evaluated at each vertex's own
	// (x,y) must reproduce that vertex's own attribute value exactly.
	a1, a2, a3 := float32(3), float32(7), float32(-2)
	abc := m.MulVec3([3]float32{a1, a2, a3})
	A, B, C := abc[0], abc[1], abc[2]

	eval := func(v Vertex) float32 { return A*v.X + B*v.Y + C }

	assert.InDelta(t, a1, eval(v1), 1e-3)
	assert.InDelta(t, a2, eval(v2), 1e-3)
	assert.InDelta(t, a3, eval(v3), 1e-3)
}

func TestMat3MulVec3(t *testing.T) {
	m := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	out := m.MulVec3([3]float32{4, 5, 6})

	assert.Equal(t, [3]float32{4, 5, 6}, out)
}
