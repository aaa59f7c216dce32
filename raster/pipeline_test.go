package raster

import (
	"testing"

	"github.com/gogpu/swraster/buffer"
	"github.com/gogpu/swraster/texture"
	"github.com/gviegas/scene/linear"
	"github.com/stretchr/testify/assert"
)

func identityMVP() linear.M4 {
	var m linear.M4
	m.I()
	return m
}

func checkerTexture() *texture.Texture {
	tex := texture.New(2, 2)
	tex.Texels[0] = 0xFFFFFFFF // (0,0) white
	tex.Texels[1] = 0xFF000000 // (1,0) black
	tex.Texels[2] = 0xFF000000 // (0,1) black
	tex.Texels[3] = 0xFFFFFFFF // (1,1) white
	return tex
}

func TestProjectMapsNDCToScreenCorners(t *testing.T) {
	v := project(Vertex{X: -1, Y: -1, Z: -1, W: 1}, 200, 100)
	assert.InDelta(t, float32(0), v.X, 1e-4)
	assert.InDelta(t, float32(0), v.Y, 1e-4)
	assert.InDelta(t, float32(0), v.Z, 1e-4)
	assert.InDelta(t, float32(1), v.W, 1e-4)

	v = project(Vertex{X: 1, Y: 1, Z: 1, W: 1}, 200, 100)
	assert.InDelta(t, float32(200), v.X, 1e-3)
	assert.InDelta(t, float32(100), v.Y, 1e-3)
	assert.InDelta(t, float32(1), v.Z, 1e-4)
}

func TestProjectDividesByClipW(t *testing.T) {
	// A vertex behind a w=2 perspective divide should land at NDC
	// (0.5,0.5) rather than (1,1).
	v := project(Vertex{X: 1, Y: 1, Z: 1, W: 2}, 200, 100)
	assert.InDelta(t, float32(150), v.X, 1e-3)
	assert.InDelta(t, float32(75), v.Y, 1e-3)
	assert.InDelta(t, float32(0.5), v.W, 1e-4)
}

func TestRenderDrawsFrontFacingTriangle(t *testing.T) {
	color := buffer.NewColorBuffer(64, 64)
	depth := buffer.NewDepthBuffer(64, 64)
	ctx := NewContext(color, depth, checkerTexture())

	batch := Batch{
		Positions: []Vertex{
			{X: -1, Y: -1, Z: 0, W: 1},
			{X: 1, Y: -1, Z: 0, W: 1},
			{X: -1, Y: 1, Z: 0, W: 1},
		},
		TexCoord0: []Vertex{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 0, Y: 1},
		},
	}

	mvp := identityMVP()
	ctx.Render(batch, &mvp, TexCoord0)

	drawn := 0
	for _, px := range color.Data() {
		if px != 0 {
			drawn++
		}
	}
	assert.Greater(t, drawn, 0, "a front-facing on-screen triangle must draw pixels")
}

func TestRenderDropsBackFacingTriangle(t *testing.T) {
	color := buffer.NewColorBuffer(64, 64)
	depth := buffer.NewDepthBuffer(64, 64)
	ctx := NewContext(color, depth, checkerTexture())

	// Reversed winding relative to TestRenderDrawsFrontFacingTriangle.
	batch := Batch{
		Positions: []Vertex{
			{X: -1, Y: -1, Z: 0, W: 1},
			{X: -1, Y: 1, Z: 0, W: 1},
			{X: 1, Y: -1, Z: 0, W: 1},
		},
		TexCoord0: []Vertex{
			{X: 0, Y: 0},
			{X: 0, Y: 1},
			{X: 1, Y: 0},
		},
	}

	mvp := identityMVP()
	ctx.Render(batch, &mvp, TexCoord0)

	for _, px := range color.Data() {
		assert.Equal(t, uint32(0), px, "a back-facing triangle must be dropped entirely")
	}
}

func TestRenderDropsDegenerateTriangle(t *testing.T) {
	color := buffer.NewColorBuffer(32, 32)
	depth := buffer.NewDepthBuffer(32, 32)
	ctx := NewContext(color, depth, checkerTexture())

	batch := Batch{
		Positions: []Vertex{
			{X: -1, Y: 0, Z: 0, W: 1},
			{X: 0, Y: 0, Z: 0, W: 1},
			{X: 1, Y: 0, Z: 0, W: 1},
		},
		TexCoord0: []Vertex{
			{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1, Y: 0},
		},
	}

	mvp := identityMVP()
	ctx.Render(batch, &mvp, TexCoord0)

	for _, px := range color.Data() {
		assert.Equal(t, uint32(0), px, "a collinear (degenerate) triangle must draw nothing")
	}
}

func TestRenderIgnoresTrailingIncompleteTriangle(t *testing.T) {
	color := buffer.NewColorBuffer(64, 64)
	depth := buffer.NewDepthBuffer(64, 64)
	ctx := NewContext(color, depth, checkerTexture())

	batch := Batch{
		Positions: []Vertex{
			{X: -1, Y: -1, Z: 0, W: 1},
			{X: 1, Y: -1, Z: 0, W: 1},
			{X: -1, Y: 1, Z: 0, W: 1},
			// Dangling extra vertex, not a full triangle.
			{X: 0, Y: 0, Z: 0, W: 1},
		},
		TexCoord0: []Vertex{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0},
		},
	}

	mvp := identityMVP()
	assert.NotPanics(t, func() { ctx.Render(batch, &mvp, TexCoord0) })
}

func TestAttrTripleTooShortReturnsNils(t *testing.T) {
	seq := []Vertex{{X: 1}}
	a, b, c := attrTriple(seq, 0)
	assert.Nil(t, a)
	assert.Nil(t, b)
	assert.Nil(t, c)
}

func TestAttrTripleReturnsPointersIntoSlice(t *testing.T) {
	seq := []Vertex{{X: 1}, {X: 2}, {X: 3}}
	a, b, c := attrTriple(seq, 0)
	assert.Equal(t, &seq[0], a)
	assert.Equal(t, &seq[1], b)
	assert.Equal(t, &seq[2], c)
}
