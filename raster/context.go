package raster

import (
	"github.com/gogpu/swraster/buffer"
	"github.com/gogpu/swraster/texture"
)

// Context owns the buffers and bound texture a single Render call
// writes into, replacing the source rasterizer's process-wide bound
// state (spec.md §9 "Process-wide bound state"): vertex/attribute
// sequences are passed directly to Render as a Batch, but the output
// color buffer, depth buffer and texture are long-lived and are held
// here so a caller can reuse one Context across many frames, and so
// multiple Contexts (each owning disjoint buffers) can render
// concurrently without coordination.
type Context struct {
	Color  *buffer.ColorBuffer
	Depth  *buffer.DepthBuffer
	Tex0   *texture.Texture
	Config ParallelConfig

	// yBanded and yBandMin/yBandMax restrict rasterizeTriangle to a
	// horizontal row range, tile-aligned by the caller. Used only by
	// RenderParallel (parallel.go) to partition a frame into disjoint
	// bands across workers; zero value means unrestricted.
	yBanded            bool
	yBandMin, yBandMax int32
}

// band returns a shallow copy of c restricted to rows [yMin, yMax).
func (c *Context) band(yMin, yMax int32) *Context {
	band := *c
	band.yBanded = true
	band.yBandMin = yMin
	band.yBandMax = yMax
	return &band
}

// NewContext creates a rendering context bound to the given output
// buffers and texture. Config is left at its zero value, which
// RenderParallel treats as runtime.NumCPU() workers and a MinHeight of
// TileSize*4; Render itself is always single-threaded.
func NewContext(color *buffer.ColorBuffer, depth *buffer.DepthBuffer, tex0 *texture.Texture) *Context {
	return &Context{Color: color, Depth: depth, Tex0: tex0}
}
