// Package raster implements a fixed-point software triangle rasterizer:
// coefficient-matrix triangle setup followed by block/tile rasterization.
//
// # Algorithm overview
//
// Render transforms each triangle's vertices by a modelview-projection
// matrix, then builds a 3x3 coefficient matrix (coeff.go), the inverse
// of the vertices' (x, y, w) matrix, which turns per-vertex attributes
// into plane equations over screen space -
// evaluating a plane at a pixel gives that attribute's value directly,
// without barycentric weights. The matrix's determinant also gates
// triangle setup: triangles with |det| below a small threshold are
// degenerate and dropped, and triangles with a negative determinant are
// back-facing and dropped (spec.md's only culling path; there is no
// separate cull step).
//
// Screen-space coordinates and edge functions are carried in 28.4
// fixed point (package fixed) so the hot path (block.go) does no
// floating-point work. The rasterizer walks the triangle's bounding box
// one 16x16 tile at a time, classifies each tile as outside, fully
// covered, or partially covered by evaluating the three edge functions
// at the tile's corners, and dispatches fully-covered tiles to an
// unconditional inner loop and partially-covered tiles to one that
// tests every pixel against the edge functions. Reciprocal-w,
// perspective-corrected texture coordinates and depth are all
// interpolated as further coefficient planes, advanced by fixed per-
// pixel and per-row deltas rather than recomputed from scratch.
//
// # Depth testing
//
// The depth buffer holds 16-bit values cleared to 0xFFFF (far). A
// fragment passes when its interpolated depth is strictly less than
// the stored value; on pass, both the depth and color buffers are
// written.
//
// # Texturing
//
// Texture sampling is nearest-neighbor with clamp-to-edge addressing
// (package texture), driven by the TexCoord0 stream, which Render
// always transforms into coefficient space regardless of the
// AttrFlags passed to it - it is the rasterizer's only sampling
// channel.
//
// # Concurrency
//
// Render holds no process-wide state; every buffer and texture it
// touches is reachable from the *Context it is called on, so distinct
// Contexts may render concurrently. Within a single Context, tiles
// partition the output disjointly, which RenderParallel (parallel.go)
// uses to dispatch tile-aligned horizontal bands across a worker pool.
package raster
