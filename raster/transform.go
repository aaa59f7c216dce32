package raster

import "github.com/gviegas/scene/linear"

// MVP is a combined modelview-projection matrix, built by the caller
// (vertex transform matrices are an external collaborator per spec.md
// §1) and passed to Render. It wraps linear.M4 directly so callers can
// build it with that package's own Mul/I/Invert helpers.
type MVP = linear.M4

// transformMVP multiplies v's clip-space position by mvp, matching
// the original rasterizer's SR_Render step "wc_vertices[i] =
// modelviewProjection * wc_vertices[i]" (original_source/demo/rasterizer_new.cpp).
func transformMVP(mvp *linear.M4, v Vertex) Vertex {
	in := linear.V4{v.X, v.Y, v.Z, v.W}
	var out linear.V4
	out.Mul(mvp, &in)
	return Vertex{out[0], out[1], out[2], out[3]}
}
