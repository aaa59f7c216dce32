package raster

import "github.com/gviegas/scene/linear"

// project computes screen-space x,y and normalized depth from a
// clip-transformed vertex, then overwrites w with 1/w_clip (spec.md
// §4.3 step 1). z is mapped from NDC [-1,1] to [0,1) as the "caller-
// defined mapping" spec.md leaves open; this is the conventional
// OpenGL-style convention and the one the rest of this package's tests
// assume.
func project(v Vertex, width, height int) Vertex {
	invW := 1 / v.W
	ndcX := v.X * invW
	ndcY := v.Y * invW
	ndcZ := v.Z * invW

	return Vertex{
		X: (ndcX + 1) * float32(width) / 2,
		Y: (ndcY + 1) * float32(height) / 2,
		Z: (ndcZ + 1) / 2,
		W: invW,
	}
}

// Render is the core's single entry point (spec.md §6). It consumes
// batch exactly once: every triangle is transformed by mvp, run
// through coefficient setup, projected, and rasterized into ctx's
// buffers using ctx.Tex0 for texturing; rejected triangles write
// nothing. flags selects which optional attribute streams (beyond the
// always-sampled TexCoord0) are transformed and therefore meaningful
// to a caller reading them back — this package's rasterizer itself
// only consumes TexCoord0.
//
// Render never mutates process-wide state (spec.md §9): everything it
// touches is reachable from ctx, mvp and batch, so concurrent Render
// calls against distinct Contexts are safe.
func (c *Context) Render(batch Batch, mvp *linear.M4, flags AttrFlags) {
	n := batch.Len()
	if n%3 != 0 {
		Logger().Warn("raster: batch length not a multiple of 3, processing only complete triangles", "len", n)
		n -= n % 3
	}
	width, height := c.Color.Width(), c.Color.Height()

	for i := 0; i < n; i += 3 {
		p0 := transformMVP(mvp, batch.Positions[i+0])
		p1 := transformMVP(mvp, batch.Positions[i+1])
		p2 := transformMVP(mvp, batch.Positions[i+2])

		m, ok := SetupCoefficients(p0, p1, p2)
		if !ok {
			Logger().Debug("raster: dropped triangle", "reason", "degenerate_or_backface", "index", i/3)
			continue
		}

		p0 = project(p0, width, height)
		p1 = project(p1, width, height)
		p2 = project(p2, width, height)

		tc0a, tc0b, tc0c := attrTriple(batch.TexCoord0, i)
		tc1a, tc1b, tc1c := (*Vertex)(nil), (*Vertex)(nil), (*Vertex)(nil)
		if flags&TexCoord1 != 0 {
			tc1a, tc1b, tc1c = attrTriple(batch.TexCoord1, i)
		}
		na, nb, nc := (*Vertex)(nil), (*Vertex)(nil), (*Vertex)(nil)
		if flags&Lighting != 0 {
			na, nb, nc = attrTriple(batch.Normals, i)
		}
		ca, cb, cc := (*Vertex)(nil), (*Vertex)(nil), (*Vertex)(nil)
		if flags&Color != 0 {
			ca, cb, cc = attrTriple(batch.Colors, i)
		}

		prepareAttributes(&m, &p0, &p1, &p2, tc0a, tc0b, tc0c, tc1a, tc1b, tc1c, na, nb, nc, ca, cb, cc, flags)

		var u0, v0, u1, v1, u2, v2 float32
		if tc0a != nil {
			u0, v0, u1, v1, u2, v2 = tc0a.X, tc0a.Y, tc0b.X, tc0b.Y, tc0c.X, tc0c.Y
		}

		c.rasterizeTriangle(p0, p1, p2, u0, v0, u1, v1, u2, v2)
	}
}

// attrTriple returns pointers to the three vertices of triangle i
// within seq, or three nils if seq is too short to hold them. Kept as
// a small helper rather than inlined four times in Render.
func attrTriple(seq []Vertex, i int) (*Vertex, *Vertex, *Vertex) {
	if len(seq) < i+3 {
		return nil, nil, nil
	}
	return &seq[i+0], &seq[i+1], &seq[i+2]
}
