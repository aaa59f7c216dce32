package raster

// transformTriple replaces the per-vertex scalar triple (a1,a2,a3)
// with M*(a1,a2,a3)^T, turning a raw per-vertex attribute into the
// plane coefficients (A,B,C) for that attribute's s/w function over
// the triangle (spec.md §4.2).
func transformTriple(m *Mat3, a1, a2, a3 float32) (float32, float32, float32) {
	r := m.MulVec3([3]float32{a1, a2, a3})
	return r[0], r[1], r[2]
}

// transformVertexTriple applies transformTriple independently to each
// of x,y,z,w across the three vertices, used for texcoord/normal/color
// streams where every component is just another scalar channel.
func transformVertexTriple(m *Mat3, v1, v2, v3 *Vertex) {
	v1.X, v2.X, v3.X = transformTriple(m, v1.X, v2.X, v3.X)
	v1.Y, v2.Y, v3.Y = transformTriple(m, v1.Y, v2.Y, v3.Y)
	v1.Z, v2.Z, v3.Z = transformTriple(m, v1.Z, v2.Z, v3.Z)
	v1.W, v2.W, v3.W = transformTriple(m, v1.W, v2.W, v3.W)
}

// prepareAttributes turns three projected, already-coefficient-setup
// vertices into their coefficient-space form in place (spec.md §4.2,
// §4.3 steps 2-3). v1,v2,v3 must already have been projected (x,y in
// screen space, z = depth mapped to [0,1], w = 1/w_clip) before this
// runs.
//
// Step order matters: z must be multiplied by w before transforming
// (affine-interpolation form, §4.3 step 2), and w itself must be
// overwritten to 1.0 on all three vertices before transforming (the
// "all-ones trick", §4.2) so that the transform yields the 1/w plane
// rather than the identity.
func prepareAttributes(m *Mat3, v1, v2, v3 *Vertex, tc0a, tc0b, tc0c *Vertex, tc1a, tc1b, tc1c *Vertex, na, nb, nc *Vertex, ca, cb, cc *Vertex, flags AttrFlags) {
	v1.Z *= v1.W
	v2.Z *= v2.W
	v3.Z *= v3.W
	v1.Z, v2.Z, v3.Z = transformTriple(m, v1.Z, v2.Z, v3.Z)

	v1.W, v2.W, v3.W = 1, 1, 1
	v1.W, v2.W, v3.W = transformTriple(m, v1.W, v2.W, v3.W)

	// TexCoord0 is transformed whenever present regardless of flags:
	// it is the rasterizer's only sampling channel (spec.md §4.4), so
	// an enabled-but-untransformed stream would sample garbage.
	if tc0a != nil {
		transformVertexTriple(m, tc0a, tc0b, tc0c)
	}
	if flags&TexCoord1 != 0 && tc1a != nil {
		transformVertexTriple(m, tc1a, tc1b, tc1c)
	}
	if flags&Lighting != 0 && na != nil {
		transformVertexTriple(m, na, nb, nc)
	}
	if flags&Color != 0 && ca != nil {
		transformVertexTriple(m, ca, cb, cc)
	}
}
