package raster

// Vertex is a single projected vertex's four scalars. Before
// projection x,y,z are clip-space and w is clip-space w; after
// project, x,y are screen-space pixel coordinates, z is depth mapped
// to [0,1], and w is 1/w_clip. prepareAttributes then multiplies z by
// w and replaces z and w with their plane coefficients.
//
// Grounded on the original rasterizer's Vector4f (wc_vertices et al.,
// original_source/demo/rasterizer_new.cpp), restated as a named Go
// struct rather than a generic 4-vector so attribute semantics (which
// field means what, and when) are visible at the type level.
type Vertex struct {
	X, Y, Z, W float32
}

// Batch is a triangle batch: parallel flat sequences indexed in
// groups of three, per spec.md §3. Every non-nil sequence must have
// the same length, a multiple of 3; the k-th triangle occupies
// indices 3k, 3k+1, 3k+2 in each.
type Batch struct {
	Positions []Vertex
	TexCoord0 []Vertex // x,y hold u,v
	TexCoord1 []Vertex
	Normals   []Vertex
	Colors    []Vertex // x,y,z,w hold r,g,b,a
}

// Len returns the number of vertices in the batch (0 if empty).
func (b *Batch) Len() int { return len(b.Positions) }

// AttrFlags selects which optional attribute streams participate in
// coefficient transformation. TexCoord0 is always sampled by the
// rasterizer's texturing step regardless of this mask (it is the
// rasterizer's only sampling path, spec.md §4.4); the other flags
// govern whether their streams are transformed through the
// coefficient matrix at all, since an attribute nobody samples still
// costs three plane-evaluation multiplies per vertex to prepare.
type AttrFlags uint32

const (
	TexCoord0 AttrFlags = 1 << iota
	TexCoord1
	Lighting
	Color
)
