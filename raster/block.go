package raster

import "github.com/gogpu/swraster/fixed"

// TileShift and TileSize are the rasterizer's tile granularity
// (spec.md §4.4 "Tile size. Q = 4, q = 16 pixels"). This is NOT the
// teacher's own TileSize=8 from its float-based rasterizer; it is the
// value this fixed-point algorithm was designed around and is not a
// tunable.
const (
	TileShift = 4
	TileSize  = 1 << TileShift // 16
)

// rasterizeTriangle runs the block rasterizer (spec.md §4.4) over one
// already coefficient-prepared, projected triangle. p0,p1,p2 carry, in
// their Z and W fields, the (A,B,C) depth and reciprocal-w plane
// coefficients respectively (p0 holds A, p1 holds B, p2 holds C — the
// order prepareAttributes wrote them in); u*,v* carry the matching
// texture-coordinate coefficients. Screen-space x,y on p0,p1,p2 are
// the actual triangle corners, not coefficients.
//
// The edge-function triangle is built from corners in the order
// (p0, p2, p1) rather than (p0, p1, p2): this mirrors the original
// rasterizer's DrawTriangles, which swaps the second and third vertex
// only for the half-edge geometry while leaving the coefficient order
// (computed earlier in SR_Render) untouched. The swap compensates for
// the screen's y-down coordinate system flipping the winding that
// SetupCoefficients' back-face test (y-up, clip space) considered
// front-facing.
func (c *Context) rasterizeTriangle(p0, p1, p2 Vertex, u0, v0, u1, v1, u2, v2 float32) {
	e0, e1, e2 := p0, p2, p1 // edge-geometry winding swap, see doc comment

	x1, y1 := fixed.ToFP(e0.X), fixed.ToFP(e0.Y)
	x2, y2 := fixed.ToFP(e1.X), fixed.ToFP(e1.Y)
	x3, y3 := fixed.ToFP(e2.X), fixed.ToFP(e2.Y)

	dx12, dx23, dx31 := x1-x2, x2-x3, x3-x1
	dy12, dy23, dy31 := y1-y2, y2-y3, y3-y1

	fdx12, fdx23, fdx31 := dx12<<fixed.FPBits, dx23<<fixed.FPBits, dx31<<fixed.FPBits
	fdy12, fdy23, fdy31 := dy12<<fixed.FPBits, dy23<<fixed.FPBits, dy31<<fixed.FPBits

	minX := min3(x1, x2, x3)
	maxX := max3(x1, x2, x3)
	minY := min3(y1, y2, y3)
	maxY := max3(y1, y2, y3)

	minx := (minX + 0xF) >> fixed.FPBits
	maxx := (maxX + 0xF) >> fixed.FPBits
	miny := (minY + 0xF) >> fixed.FPBits
	maxy := (maxY + 0xF) >> fixed.FPBits

	minx &^= TileSize - 1
	miny &^= TileSize - 1

	if c.yBanded {
		if miny < c.yBandMin {
			miny = c.yBandMin
		}
		if maxy > c.yBandMax {
			maxy = c.yBandMax
		}
		if miny >= maxy {
			return
		}
	}

	width, height := int32(c.Color.Width()), int32(c.Color.Height())

	c1 := dy12*x1 - dx12*y1
	c2 := dy23*x2 - dx23*y2
	c3 := dy31*x3 - dx31*y3

	if dy12 < 0 || (dy12 == 0 && dx12 > 0) {
		c1++
	}
	if dy23 < 0 || (dy23 == 0 && dx23 > 0) {
		c2++
	}
	if dy31 < 0 || (dy31 == 0 && dx31 > 0) {
		c3++
	}

	// Reciprocal-w and depth/texcoord plane coefficients, all in CP
	// (11-bit) or ZP (16-bit) fixed point as appropriate.
	aw := int64(p0.W * fixed.CPOne)
	bw := int64(p1.W * fixed.CPOne)
	cw := int64(p2.W * fixed.CPOne)

	az := int32(p0.Z * (1 << fixed.ZPBits))
	bz := int32(p1.Z * (1 << fixed.ZPBits))
	cz := int32(p2.Z * (1 << fixed.ZPBits))

	au := int64(u0 * fixed.CPOne)
	bu := int64(u1 * fixed.CPOne)
	cu := int64(u2 * fixed.CPOne)
	avv := int64(v0 * fixed.CPOne)
	bvv := int64(v1 * fixed.CPOne)
	cvv := int64(v2 * fixed.CPOne)

	ndcXStep := int32((2.0 / float32(width)) * (1 << fixed.NPBits))
	ndcYStep := int32((2.0 / float32(height)) * (1 << fixed.NPBits))

	const npOne = 1 << fixed.NPBits

	for y := miny; y < maxy; y += TileSize {
		for x := minx; x < maxx; x += TileSize {
			x0, x1t := x, x+TileSize-1
			y0, y1t := y, y+TileSize-1

			px0min, px0max := x0 > 0, x0 < width
			py0min, py0max := y0 > 0, y0 < height
			px1min, px1max := x1t > 0, x1t < width
			py1min, py1max := y1t > 0, y1t < height

			pflags0 := b4(px0min, px1min, px0max, px1max)
			pflags1 := b4(py0min, py1min, py0max, py1max)

			var wholeInViewport bool
			switch {
			case pflags0 == 0xF && pflags1 == 0xF:
				wholeInViewport = true
			case pflags0 == 0x3 || pflags0 == 0xC || pflags1 == 0x3 || pflags1 == 0xC:
				continue
			}
			scissor := !wholeInViewport

			fx0, fx1 := x0<<fixed.FPBits, x1t<<fixed.FPBits
			fy0, fy1 := y0<<fixed.FPBits, y1t<<fixed.FPBits

			a := cornerMask(c1, dx12, dy12, fx0, fx1, fy0, fy1)
			b := cornerMask(c2, dx23, dy23, fx0, fx1, fy0, fy1)
			cc := cornerMask(c3, dx31, dy31, fx0, fx1, fy0, fy1)

			if a == 0 || b == 0 || cc == 0 {
				continue
			}

			ndcX0 := x * (ndcXStep) // NP units, -1 deferred
			ndcY0 := y * (ndcYStep)
			ndcX1 := (x + TileSize - 1) * ndcXStep
			ndcY1 := (y + TileSize - 1) * ndcYStep

			bwx0 := (ndcX0 - npOne) >> fixed.CPNPShift
			bwx1 := (ndcX1 - npOne) >> fixed.CPNPShift
			bwy0 := (ndcY0 - npOne) >> fixed.CPNPShift
			bwy1 := (ndcY1 - npOne) >> fixed.CPNPShift

			bwi0 := int32((aw*int64(bwx0))>>fixed.CPBits) + int32((bw*int64(bwy0))>>fixed.CPBits) + int32(cw)
			bwi1 := int32((aw*int64(bwx0))>>fixed.CPBits) + int32((bw*int64(bwy1))>>fixed.CPBits) + int32(cw)
			bwi2 := int32((aw*int64(bwx1))>>fixed.CPBits) + int32((bw*int64(bwy0))>>fixed.CPBits) + int32(cw)
			bwi3 := int32((aw*int64(bwx1))>>fixed.CPBits) + int32((bw*int64(bwy1))>>fixed.CPBits) + int32(cw)

			var bw0, bw1, bw2, bw3 int32
			if bwi0 != 0 {
				bw0 = int32((int64(1) << (fixed.CPBits * 2)) / int64(bwi0))
			}
			if bwi1 != 0 {
				bw1 = int32((int64(1) << (fixed.CPBits * 2)) / int64(bwi1))
			}
			if bwi2 != 0 {
				bw2 = int32((int64(1) << (fixed.CPBits * 2)) / int64(bwi2))
			}
			if bwi3 != 0 {
				bw3 = int32((int64(1) << (fixed.CPBits * 2)) / int64(bwi3))
			}

			bwSlopeY0 := bw1 - bw0
			bwSlopeY1 := bw3 - bw2

			fullyCovered := a == 0xF && b == 0xF && cc == 0xF

			if fullyCovered {
				c.rasterFullTile(x, y, width, height, scissor,
					ndcX0, ndcY0, ndcXStep, ndcYStep,
					bw0, bw2, bwSlopeY0, bwSlopeY1,
					au, bu, cu, avv, bvv, cvv,
					az, bz, cz)
			} else {
				c.rasterPartialTile(x, y, width, height, scissor,
					c1+dx12*fy0-dy12*fx0, c2+dx23*fy0-dy23*fx0, c3+dx31*fy0-dy31*fx0,
					fdx12, fdx23, fdx31, fdy12, fdy23, fdy31,
					ndcX0, ndcY0, ndcXStep, ndcYStep,
					bw0, bw2, bwSlopeY0, bwSlopeY1,
					au, bu, cu, avv, bvv, cvv,
					az, bz, cz)
			}
		}
	}
}

// rasterFullTile handles a tile classified as wholly covered by all
// three edges: no per-pixel edge test, matching spec.md §4.4 "Fully
// covered" inner loop.
func (c *Context) rasterFullTile(x, y, width, height int32, scissor bool,
	ndcX0, ndcY0, ndcXStep, ndcYStep int32,
	bw0, bw2, bwSlopeY0, bwSlopeY1 int32,
	au, bu, cu, av, bv, cv int64,
	az, bz, cz int32) {

	const npOne = 1 << fixed.NPBits
	const q = TileSize

	ndcIY := ndcY0
	bwAccum0 := bw0 << TileShift
	bwAccum1 := bw2 << TileShift

	iy := y
	for iy < y+q {
		if scissor {
			if iy < 0 {
				skip := -iy
				iy += skip
				ndcIY += ndcYStep * skip
				bwAccum0 += bwSlopeY0 * skip
				bwAccum1 += bwSlopeY1 * skip
				continue
			} else if iy >= height {
				break
			}
		}

		interpY := (ndcIY - npOne) >> fixed.CPNPShift
		interpZY := (ndcIY - npOne) >> fixed.ZPNPShift

		bwSlopeX0 := bwAccum1 - bwAccum0
		bwAccumX0 := bwAccum0 << TileShift

		uwConst := ((bu * int64(interpY)) >> fixed.CPBits) + cu
		vwConst := ((bv * int64(interpY)) >> fixed.CPBits) + cv

		ndcIX := ndcX0
		ix := x
		for ix < x+q {
			if scissor {
				if ix < 0 {
					skip := -ix
					ix += skip
					ndcIX += ndcXStep * skip
					bwAccumX0 += bwSlopeX0 * skip
					continue
				} else if ix >= width {
					break
				}
			}

			interpX := (ndcIX - npOne) >> fixed.CPNPShift
			interpZX := (ndcIX - npOne) >> fixed.ZPNPShift

			z := uint16(((int64(az)*int64(interpZX)+int64(bz)*int64(interpZY))>>fixed.ZPBits) + int64(cz))

			if z < c.Depth.Get(int(ix), int(iy)) {
				c.Depth.Set(int(ix), int(iy), z)

				uw := ((au * int64(interpX)) >> fixed.CPBits) + uwConst
				vw := ((av * int64(interpX)) >> fixed.CPBits) + vwConst
				w := bwAccumX0 >> (TileShift * 2)

				u := int32((uw * int64(w) * int64(c.Tex0.Width)) >> (fixed.CPBits * 2))
				v := int32((vw * int64(w) * int64(c.Tex0.Height)) >> (fixed.CPBits * 2))

				c.Color.Set(int(ix), int(iy), c.Tex0.Sample(int(u), int(v)))
			}

			ndcIX += ndcXStep
			bwAccumX0 += bwSlopeX0
			ix++
		}

		bwAccum0 += bwSlopeY0
		bwAccum1 += bwSlopeY1
		ndcIY += ndcYStep
		iy++
	}
}

// rasterPartialTile handles a tile straddling at least one edge:
// maintains three edge accumulators and emits a pixel only when all
// three are strictly positive (spec.md §4.4 "Partially covered").
func (c *Context) rasterPartialTile(x, y, width, height int32, scissor bool,
	cy1, cy2, cy3 int32,
	fdx12, fdx23, fdx31, fdy12, fdy23, fdy31 int32,
	ndcX0, ndcY0, ndcXStep, ndcYStep int32,
	bw0, bw2, bwSlopeY0, bwSlopeY1 int32,
	au, bu, cu, av, bv, cv int64,
	az, bz, cz int32) {

	const npOne = 1 << fixed.NPBits
	const q = TileSize

	ndcIY := ndcY0
	bwAccum0 := bw0 << TileShift
	bwAccum1 := bw2 << TileShift

	iy := y
	for iy < y+q {
		if scissor {
			if iy < 0 {
				skip := -iy
				iy += skip
				ndcIY += ndcYStep * skip
				bwAccum0 += bwSlopeY0 * skip
				bwAccum1 += bwSlopeY1 * skip
				cy1 += fdx12 * skip
				cy2 += fdx23 * skip
				cy3 += fdx31 * skip
				continue
			} else if iy >= height {
				break
			}
		}

		cx1, cx2, cx3 := cy1, cy2, cy3
		bwSlopeX0 := bwAccum1 - bwAccum0
		bwAccumX0 := bwAccum0 << TileShift

		interpY := (ndcIY - npOne) >> fixed.CPNPShift
		interpZY := (ndcIY - npOne) >> fixed.ZPNPShift

		uwConst := ((bu * int64(interpY)) >> fixed.CPBits) + cu
		vwConst := ((bv * int64(interpY)) >> fixed.CPBits) + cv

		ndcIX := ndcX0
		ix := x
		for ix < x+q {
			if scissor {
				if ix < 0 {
					skip := -ix
					ix += skip
					ndcIX += ndcXStep * skip
					bwAccumX0 += bwSlopeX0 * skip
					cx1 -= fdy12 * skip
					cx2 -= fdy23 * skip
					cx3 -= fdy31 * skip
					continue
				} else if ix >= width {
					break
				}
			}

			if cx1 > 0 && cx2 > 0 && cx3 > 0 {
				interpX := (ndcIX - npOne) >> fixed.CPNPShift
				interpZX := (ndcIX - npOne) >> fixed.ZPNPShift

				z := uint16(((int64(az)*int64(interpZX)+int64(bz)*int64(interpZY))>>fixed.ZPBits) + int64(cz))

				if z < c.Depth.Get(int(ix), int(iy)) {
					c.Depth.Set(int(ix), int(iy), z)

					uw := ((au * int64(interpX)) >> fixed.CPBits) + uwConst
					vw := ((av * int64(interpX)) >> fixed.CPBits) + vwConst
					w := bwAccumX0 >> (TileShift * 2)

					u := int32((uw * int64(w) * int64(c.Tex0.Width)) >> (fixed.CPBits * 2))
					v := int32((vw * int64(w) * int64(c.Tex0.Height)) >> (fixed.CPBits * 2))

					c.Color.Set(int(ix), int(iy), c.Tex0.Sample(int(u), int(v)))
				}
			}

			ndcIX += ndcXStep
			bwAccumX0 += bwSlopeX0
			cx1 -= fdy12
			cx2 -= fdy23
			cx3 -= fdy31
			ix++
		}

		bwAccum0 += bwSlopeY0
		bwAccum1 += bwSlopeY1
		ndcIY += ndcYStep
		cy1 += fdx12
		cy2 += fdx23
		cy3 += fdx31
		iy++
	}
}

func b4(a, b, cc, d bool) int32 {
	return boolBit(a, 3) | boolBit(b, 2) | boolBit(cc, 1) | boolBit(d, 0)
}

func boolBit(v bool, shift uint) int32 {
	if v {
		return 1 << shift
	}
	return 0
}

// cornerMask evaluates the half-edge function at the tile's four
// corners and packs the positive/negative results into a 4-bit mask
// (spec.md §4.4 step 2), bit order (topLeft, topRight, bottomLeft,
// bottomRight) matching the original rasterizer's a00/a10/a01/a11.
func cornerMask(c, dx, dy, fx0, fx1, fy0, fy1 int32) int32 {
	a00 := c+dx*fy0-dy*fx0 > 0
	a10 := c+dx*fy0-dy*fx1 > 0
	a01 := c+dx*fy1-dy*fx0 > 0
	a11 := c+dx*fy1-dy*fx1 > 0
	var m int32
	if a00 {
		m |= 1 << 0
	}
	if a10 {
		m |= 1 << 1
	}
	if a01 {
		m |= 1 << 2
	}
	if a11 {
		m |= 1 << 3
	}
	return m
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
