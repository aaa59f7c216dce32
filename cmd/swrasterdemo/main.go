// Command swrasterdemo renders a single checker-textured, rotating
// triangle with the software rasterizer and writes the result as a PNG.
//
// It exists to exercise raster.Context end to end (MVP transform,
// coefficient setup, projection, texturing, depth test) against a real
// image rather than a unit-test buffer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/swraster/buffer"
	"github.com/gogpu/swraster/raster"
	"github.com/gogpu/swraster/texture"
	"github.com/gviegas/scene/linear"
)

func main() {
	width := flag.Int("width", 512, "output image width")
	height := flag.Int("height", 512, "output image height")
	angle := flag.Float64("angle", 30, "rotation of the triangle about the Z axis, in degrees")
	out := flag.String("out", "swrasterdemo.png", "output PNG path")
	flag.Parse()

	if err := run(*width, *height, *angle, *out); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height int, angleDegrees float64, outPath string) error {
	cbuf := buffer.NewColorBuffer(width, height)
	depth := buffer.NewDepthBuffer(width, height)
	tex := checkerTexture(64)

	ctx := raster.NewContext(cbuf, depth, tex)
	ctx.Config = raster.DefaultParallelConfig()

	batch := raster.Batch{
		Positions: []raster.Vertex{
			{X: 0, Y: 0.8, Z: 0, W: 1},
			{X: -0.8, Y: -0.6, Z: 0, W: 1},
			{X: 0.8, Y: -0.6, Z: 0, W: 1},
		},
		TexCoord0: []raster.Vertex{
			{X: 0.5, Y: 0},
			{X: 0, Y: 1},
			{X: 1, Y: 1},
		},
	}

	mvp := rotationZ(angleDegrees)
	ctx.RenderParallel(batch, &mvp, raster.TexCoord0)

	return writePNG(outPath, cbuf)
}

// rotationZ builds a column-major rotation-about-Z matrix directly;
// linear.M4 exposes Mul/Transpose/Invert but no axis-angle builder, so
// the rotation entries are set by hand on an identity matrix.
func rotationZ(degrees float64) linear.M4 {
	rad := degrees * math.Pi / 180
	s, c := float32(math.Sin(rad)), float32(math.Cos(rad))

	var m linear.M4
	m.I()
	m[0][0], m[0][1] = c, s
	m[1][0], m[1][1] = -s, c
	return m
}

// checkerTexture builds an n x n black-and-white checker pattern used
// to make perspective-correct interpolation visible in the output.
func checkerTexture(n int) *texture.Texture {
	tex := texture.New(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := uint32(0xFF000000)
			if (x/8+y/8)%2 == 0 {
				c = 0xFFFFFFFF
			}
			tex.Texels[y*n+x] = c
		}
	}
	return tex
}

func writePNG(path string, c *buffer.ColorBuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			px := c.Get(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: uint8(px >> 24),
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
