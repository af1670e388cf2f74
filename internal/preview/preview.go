// Package preview renders the UV layout of a mesh to PNG.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/uvalign/layout"
	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

// ErrEmptyMesh is returned when there is nothing to draw.
var ErrEmptyMesh = errors.New("preview: mesh has no faces")

// Options configures rendering.
type Options struct {
	Size      int     // width and height in pixels
	Padding   int     // margin around the layout in pixels
	LineWidth float64 // edge width in pixels
	DotSize   float64 // side of the marker drawn on UV-selected loops
}

// DefaultOptions returns sensible defaults for rendering.
func DefaultOptions() Options {
	return Options{
		Size:      512,
		Padding:   16,
		LineWidth: 1.5,
		DotSize:   5,
	}
}

// Colors used in rendering
var (
	colorBackground   = color.RGBA{255, 255, 255, 255}
	colorFace         = color.RGBA{215, 225, 240, 255}
	colorFaceSelected = color.RGBA{255, 224, 178, 255}
	colorEdge         = color.RGBA{51, 51, 51, 255}
	colorLoopSelected = color.RGBA{230, 81, 0, 255}
)

// supersample is the render scale before downsampling.
const supersample = 4

// frame maps UV space onto pixels, Y up.
type frame struct {
	lo    uv.Vec2
	hiY   float64
	scale float64
	pad   float64
}

func (f frame) point(p uv.Vec2) (float32, float32) {
	x := f.pad + (p.X-f.lo.X)*f.scale
	y := f.pad + (f.hiY-p.Y)*f.scale
	return float32(x), float32(y)
}

// Image renders the UV layout of m.
func Image(m mesh.Accessor, opts Options) (*image.RGBA, error) {
	faces := m.Faces()
	if len(faces) == 0 || opts.Size <= 0 {
		return nil, ErrEmptyMesh
	}
	selected := make(map[mesh.FaceID]bool)
	for _, f := range m.SelectedFaces() {
		selected[f] = true
	}

	var all []uv.Vec2
	for _, f := range faces {
		for _, l := range m.FaceLoops(f) {
			all = append(all, m.UV(l))
		}
	}
	box := layout.Bounds(all)
	size := box.Size()
	extent := math.Max(size.X, size.Y)
	if extent == 0 {
		extent = 1
	}

	big := opts.Size * supersample
	pad := float64(opts.Padding * supersample)
	fr := frame{
		lo:    uv.FromR2(box.Lo()),
		hiY:   box.Hi().Y,
		scale: (float64(big) - 2*pad) / extent,
		pad:   pad,
	}

	dst := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	z := vector.NewRasterizer(big, big)

	for _, f := range faces {
		c := colorFace
		if selected[f] {
			c = colorFaceSelected
		}
		z.Reset(big, big)
		for i, l := range m.FaceLoops(f) {
			x, y := fr.point(m.UV(l))
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
		fill(z, dst, c)
	}

	lw := opts.LineWidth * supersample
	for _, f := range faces {
		for _, l := range m.FaceLoops(f) {
			z.Reset(big, big)
			segment(z, fr, m.UV(l), m.UV(m.LoopNext(l)), lw)
			fill(z, dst, colorEdge)
		}
	}

	half := float32(opts.DotSize * supersample / 2)
	for _, f := range faces {
		for _, l := range m.FaceLoops(f) {
			if !m.UVSelected(l) {
				continue
			}
			x, y := fr.point(m.UV(l))
			z.Reset(big, big)
			z.MoveTo(x-half, y-half)
			z.LineTo(x+half, y-half)
			z.LineTo(x+half, y+half)
			z.LineTo(x-half, y+half)
			z.ClosePath()
			fill(z, dst, colorLoopSelected)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), dst, dst.Bounds(), draw.Src, nil)
	return out, nil
}

// Encode renders the UV layout of m and writes it as PNG.
func Encode(w io.Writer, m mesh.Accessor, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func fill(z *vector.Rasterizer, dst *image.RGBA, c color.Color) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// segment adds the outline of a line from a to b with width lw.
func segment(z *vector.Rasterizer, fr frame, a, b uv.Vec2, lw float64) {
	ax, ay := fr.point(a)
	bx, by := fr.point(b)
	dx, dy := float64(bx-ax), float64(by-ay)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	px := float32(-dy / n * lw / 2)
	py := float32(dx / n * lw / 2)
	z.MoveTo(ax+px, ay+py)
	z.LineTo(bx+px, by+py)
	z.LineTo(bx-px, by-py)
	z.LineTo(ax-px, ay-py)
	z.ClosePath()
}
