package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"

	"LocalSketch/internal/state"

	"golang.org/x/image/vector"
)

// Rasterize paints shapes and the preview onto a white image of the given
// size, in canvas coordinates.
func Rasterize(shapes []state.Shape, preview state.Preview, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	s := &rasterSurface{dst: dst, z: vector.NewRasterizer(width, height)}
	state.Paint(s, shapes, preview)
	return dst
}

// WritePNG encodes the board as it appears on a canvas of the given size.
func WritePNG(w io.Writer, shapes []state.Shape, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	img := Rasterize(shapes, state.Preview{}, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	log.Printf("[EXPORT] Wrote PNG with %d shapes (%dx%d)", len(shapes), width, height)
	return nil
}

// rasterSurface fills one shape per rasterizer pass. Strokes are turned
// into filled outlines: quads for segments, polygons for round dots and
// rings for rectangle and circle outlines. Quads and dots share a winding
// so their overlaps add up instead of cancelling.
type rasterSurface struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func (s *rasterSurface) fill(c color.NRGBA, path func(z *vector.Rasterizer)) {
	b := s.dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	path(s.z)
	s.z.Draw(s.dst, b, image.NewUniform(c), image.Point{})
}

func (s *rasterSurface) Polyline(points []state.Point, c color.NRGBA, width float64) {
	s.fill(c, func(z *vector.Rasterizer) { stroke(z, points, width) })
}

func (s *rasterSurface) Rectangle(x, y, w, h float64, c color.NRGBA, width float64) {
	half := width / 2
	s.fill(c, func(z *vector.Rasterizer) {
		box(z, x-half, y-half, x+w+half, y+h+half, false)
		if w > width && h > width {
			box(z, x+half, y+half, x+w-half, y+h-half, true)
		}
	})
}

func (s *rasterSurface) Circle(cx, cy, r float64, c color.NRGBA, width float64) {
	half := width / 2
	s.fill(c, func(z *vector.Rasterizer) {
		polygon(z, cx, cy, r+half, false)
		if r-half > 0 {
			polygon(z, cx, cy, r-half, true)
		}
	})
}

func (s *rasterSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA, width float64) {
	s.fill(c, func(z *vector.Rasterizer) {
		stroke(z, []state.Point{state.Pt(x1, y1), state.Pt(x2, y2)}, width)
	})
}

// stroke outlines a polyline with round joins and caps.
func stroke(z *vector.Rasterizer, points []state.Point, width float64) {
	half := width / 2
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := a.Distance(b)
		if d == 0 {
			continue
		}
		nx := -(b.Y - a.Y) / d * half
		ny := (b.X - a.X) / d * half
		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}
	for _, p := range points {
		polygon(z, p.X, p.Y, math.Max(half, 0.5), false)
	}
}

// box and polygon trace the opposite winding when reverse is set, which
// cuts a hole out of an enclosing path.
func box(z *vector.Rasterizer, x0, y0, x1, y1 float64, reverse bool) {
	pts := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
}

func polygon(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	n := int(math.Min(math.Max(r, 16), 256))
	step := -2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < n; i++ {
		a := step * float64(i)
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}
