package ui

import (
	"image/color"

	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// objectSurface collects fyne canvas objects for a drawing, in paint order.
type objectSurface struct {
	objects []fyne.CanvasObject
}

func pos(x, y float64) fyne.Position { return fyne.NewPos(float32(x), float32(y)) }

func (s *objectSurface) add(o fyne.CanvasObject) { s.objects = append(s.objects, o) }

func (s *objectSurface) Polyline(points []state.Point, c color.NRGBA, width float64) {
	if len(points) == 1 {
		// a single point is a dot as wide as the stroke
		r := width / 2
		dot := canvas.NewCircle(c)
		dot.Position1 = pos(points[0].X-r, points[0].Y-r)
		dot.Position2 = pos(points[0].X+r, points[0].Y+r)
		s.add(dot)
		return
	}
	for i := 1; i < len(points); i++ {
		s.Line(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, c, width)
	}
}

func (s *objectSurface) Rectangle(x, y, w, h float64, c color.NRGBA, width float64) {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = c
	rect.StrokeWidth = float32(width)
	rect.Move(pos(x, y))
	rect.Resize(fyne.NewSize(float32(w), float32(h)))
	s.add(rect)
}

func (s *objectSurface) Circle(cx, cy, r float64, c color.NRGBA, width float64) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = c
	circle.StrokeWidth = float32(width)
	circle.Position1 = pos(cx-r, cy-r)
	circle.Position2 = pos(cx+r, cy+r)
	s.add(circle)
}

func (s *objectSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA, width float64) {
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(width)
	line.Position1 = pos(x1, y1)
	line.Position2 = pos(x2, y2)
	s.add(line)
}
