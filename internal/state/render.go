package state

import "image/color"

// Surface is anything a drawing can be painted onto: the fyne canvas, a PDF
// page, a raster image. Implementations must not call back into the core.
//
// A Polyline with a single point is a dot of diameter width.
type Surface interface {
	Polyline(points []Point, c color.NRGBA, width float64)
	Rectangle(x, y, w, h float64, c color.NRGBA, width float64)
	Circle(cx, cy, r float64, c color.NRGBA, width float64)
	Line(x1, y1, x2, y2 float64, c color.NRGBA, width float64)
}

// Render paints one shape with its own frozen color and stroke width.
func Render(s Surface, sh Shape) {
	switch v := sh.(type) {
	case FreeDraw:
		if len(v.points) == 0 {
			return
		}
		s.Polyline(v.Points(), v.Color, v.StrokeWidth)
	case Rectangle:
		s.Rectangle(v.X, v.Y, v.Width, v.Height, v.Color, v.StrokeWidth)
	case Circle:
		s.Circle(v.CenterX, v.CenterY, v.Radius, v.Color, v.StrokeWidth)
	case Line:
		s.Line(v.X1, v.Y1, v.X2, v.Y2, v.Color, v.StrokeWidth)
	}
}

// Preview is the uncommitted feedback drawn while a drag is in progress.
// At most one of Polyline and Shape is set.
type Preview struct {
	// Polyline is the freehand buffer, drawn in the current color and width.
	Polyline    []Point
	Color       color.NRGBA
	StrokeWidth float64

	// Shape is the pending rectangle, circle or line.
	Shape Shape
}

func (p Preview) Empty() bool { return p.Shape == nil && len(p.Polyline) == 0 }

// Paint draws the committed shapes in order, then the preview on top.
func Paint(s Surface, shapes []Shape, preview Preview) {
	for _, sh := range shapes {
		Render(s, sh)
	}
	switch {
	case preview.Shape != nil:
		Render(s, preview.Shape)
	case len(preview.Polyline) > 1:
		// a lone seed point gets no feedback until the pointer moves
		s.Polyline(preview.Polyline, preview.Color, preview.StrokeWidth)
	}
}
