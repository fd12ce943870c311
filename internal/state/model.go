package state

import (
	"image/color"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a canvas position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(q.vec(), p.vec()))
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	m := r2.Scale(0.5, r2.Add(p.vec(), q.vec()))
	return Point{X: m.X, Y: m.Y}
}

// Kind tags the shape variants.
type Kind string

const (
	KindFreeDraw  Kind = "freedraw"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindLine      Kind = "line"
)

// Shape is one committed drawable. The set of variants is closed: only
// FreeDraw, Rectangle, Circle and Line implement it. A shape never changes
// after construction.
type Shape interface {
	Kind() Kind
	ShapeID() string
	Stroke() (color.NRGBA, float64)
	sealed()
}

type style struct {
	ID          string
	Color       color.NRGBA
	StrokeWidth float64
}

func newStyle(c color.NRGBA, width float64) style {
	return style{ID: uuid.NewString(), Color: c, StrokeWidth: width}
}

func (s style) ShapeID() string { return s.ID }

// Stroke returns the color and width frozen into the shape at creation.
func (s style) Stroke() (color.NRGBA, float64) { return s.Color, s.StrokeWidth }

func (style) sealed() {}

// FreeDraw is a freehand polyline. Its points are private so the slice can
// never be shared with the buffer it was built from.
type FreeDraw struct {
	style
	points []Point
}

// NewFreeDraw copies points; at least one point is required by callers.
func NewFreeDraw(points []Point, c color.NRGBA, width float64) FreeDraw {
	return FreeDraw{style: newStyle(c, width), points: append([]Point(nil), points...)}
}

func (FreeDraw) Kind() Kind { return KindFreeDraw }

// Points returns a copy of the polyline.
func (f FreeDraw) Points() []Point { return append([]Point(nil), f.points...) }

func (f FreeDraw) Len() int { return len(f.points) }

// Rectangle is axis aligned; X,Y is the top-left corner.
type Rectangle struct {
	style
	X, Y, Width, Height float64
}

func NewRectangle(x, y, w, h float64, c color.NRGBA, width float64) Rectangle {
	return Rectangle{style: newStyle(c, width), X: x, Y: y, Width: w, Height: h}
}

func (Rectangle) Kind() Kind { return KindRectangle }

type Circle struct {
	style
	CenterX, CenterY, Radius float64
}

func NewCircle(cx, cy, r float64, c color.NRGBA, width float64) Circle {
	return Circle{style: newStyle(c, width), CenterX: cx, CenterY: cy, Radius: r}
}

func (Circle) Kind() Kind { return KindCircle }

type Line struct {
	style
	X1, Y1, X2, Y2 float64
}

func NewLine(x1, y1, x2, y2 float64, c color.NRGBA, width float64) Line {
	return Line{style: newStyle(c, width), X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (Line) Kind() Kind { return KindLine }

// RectangleFromDrag normalizes a drag from s to e into a rectangle.
func RectangleFromDrag(s, e Point, c color.NRGBA, width float64) Rectangle {
	return rectangleFromDrag(newStyle(c, width), s, e)
}

// CircleFromDrag centers the circle on the midpoint of the drag. The drag
// distance is the diameter, not the radius.
func CircleFromDrag(s, e Point, c color.NRGBA, width float64) Circle {
	return circleFromDrag(newStyle(c, width), s, e)
}

func LineFromDrag(s, e Point, c color.NRGBA, width float64) Line {
	return lineFromDrag(newStyle(c, width), s, e)
}

func rectangleFromDrag(st style, s, e Point) Rectangle {
	return Rectangle{style: st, X: min(s.X, e.X), Y: min(s.Y, e.Y), Width: abs(s.X - e.X), Height: abs(s.Y - e.Y)}
}

func circleFromDrag(st style, s, e Point) Circle {
	m := s.Midpoint(e)
	return Circle{style: st, CenterX: m.X, CenterY: m.Y, Radius: s.Distance(e) / 2}
}

func lineFromDrag(st style, s, e Point) Line {
	return Line{style: st, X1: s.X, Y1: s.Y, X2: e.X, Y2: e.Y}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
