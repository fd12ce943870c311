package state

import "math"

// Area is an axis-aligned box on the canvas.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Union returns the smallest area covering a and o.
func (a Area) Union(o Area) Area {
	minX := math.Min(a.X, o.X)
	minY := math.Min(a.Y, o.Y)
	maxX := math.Max(a.X+a.Width, o.X+o.Width)
	maxY := math.Max(a.Y+a.Height, o.Y+o.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Pad grows the area by p on every side.
func (a Area) Pad(p float64) Area {
	return Area{X: a.X - p, Y: a.Y - p, Width: a.Width + 2*p, Height: a.Height + 2*p}
}

// Bounds returns the area covered by a shape's geometry, including half the
// stroke on every side.
func Bounds(sh Shape) Area {
	var a Area
	switch v := sh.(type) {
	case FreeDraw:
		a = pointsArea(v.points)
	case Rectangle:
		a = Area{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
	case Circle:
		a = Area{X: v.CenterX - v.Radius, Y: v.CenterY - v.Radius, Width: 2 * v.Radius, Height: 2 * v.Radius}
	case Line:
		a = pointsArea([]Point{{v.X1, v.Y1}, {v.X2, v.Y2}})
	default:
		return Area{}
	}
	_, w := sh.Stroke()
	return a.Pad(w / 2)
}

// BoundsOf returns the area covered by all shapes, and false when there are
// none.
func BoundsOf(shapes []Shape) (Area, bool) {
	if len(shapes) == 0 {
		return Area{}, false
	}
	a := Bounds(shapes[0])
	for _, sh := range shapes[1:] {
		a = a.Union(Bounds(sh))
	}
	return a, true
}

func pointsArea(points []Point) Area {
	if len(points) == 0 {
		return Area{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
