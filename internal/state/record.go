package state

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ShapeRecord is the JSON form of a shape, used on the mirror wire.
type ShapeRecord struct {
	ID          string  `json:"id"`
	Type        Kind    `json:"type"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	W           float64 `json:"w,omitempty"`
	H           float64 `json:"h,omitempty"`
	R           float64 `json:"r,omitempty"`
	X2          float64 `json:"x2,omitempty"`
	Y2          float64 `json:"y2,omitempty"`
	Points      []Point `json:"points,omitempty"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

var ErrBadRecord = errors.New("malformed shape record")

// ToRecord converts a shape to its wire form. Circles use X,Y for the center.
func ToRecord(sh Shape) ShapeRecord {
	c, w := sh.Stroke()
	rec := ShapeRecord{ID: sh.ShapeID(), Type: sh.Kind(), Stroke: HexColor(c), StrokeWidth: w}
	switch v := sh.(type) {
	case FreeDraw:
		rec.Points = v.Points()
	case Rectangle:
		rec.X, rec.Y, rec.W, rec.H = v.X, v.Y, v.Width, v.Height
	case Circle:
		rec.X, rec.Y, rec.R = v.CenterX, v.CenterY, v.Radius
	case Line:
		rec.X, rec.Y, rec.X2, rec.Y2 = v.X1, v.Y1, v.X2, v.Y2
	}
	return rec
}

// FromRecord validates a wire record and rebuilds the shape, keeping its ID.
func FromRecord(rec ShapeRecord) (Shape, error) {
	c, err := ParseHexColor(rec.Stroke)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRecord, rec.ID, err)
	}
	if rec.StrokeWidth <= 0 {
		return nil, fmt.Errorf("%w: %s: stroke width %v", ErrBadRecord, rec.ID, rec.StrokeWidth)
	}
	switch rec.Type {
	case KindFreeDraw:
		if len(rec.Points) == 0 {
			return nil, fmt.Errorf("%w: %s: freedraw without points", ErrBadRecord, rec.ID)
		}
		v := NewFreeDraw(rec.Points, c, rec.StrokeWidth)
		v.ID = rec.ID
		return v, nil
	case KindRectangle:
		if rec.W < 0 || rec.H < 0 {
			return nil, fmt.Errorf("%w: %s: negative size", ErrBadRecord, rec.ID)
		}
		v := NewRectangle(rec.X, rec.Y, rec.W, rec.H, c, rec.StrokeWidth)
		v.ID = rec.ID
		return v, nil
	case KindCircle:
		if rec.R < 0 {
			return nil, fmt.Errorf("%w: %s: negative radius", ErrBadRecord, rec.ID)
		}
		v := NewCircle(rec.X, rec.Y, rec.R, c, rec.StrokeWidth)
		v.ID = rec.ID
		return v, nil
	case KindLine:
		v := NewLine(rec.X, rec.Y, rec.X2, rec.Y2, c, rec.StrokeWidth)
		v.ID = rec.ID
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s: unknown type %q", ErrBadRecord, rec.ID, rec.Type)
}

func ToRecords(shapes []Shape) []ShapeRecord {
	recs := make([]ShapeRecord, 0, len(shapes))
	for _, sh := range shapes {
		recs = append(recs, ToRecord(sh))
	}
	return recs
}

// FromRecords rebuilds a draw-list; the first bad record fails the batch.
func FromRecords(recs []ShapeRecord) ([]Shape, error) {
	shapes := make([]Shape, 0, len(recs))
	for _, rec := range recs {
		sh, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

// HexColor formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHexColor accepts #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(s, "#")
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if err != nil || !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}
