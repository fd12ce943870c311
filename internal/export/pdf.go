package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"LocalSketch/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PageMargin is the blank border, in points, around the exported drawing.
const PageMargin = 20.0

// A blank board still exports a page the size of the default window.
var emptyPage = state.Area{Width: 800, Height: 600}

// WritePDF renders shapes onto a single page sized to fit them. One canvas
// pixel maps to one PDF point.
func WritePDF(w io.Writer, shapes []state.Shape) error {
	area, ok := state.BoundsOf(shapes)
	if !ok {
		area = emptyPage
	}
	area = area.Pad(PageMargin)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: area.Width, Ht: area.Height},
	})
	pdf.SetTitle("LocalSketch drawing", true)
	pdf.SetCreator("LocalSketch", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	s := &pdfSurface{pdf: pdf, dx: -area.X, dy: -area.Y}
	state.Paint(s, shapes, state.Preview{})

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote PDF with %d shapes (%.0fx%.0fpt)", len(shapes), area.Width, area.Height)
	return nil
}

// pdfSurface translates canvas coordinates so the drawing's bounding box
// starts at the page origin.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	dx, dy float64
}

func (s *pdfSurface) pen(c color.NRGBA, width float64) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/0xff, "Normal")
	s.pdf.SetLineWidth(width)
}

func (s *pdfSurface) Polyline(points []state.Point, c color.NRGBA, width float64) {
	s.pen(c, width)
	if len(points) == 1 {
		s.pdf.Circle(points[0].X+s.dx, points[0].Y+s.dy, width/2, "F")
		return
	}
	for i := 1; i < len(points); i++ {
		s.pdf.Line(
			points[i-1].X+s.dx, points[i-1].Y+s.dy,
			points[i].X+s.dx, points[i].Y+s.dy,
		)
	}
}

func (s *pdfSurface) Rectangle(x, y, w, h float64, c color.NRGBA, width float64) {
	s.pen(c, width)
	s.pdf.Rect(x+s.dx, y+s.dy, w, h, "D")
}

func (s *pdfSurface) Circle(cx, cy, r float64, c color.NRGBA, width float64) {
	s.pen(c, width)
	s.pdf.Circle(cx+s.dx, cy+s.dy, r, "D")
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA, width float64) {
	s.pen(c, width)
	s.pdf.Line(x1+s.dx, y1+s.dy, x2+s.dx, y2+s.dy)
}
