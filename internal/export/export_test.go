package export

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"LocalSketch/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func isRed(c color.RGBA) bool   { return c.R > 200 && c.G < 50 && c.B < 50 }
func isBlue(c color.RGBA) bool  { return c.B > 200 && c.R < 50 && c.G < 50 }
func isWhite(c color.RGBA) bool { return c.R == 0xff && c.G == 0xff && c.B == 0xff }

func TestRasterizeRectangleOutline(t *testing.T) {
	img := Rasterize([]state.Shape{state.NewRectangle(10, 10, 30, 30, red, 4)}, state.Preview{}, 60, 60)

	assert.True(t, isRed(img.RGBAAt(10, 25)), "left edge")
	assert.True(t, isRed(img.RGBAAt(39, 25)), "right edge")
	assert.True(t, isWhite(img.RGBAAt(25, 25)), "interior stays unfilled")
	assert.True(t, isWhite(img.RGBAAt(2, 2)))
}

func TestRasterizeCircleRing(t *testing.T) {
	img := Rasterize([]state.Shape{state.CircleFromDrag(state.Pt(30, 50), state.Pt(70, 50), blue, 4)}, state.Preview{}, 100, 100)

	assert.True(t, isBlue(img.RGBAAt(69, 50)))
	assert.True(t, isBlue(img.RGBAAt(50, 30)))
	assert.True(t, isWhite(img.RGBAAt(50, 50)), "center")
	assert.True(t, isWhite(img.RGBAAt(90, 50)), "outside")
}

func TestRasterizeFreehandAndDot(t *testing.T) {
	shapes := []state.Shape{
		state.NewFreeDraw([]state.Point{{X: 5, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 35}}, red, 4),
		state.NewFreeDraw([]state.Point{{X: 40, Y: 40}}, blue, 6),
	}
	img := Rasterize(shapes, state.Preview{}, 50, 50)

	assert.True(t, isRed(img.RGBAAt(12, 20)))
	assert.True(t, isRed(img.RGBAAt(20, 20)), "joint is covered, not cancelled")
	assert.True(t, isRed(img.RGBAAt(20, 30)))
	assert.True(t, isBlue(img.RGBAAt(40, 40)))
	assert.True(t, isWhite(img.RGBAAt(10, 30)))
}

func TestRasterizePaintsPreviewOnTop(t *testing.T) {
	shapes := []state.Shape{state.NewLine(0, 20, 40, 20, red, 6)}
	preview := state.Preview{Shape: state.NewLine(20, 0, 20, 40, blue, 6)}
	img := Rasterize(shapes, preview, 40, 40)

	assert.True(t, isBlue(img.RGBAAt(20, 20)))
	assert.True(t, isRed(img.RGBAAt(5, 20)))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, []state.Shape{state.NewLine(0, 0, 10, 10, red, 1)}, 32, 24))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	assert.Error(t, WritePNG(&bytes.Buffer{}, nil, 0, 10))
}

func TestWritePDF(t *testing.T) {
	shapes := []state.Shape{
		state.NewFreeDraw([]state.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}, red, 2),
		state.NewFreeDraw([]state.Point{{X: 3, Y: 3}}, red, 2),
		state.NewRectangle(10, 20, 30, 30, blue, 1),
		state.NewCircle(50, 50, 10, color.NRGBA{G: 0x80, A: 0x80}, 3),
		state.NewLine(0, 100, 100, 0, blue, 1),
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, shapes))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestWritePDFEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
