package ui

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = color.NRGBA{A: 255}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestBoard(t *testing.T, tool string) (*BoardWidget, *state.Editor) {
	test.NewTempApp(t)
	e := state.NewEditor(state.DefaultSettings())
	require.NoError(t, e.SetTool(tool))
	b := NewBoardWidget(e)
	e.OnRedrawNeeded = b.Refresh
	b.Resize(fyne.NewSize(200, 200))
	return b, e
}

func TestBoardWidgetDragCommitsRectangle(t *testing.T) {
	b, e := newTestBoard(t, "rectangle")

	b.MouseDown(mouse(10, 50, desktop.MouseButtonPrimary))
	b.Dragged(drag(40, 20))
	b.MouseUp(mouse(40, 20, desktop.MouseButtonPrimary))

	shapes := e.Shapes()
	require.Len(t, shapes, 1)
	r := shapes[0].(state.Rectangle)
	assert.Equal(t, []float64{10, 20, 30, 30}, []float64{r.X, r.Y, r.Width, r.Height})

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 2)
	rect, ok := objects[1].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(10, 20), rect.Position())
	assert.Equal(t, fyne.NewSize(30, 30), rect.Size())
	assert.Equal(t, float32(1), rect.StrokeWidth)
}

func TestBoardWidgetShowsPreviewWhileDragging(t *testing.T) {
	b, e := newTestBoard(t, "line")
	r := test.WidgetRenderer(b)

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	assert.Len(t, r.Objects(), 1)

	b.Dragged(drag(30, 40))
	require.Len(t, r.Objects(), 2)
	line := r.Objects()[1].(*canvas.Line)
	assert.Equal(t, fyne.NewPos(30, 40), line.Position2)
	assert.Empty(t, e.Shapes())
}

func TestBoardWidgetFreehandSegments(t *testing.T) {
	b, e := newTestBoard(t, "freehand")

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(drag(1, 1))
	b.Dragged(drag(2, 2))
	b.MouseUp(mouse(2, 2, desktop.MouseButtonPrimary))

	require.Len(t, e.Shapes(), 1)
	assert.Equal(t, []state.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, e.Shapes()[0].(state.FreeDraw).Points())

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 3)
	for _, o := range objects[1:] {
		assert.IsType(t, &canvas.Line{}, o)
	}
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	b, e := newTestBoard(t, "rectangle")

	b.MouseDown(mouse(0, 0, desktop.MouseButtonSecondary))
	b.Dragged(drag(10, 10))
	b.MouseUp(mouse(10, 10, desktop.MouseButtonSecondary))

	assert.Empty(t, e.Shapes())
	assert.Equal(t, state.Idle, e.Phase())
}

func TestBoardWidgetDragEndCommitsOnce(t *testing.T) {
	b, e := newTestBoard(t, "circle")

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(drag(10, 0))
	b.DragEnd()
	b.MouseUp(mouse(10, 0, desktop.MouseButtonPrimary))

	require.Len(t, e.Shapes(), 1)
	c := e.Shapes()[0].(state.Circle)
	assert.Equal(t, []float64{5, 0, 5}, []float64{c.CenterX, c.CenterY, c.Radius})
	undo, _ := e.HistoryDepth()
	assert.Equal(t, 1, undo)
}

func TestBoardWidgetClickCommitsNothing(t *testing.T) {
	b, e := newTestBoard(t, "line")

	b.MouseDown(mouse(5, 5, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(5, 5, desktop.MouseButtonPrimary))

	assert.Empty(t, e.Shapes())
	assert.False(t, e.CanUndo())
}

func TestObjectSurfaceShapes(t *testing.T) {
	s := &objectSurface{}
	s.Circle(10, 20, 5, black, 2)
	s.Polyline([]state.Point{{X: 3, Y: 3}}, black, 4)

	require.Len(t, s.objects, 2)
	circle := s.objects[0].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(5, 15), circle.Position1)
	assert.Equal(t, fyne.NewPos(15, 25), circle.Position2)
	assert.Equal(t, color.Color(color.Transparent), circle.FillColor)
	assert.Equal(t, float32(2), circle.StrokeWidth)

	dot := s.objects[1].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(1, 1), dot.Position1)
	assert.Equal(t, fyne.NewPos(5, 5), dot.Position2)
	assert.Equal(t, color.Color(black), dot.FillColor)
}

func TestBoardWidgetExports(t *testing.T) {
	b, _ := newTestBoard(t, "rectangle")
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(drag(50, 50))
	b.MouseUp(mouse(50, 50, desktop.MouseButtonPrimary))

	var buf bytes.Buffer
	require.NoError(t, b.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	buf.Reset()
	require.NoError(t, b.ExportPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
