package ui

import (
	"image/color"

	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var gridColor = color.NRGBA{R: 220, G: 220, B: 220, A: 100}

// ViewerWidget shows a mirrored board. It never produces shapes of its own.
type ViewerWidget struct {
	widget.BaseWidget

	shapes   []state.Shape
	showGrid bool
	gridSize float32
}

var _ fyne.Widget = (*ViewerWidget)(nil)

func NewViewerWidget() *ViewerWidget {
	v := &ViewerWidget{gridSize: 50}
	v.ExtendBaseWidget(v)
	return v
}

// SetShapes replaces the mirrored draw-list. Call it on the UI goroutine.
func (v *ViewerWidget) SetShapes(shapes []state.Shape) {
	v.shapes = shapes
	v.Refresh()
}

func (v *ViewerWidget) Shapes() []state.Shape { return v.shapes }

func (v *ViewerWidget) ToggleGrid() {
	v.showGrid = !v.showGrid
	v.Refresh()
}

func (v *ViewerWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &viewerRenderer{viewer: v, background: canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255})}
	r.rebuild()
	return r
}

type viewerRenderer struct {
	viewer     *ViewerWidget
	background *canvas.Rectangle
	size       fyne.Size
	objects    []fyne.CanvasObject
}

func (r *viewerRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	if r.viewer.showGrid {
		objects = append(objects, r.grid()...)
	}
	s := &objectSurface{objects: objects}
	state.Paint(s, r.viewer.shapes, state.Preview{})
	r.objects = s.objects
}

// grid covers the visible area, or the drawing when it reaches further.
func (r *viewerRenderer) grid() []fyne.CanvasObject {
	w, h := r.size.Width, r.size.Height
	if area, ok := state.BoundsOf(r.viewer.shapes); ok {
		w = max(w, float32(area.X+area.Width))
		h = max(h, float32(area.Y+area.Height))
	}

	var lines []fyne.CanvasObject
	for x := float32(0); x < w; x += r.viewer.gridSize {
		lines = append(lines, gridLine(fyne.NewPos(x, 0), fyne.NewPos(x, h)))
	}
	for y := float32(0); y < h; y += r.viewer.gridSize {
		lines = append(lines, gridLine(fyne.NewPos(0, y), fyne.NewPos(w, y)))
	}
	return lines
}

func gridLine(from, to fyne.Position) *canvas.Line {
	line := canvas.NewLine(gridColor)
	line.Position1 = from
	line.Position2 = to
	line.StrokeWidth = 0.5
	return line
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *viewerRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.viewer)
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if size != r.size {
		r.size = size
		if r.viewer.showGrid {
			r.rebuild()
		}
	}
}

// MinSize grows with the drawing so a scroll container can reach all of it.
func (r *viewerRenderer) MinSize() fyne.Size {
	size := fyne.NewSize(300, 300)
	if area, ok := state.BoundsOf(r.viewer.shapes); ok {
		size = size.Max(fyne.NewSize(float32(area.X+area.Width), float32(area.Y+area.Height)))
	}
	return size
}

func (r *viewerRenderer) Destroy() {}
