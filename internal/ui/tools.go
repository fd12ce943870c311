package ui

import (
	"image/color"

	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette is the quick-pick row next to the color picker.
var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// colorSwatch is a tappable square of one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls that feed tool, color and stroke width into the
// editor, plus the history and export actions.
type Toolbar struct {
	editor *state.Editor
	board  *BoardWidget
	win    fyne.Window

	Tools   *widget.Select
	Current *canvas.Rectangle
	Stroke  *widget.Slider
	Actions *widget.Toolbar
}

func NewToolbar(editor *state.Editor, board *BoardWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{editor: editor, board: board, win: win}

	var names []string
	for _, tool := range state.Tools() {
		names = append(names, tool.String())
	}
	t.Tools = widget.NewSelect(names, func(name string) {
		if err := editor.SetTool(name); err != nil {
			dialog.ShowError(err, win)
		}
	})
	t.Tools.SetSelected(editor.Tool().String())

	t.Current = canvas.NewRectangle(editor.Color())
	t.Current.SetMinSize(fyne.NewSize(32, 32))
	t.Current.StrokeColor = color.Gray{Y: 150}
	t.Current.StrokeWidth = 1

	t.Stroke = widget.NewSlider(1, 10)
	t.Stroke.Step = 1
	t.Stroke.SetValue(editor.StrokeWidth())
	t.Stroke.OnChanged = func(w float64) {
		if err := editor.SetStrokeWidth(w); err != nil {
			dialog.ShowError(err, win)
		}
	}

	t.Actions = widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), editor.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), editor.Redo),
		widget.NewToolbarAction(theme.ContentClearIcon(), editor.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { t.board.SavePNG(win) }),
		widget.NewToolbarAction(theme.FileIcon(), func() { t.board.SavePDF(win) }),
	)
	return t
}

// PickColor applies c to the editor and the current-color indicator.
func (t *Toolbar) PickColor(c color.Color) {
	if err := t.editor.SetColor(c); err != nil {
		dialog.ShowError(err, t.win)
		return
	}
	t.Current.FillColor = t.editor.Color()
	t.Current.Refresh()
}

func (t *Toolbar) showPicker() {
	picker := dialog.NewColorPicker("Pick a Color", "Stroke color", t.PickColor, t.win)
	picker.Advanced = true
	picker.Show()
}

// Object lays the controls out in one row.
func (t *Toolbar) Object() fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.PickColor))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.Stroke)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		t.Tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		container.NewStack(t.Current),
		swatches,
		widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.showPicker),
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		t.Actions,
		layout.NewSpacer(),
	)
}
