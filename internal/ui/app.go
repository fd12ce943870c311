package ui

import (
	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const Title = "Simple Drawing Board"

// Options sizes a window and sets the text of its status bar.
type Options struct {
	Width, Height float32
	Status        string
}

// NewEditorWindow builds the drawing window around editor and wires the
// editor's redraw and notice callbacks to it.
func NewEditorWindow(a fyne.App, editor *state.Editor, opts Options) (fyne.Window, *BoardWidget) {
	w := a.NewWindow(Title)
	w.Resize(fyne.NewSize(opts.Width, opts.Height))

	board := NewBoardWidget(editor)
	editor.OnRedrawNeeded = board.Refresh
	editor.OnNotice = func(n state.Notice) {
		dialog.ShowInformation("Notice", n.String(), w)
	}

	toolbar := NewToolbar(editor, board, w)

	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Export PNG...", func() { board.SavePNG(w) }),
			fyne.NewMenuItem("Export PDF...", func() { board.SavePDF(w) }),
		),
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Undo", editor.Undo),
			fyne.NewMenuItem("Redo", editor.Redo),
			fyne.NewMenuItem("Clear", editor.Clear),
		),
	))
	// the desktop driver reports Ctrl+Z, Ctrl+Y and Ctrl+C as these
	addShortcut(w, &fyne.ShortcutUndo{}, editor.Undo)
	addShortcut(w, &fyne.ShortcutRedo{}, editor.Redo)
	addShortcut(w, &fyne.ShortcutCopy{}, editor.Clear)

	content := container.NewBorder(toolbar.Object(), statusBar(opts.Status), nil, nil, board)
	w.SetContent(content)
	return w, board
}

// NewViewerWindow builds the read-only mirror window.
func NewViewerWindow(a fyne.App, viewer *ViewerWidget, opts Options) (fyne.Window, *widget.Label) {
	w := a.NewWindow(Title + " (viewer)")
	w.Resize(fyne.NewSize(opts.Width, opts.Height))

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.GridIcon(), viewer.ToggleGrid),
	)
	status := widget.NewLabel(opts.Status)
	content := container.NewBorder(tb, status, nil, nil, container.NewScroll(viewer))
	w.SetContent(content)
	return w, status
}

func addShortcut(w fyne.Window, sc fyne.Shortcut, fn func()) {
	w.Canvas().AddShortcut(sc, func(fyne.Shortcut) { fn() })
}

func statusBar(text string) fyne.CanvasObject {
	if text == "" {
		return nil
	}
	return widget.NewLabel(text)
}
