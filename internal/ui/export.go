package ui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"LocalSketch/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// ExportPNG writes the committed shapes at the board's current size.
func (b *BoardWidget) ExportPNG(w io.Writer) error {
	size := b.Size()
	return export.WritePNG(w, b.editor.Shapes(), int(size.Width), int(size.Height))
}

func (b *BoardWidget) ExportPDF(w io.Writer) error {
	return export.WritePDF(w, b.editor.Shapes())
}

func (b *BoardWidget) SavePNG(win fyne.Window) {
	saveAs(win, "drawing.png", b.ExportPNG)
}

func (b *BoardWidget) SavePDF(win fyne.Window) {
	saveAs(win, "drawing.pdf", b.ExportPDF)
}

// saveAs asks for a destination and hands it to write.
func saveAs(win fyne.Window, name string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		if err := writeAndClose(writer, write); err != nil {
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[EXPORT] saved %s", writer.URI())
	}, win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{filepath.Ext(name)}))
	d.Show()
}

func writeAndClose(w io.WriteCloser, write func(io.Writer) error) error {
	if err := write(w); err != nil {
		w.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export: closing file: %w", err)
	}
	return nil
}
