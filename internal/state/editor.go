package state

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
)

// Notice is a user-facing, non-error condition.
type Notice int

const (
	NothingToUndo Notice = iota + 1
	NothingToRedo
)

func (n Notice) String() string {
	switch n {
	case NothingToUndo:
		return "Nothing to undo!"
	case NothingToRedo:
		return "Nothing to redo!"
	}
	return fmt.Sprintf("Notice(%d)", int(n))
}

var (
	ErrInvalidStrokeWidth = errors.New("stroke width must be a positive finite number")
	ErrInvalidColor       = errors.New("color must not be nil")
)

// Settings seeds the interaction state at startup.
type Settings struct {
	Tool         Tool
	Color        color.NRGBA
	StrokeWidth  float64
	HistoryLimit int
}

func DefaultSettings() Settings {
	return Settings{
		Tool:        ToolFreehand,
		Color:       color.NRGBA{A: 0xff},
		StrokeWidth: 1,
	}
}

// Editor is the drawing core: board, history and interaction machine behind
// one synchronous event API. Every method must be called from the same
// goroutine; none of them block.
type Editor struct {
	board   *DrawingBoard
	history *History
	machine *Machine

	// OnRedrawNeeded asks the renderer to repaint.
	OnRedrawNeeded func()
	// OnNotice reports conditions to show the user, such as an empty undo stack.
	OnNotice func(Notice)
	// OnChange receives the new draw-list after every board mutation.
	OnChange func(shapes []Shape)
}

func NewEditor(s Settings) *Editor {
	return &Editor{
		board:   NewDrawingBoard(),
		history: NewHistory(s.HistoryLimit),
		machine: NewMachine(s.Tool, s.Color, s.StrokeWidth),
	}
}

// SetTool selects a tool by name. Unknown names are rejected and leave the
// current tool in place.
func (e *Editor) SetTool(name string) error {
	t, err := ParseTool(name)
	if err != nil {
		return err
	}
	e.SelectTool(t)
	return nil
}

func (e *Editor) SelectTool(t Tool) {
	e.machine.SetTool(t)
	e.redraw()
}

// SetColor sets the color captured by shapes created from now on.
func (e *Editor) SetColor(c color.Color) error {
	if c == nil {
		return ErrInvalidColor
	}
	e.machine.SetColor(color.NRGBAModel.Convert(c).(color.NRGBA))
	return nil
}

// SetStrokeWidth sets the width captured by shapes created from now on.
func (e *Editor) SetStrokeWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStrokeWidth, w)
	}
	e.machine.SetStrokeWidth(w)
	return nil
}

func (e *Editor) PointerDown(p Point) {
	e.machine.PointerDown(p)
}

func (e *Editor) PointerMove(p Point) {
	if e.machine.PointerMove(p) {
		e.redraw()
	}
}

// PointerUp finishes the gesture. A real drag commits one shape and one undo
// step; a click without movement commits nothing.
func (e *Editor) PointerUp(p Point) {
	tool := e.machine.Tool()
	shape, ok := e.machine.PointerUp(p)
	if ok {
		e.history.RecordBeforeMutation(e.board)
		e.board.AddShape(shape)
		log.Printf("[EDITOR] Committed %s %s (%d shapes)", tool, shape.ShapeID(), e.board.Len())
		e.changed()
	}
	e.redraw()
}

// Undo steps back one committing action.
func (e *Editor) Undo() {
	if !e.history.Undo(e.board) {
		e.notify(NothingToUndo)
		return
	}
	log.Printf("[EDITOR] Undo (%d shapes)", e.board.Len())
	e.changed()
	e.redraw()
}

// Redo re-applies the last undone action.
func (e *Editor) Redo() {
	if !e.history.Redo(e.board) {
		e.notify(NothingToRedo)
		return
	}
	log.Printf("[EDITOR] Redo (%d shapes)", e.board.Len())
	e.changed()
	e.redraw()
}

// Clear empties the board as one undoable action, even when it is already
// empty.
func (e *Editor) Clear() {
	e.history.RecordBeforeMutation(e.board)
	e.board.ClearShapes()
	e.machine.DropBuffer()
	log.Printf("[EDITOR] Cleared board")
	e.changed()
	e.redraw()
}

// Shapes returns the committed draw-list in paint order.
func (e *Editor) Shapes() []Shape { return e.board.Shapes() }

// Preview returns the live, uncommitted feedback for the current drag.
func (e *Editor) Preview() Preview { return e.machine.Preview() }

// Paint draws the board and the live preview onto s.
func (e *Editor) Paint(s Surface) { Paint(s, e.board.shapes, e.machine.Preview()) }

func (e *Editor) Tool() Tool { return e.machine.Tool() }
func (e *Editor) Color() color.NRGBA { return e.machine.Color() }
func (e *Editor) StrokeWidth() float64 { return e.machine.StrokeWidth() }
func (e *Editor) Phase() Phase { return e.machine.Phase() }
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// HistoryDepth returns the sizes of the undo and redo stacks.
func (e *Editor) HistoryDepth() (undo, redo int) { return e.history.Depth() }

func (e *Editor) redraw() {
	if e.OnRedrawNeeded != nil {
		e.OnRedrawNeeded()
	}
}

func (e *Editor) notify(n Notice) {
	log.Printf("[EDITOR] %s", n)
	if e.OnNotice != nil {
		e.OnNotice(n)
	}
}

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.board.Shapes())
	}
}
