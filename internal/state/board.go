package state

// DrawingBoard is the ordered list of committed shapes. Index order is paint
// order: later shapes are drawn on top. It is owned by the UI goroutine and
// takes no locks.
type DrawingBoard struct {
	shapes []Shape
}

func NewDrawingBoard() *DrawingBoard {
	return &DrawingBoard{shapes: make([]Shape, 0)}
}

// AddShape appends s to the top of the z-order.
func (b *DrawingBoard) AddShape(s Shape) {
	b.shapes = append(b.shapes, s)
}

// ClearShapes empties the board. Calling it on an empty board is a no-op.
func (b *DrawingBoard) ClearShapes() {
	b.shapes = b.shapes[:0:0]
}

// Shapes returns the draw-list in paint order. The returned slice is a copy;
// shapes themselves are immutable values so they are shared.
func (b *DrawingBoard) Shapes() []Shape {
	return append([]Shape(nil), b.shapes...)
}

func (b *DrawingBoard) Len() int { return len(b.shapes) }

// Save captures the current sequence. Later board mutations are never
// visible through the returned Memento.
func (b *DrawingBoard) Save() Memento {
	return Memento{shapes: append([]Shape(nil), b.shapes...)}
}

// Restore replaces the whole sequence with the memento's contents.
func (b *DrawingBoard) Restore(m Memento) {
	b.shapes = append(make([]Shape, 0, len(m.shapes)), m.shapes...)
}

// Memento is an immutable snapshot of a board.
type Memento struct {
	shapes []Shape
}

// Shapes returns a copy of the snapshot's sequence.
func (m Memento) Shapes() []Shape {
	return append([]Shape(nil), m.shapes...)
}

func (m Memento) Len() int { return len(m.shapes) }
