package state

// History is the linear undo/redo store. Both stacks hold Mementos; the top
// of each stack is the last element.
type History struct {
	undo []Memento
	redo []Memento

	// Limit caps the undo depth; the oldest snapshot is dropped first.
	// Zero means unlimited.
	Limit int
}

func NewHistory(limit int) *History {
	return &History{Limit: limit}
}

// RecordBeforeMutation snapshots board onto the undo stack and discards the
// redo branch. Call it exactly once per committing action, before the
// mutation.
func (h *History) RecordBeforeMutation(board *DrawingBoard) {
	h.pushUndo(board.Save())
	h.redo = nil
}

// Undo restores the previous board state. It reports false, leaving the
// board untouched, when there is nothing to undo.
func (h *History) Undo(board *DrawingBoard) bool {
	if len(h.undo) == 0 {
		return false
	}
	h.redo = append(h.redo, board.Save())
	m := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	board.Restore(m)
	return true
}

// Redo re-applies the most recently undone state. It reports false, leaving
// the board untouched, when there is nothing to redo.
func (h *History) Redo(board *DrawingBoard) bool {
	if len(h.redo) == 0 {
		return false
	}
	h.pushUndo(board.Save())
	m := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	board.Restore(m)
	return true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) { return len(h.undo), len(h.redo) }

// Reset drops all history.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

func (h *History) pushUndo(m Memento) {
	h.undo = append(h.undo, m)
	if h.Limit > 0 && len(h.undo) > h.Limit {
		h.undo = append([]Memento(nil), h.undo[len(h.undo)-h.Limit:]...)
	}
}
