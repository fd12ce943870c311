package state

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type editorProbe struct {
	redraws int
	notices []Notice
	changes [][]Shape
}

func newProbedEditor(s Settings) (*Editor, *editorProbe) {
	e := NewEditor(s)
	p := &editorProbe{}
	e.OnRedrawNeeded = func() { p.redraws++ }
	e.OnNotice = func(n Notice) { p.notices = append(p.notices, n) }
	e.OnChange = func(shapes []Shape) { p.changes = append(p.changes, shapes) }
	return e, p
}

func dragEditor(e *Editor, from, to Point) {
	e.PointerDown(from)
	e.PointerMove(to)
	e.PointerUp(to)
}

func TestEditorCommitRecordsOneUndoStep(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	require.NoError(t, e.SetTool("rectangle"))
	dragEditor(e, Pt(10, 50), Pt(40, 20))

	shapes := e.Shapes()
	require.Len(t, shapes, 1)
	r := shapes[0].(Rectangle)
	assert.Equal(t, Area{X: 10, Y: 20, Width: 30, Height: 30}, Area{r.X, r.Y, r.Width, r.Height})

	undo, redo := e.HistoryDepth()
	assert.Equal(t, 1, undo)
	assert.Equal(t, 0, redo)
	require.Len(t, p.changes, 1)
	assert.Equal(t, shapes, p.changes[0])
}

func TestEditorClickLeavesUndoStackUnchanged(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	dragEditor(e, Pt(0, 0), Pt(5, 5))
	before, _ := e.HistoryDepth()
	redraws := p.redraws

	e.PointerDown(Pt(1, 1))
	e.PointerUp(Pt(1, 1))

	after, _ := e.HistoryDepth()
	assert.Equal(t, before, after)
	assert.Len(t, e.Shapes(), 1)
	assert.Equal(t, redraws+1, p.redraws, "a click still repaints")
	assert.Len(t, p.changes, 1)
}

func TestEditorRedrawsOnEveryMove(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	e.PointerDown(Pt(0, 0))
	for i := 1; i <= 10; i++ {
		e.PointerMove(Pt(float64(i), 0))
	}
	assert.Equal(t, 10, p.redraws)
	assert.Equal(t, Dragging, e.Phase())
	assert.Len(t, e.Preview().Polyline, 11)
}

func TestEditorUndoRedoNotices(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	e.Undo()
	e.Redo()
	assert.Equal(t, []Notice{NothingToUndo, NothingToRedo}, p.notices)
	assert.Empty(t, e.Shapes())
	assert.Zero(t, p.redraws)
	assert.Empty(t, p.changes)
}

func TestEditorUndoRedoRoundTrip(t *testing.T) {
	e, _ := newProbedEditor(DefaultSettings())
	require.NoError(t, e.SetTool("line"))
	dragEditor(e, Pt(0, 0), Pt(1, 1))
	b0 := e.Shapes()
	require.NoError(t, e.SetTool("circle"))
	dragEditor(e, Pt(0, 0), Pt(10, 0))
	b1 := e.Shapes()

	e.Undo()
	assert.Equal(t, b0, e.Shapes())
	assert.True(t, e.CanRedo())
	e.Redo()
	assert.Equal(t, b1, e.Shapes())
}

func TestEditorCommitAfterUndoDropsRedo(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	dragEditor(e, Pt(0, 0), Pt(1, 1))
	dragEditor(e, Pt(2, 2), Pt(3, 3))
	e.Undo()
	dragEditor(e, Pt(4, 4), Pt(5, 5))

	assert.False(t, e.CanRedo())
	e.Redo()
	assert.Equal(t, []Notice{NothingToRedo}, p.notices)
}

func TestEditorClearIsUndoable(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	dragEditor(e, Pt(0, 0), Pt(1, 1))
	dragEditor(e, Pt(2, 2), Pt(3, 3))
	before := e.Shapes()

	e.Clear()
	assert.Empty(t, e.Shapes())
	assert.Empty(t, p.changes[len(p.changes)-1])

	e.Undo()
	assert.Equal(t, before, e.Shapes())
	e.Redo()
	assert.Empty(t, e.Shapes())
}

func TestEditorClearOnEmptyBoardStillRecords(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())
	e.Clear()
	undo, _ := e.HistoryDepth()
	assert.Equal(t, 1, undo)
	e.Undo()
	assert.Empty(t, p.notices)
}

func TestEditorClearMidDragWipesFreehandBuffer(t *testing.T) {
	e, _ := newProbedEditor(DefaultSettings())
	e.PointerDown(Pt(0, 0))
	e.PointerMove(Pt(1, 1))
	e.Clear()
	e.PointerUp(Pt(1, 1))

	assert.Empty(t, e.Shapes())
	undo, _ := e.HistoryDepth()
	assert.Equal(t, 1, undo, "only the clear is recorded")
}

func TestEditorRejectsBadBoundaryValues(t *testing.T) {
	e, p := newProbedEditor(DefaultSettings())

	assert.ErrorIs(t, e.SetTool("spray"), ErrUnknownTool)
	assert.Equal(t, ToolFreehand, e.Tool())

	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, e.SetStrokeWidth(w), ErrInvalidStrokeWidth)
	}
	assert.Equal(t, 1.0, e.StrokeWidth())

	assert.ErrorIs(t, e.SetColor(nil), ErrInvalidColor)
	assert.Equal(t, black, e.Color())
	assert.Zero(t, p.redraws)
}

func TestEditorSetColorConvertsToNRGBA(t *testing.T) {
	e, _ := newProbedEditor(DefaultSettings())
	require.NoError(t, e.SetColor(color.RGBA{R: 0xff, A: 0xff}))
	require.NoError(t, e.SetStrokeWidth(6))
	dragEditor(e, Pt(0, 0), Pt(1, 1))

	c, w := e.Shapes()[0].Stroke()
	assert.Equal(t, red, c)
	assert.Equal(t, 6.0, w)
}

func TestEditorHistoryLimit(t *testing.T) {
	s := DefaultSettings()
	s.HistoryLimit = 1
	e, p := newProbedEditor(s)
	dragEditor(e, Pt(0, 0), Pt(1, 1))
	dragEditor(e, Pt(0, 0), Pt(2, 2))
	e.Undo()
	e.Undo()
	assert.Len(t, e.Shapes(), 1)
	assert.Equal(t, []Notice{NothingToUndo}, p.notices)
}

func TestNoticeString(t *testing.T) {
	assert.Equal(t, "Nothing to undo!", NothingToUndo.String())
	assert.Equal(t, "Nothing to redo!", NothingToRedo.String())
}
