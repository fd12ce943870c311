package state

import "image/color"

// Phase is the state of the pointer gesture.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Machine turns pointer events into shapes. It holds only transient
// interaction state; the board and history are passed in by the Editor.
type Machine struct {
	tool        Tool
	color       color.NRGBA
	strokeWidth float64

	phase Phase
	start *Point
	end   *Point
	// moved is set by the first pointer-move after pointer-down. A release
	// without it is a click and commits nothing.
	moved  bool
	buffer []Point
}

func NewMachine(tool Tool, c color.NRGBA, strokeWidth float64) *Machine {
	return &Machine{tool: tool, color: c, strokeWidth: strokeWidth}
}

func (m *Machine) Tool() Tool { return m.tool }
func (m *Machine) Color() color.NRGBA { return m.color }
func (m *Machine) StrokeWidth() float64 { return m.strokeWidth }
func (m *Machine) Phase() Phase { return m.phase }
func (m *Machine) SetColor(c color.NRGBA) { m.color = c }
func (m *Machine) SetStrokeWidth(w float64) { m.strokeWidth = w }

// SetTool switches tools. Leaving freehand drops the point buffer; an
// in-progress drag carries on with the new tool.
func (m *Machine) SetTool(t Tool) {
	m.tool = t
	if t != ToolFreehand {
		m.buffer = nil
	}
}

// PointerDown starts a gesture at p.
func (m *Machine) PointerDown(p Point) {
	m.phase = Dragging
	m.start = &p
	m.end = nil
	m.moved = false
	m.buffer = nil
	if m.tool == ToolFreehand {
		m.buffer = []Point{p}
	}
}

// PointerMove extends the gesture. It reports whether a redraw is needed,
// which is every move while the pointer is down.
func (m *Machine) PointerMove(p Point) bool {
	if m.phase != Dragging {
		return false
	}
	m.end = &p
	m.moved = true
	if m.tool == ToolFreehand {
		m.buffer = append(m.buffer, p)
	}
	return true
}

// PointerUp ends the gesture at p and returns the shape to commit, if any.
// The machine is back in Idle afterwards either way.
func (m *Machine) PointerUp(p Point) (Shape, bool) {
	defer m.reset()
	if m.phase != Dragging || !m.moved || m.start == nil {
		return nil, false
	}
	switch m.tool {
	case ToolFreehand:
		if len(m.buffer) == 0 {
			return nil, false
		}
		return NewFreeDraw(m.buffer, m.color, m.strokeWidth), true
	case ToolRectangle:
		return RectangleFromDrag(*m.start, p, m.color, m.strokeWidth), true
	case ToolCircle:
		return CircleFromDrag(*m.start, p, m.color, m.strokeWidth), true
	case ToolLine:
		return LineFromDrag(*m.start, p, m.color, m.strokeWidth), true
	}
	return nil, false
}

// DropBuffer discards collected freehand points without ending the gesture.
func (m *Machine) DropBuffer() { m.buffer = nil }

// Buffer returns a copy of the freehand points collected so far.
func (m *Machine) Buffer() []Point { return append([]Point(nil), m.buffer...) }

// Preview returns what the renderer should draw on top of the board.
func (m *Machine) Preview() Preview {
	if m.phase != Dragging {
		return Preview{}
	}
	if m.tool == ToolFreehand {
		if len(m.buffer) == 0 {
			return Preview{}
		}
		return Preview{Polyline: m.Buffer(), Color: m.color, StrokeWidth: m.strokeWidth}
	}
	if m.start == nil || m.end == nil {
		return Preview{}
	}
	// preview shapes are never committed and carry no ID
	st := style{Color: m.color, StrokeWidth: m.strokeWidth}
	s, e := *m.start, *m.end
	var sh Shape
	switch m.tool {
	case ToolRectangle:
		sh = rectangleFromDrag(st, s, e)
	case ToolCircle:
		sh = circleFromDrag(st, s, e)
	case ToolLine:
		sh = lineFromDrag(st, s, e)
	}
	return Preview{Shape: sh, Color: m.color, StrokeWidth: m.strokeWidth}
}

func (m *Machine) reset() {
	m.phase = Idle
	m.start = nil
	m.end = nil
	m.moved = false
	m.buffer = nil
}
