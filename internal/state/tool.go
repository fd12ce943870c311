package state

import (
	"errors"
	"fmt"
)

// Tool selects what a drag produces.
type Tool int

const (
	ToolFreehand Tool = iota
	ToolRectangle
	ToolCircle
	ToolLine
)

var ErrUnknownTool = errors.New("unknown tool")

var toolNames = [...]string{
	ToolFreehand:  "freehand",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
	ToolLine:      "line",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Tools lists every tool in menu order.
func Tools() []Tool {
	return []Tool{ToolFreehand, ToolRectangle, ToolCircle, ToolLine}
}

// ParseTool maps a tool name to a Tool. Names are exact and lower case.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}
