// Package pointer models pointer (mouse) input against the rendered
// node tree and translates terminal mouse events into the editor's
// pointer event stream.
package pointer

import (
	"github.com/latticeapp/scribe/internal/dom"
	"github.com/latticeapp/scribe/internal/input/key"
)

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) pointer button.
	ButtonLeft
	// ButtonMiddle is the middle button (wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of pointer action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionOver indicates the pointer crossed from one node into
	// another.
	ActionOver
	// ActionDragStart indicates the host began a native drag.
	ActionDragStart
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionOver:
		return "over"
	case ActionDragStart:
		return "dragstart"
	default:
		return "none"
	}
}

// Position represents a screen coordinate in cells.
type Position struct {
	X int
	Y int
}

// Event is one pointer event.
type Event struct {
	// Position is the pointer's screen coordinates.
	Position Position

	// Button is the button involved, if any.
	Button Button

	// Modifiers are keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of pointer action.
	Action Action

	// Target is the deepest node under the pointer.
	Target *dom.Node

	// RelatedTarget is the node the pointer left, for ActionOver.
	// It may be nil when the pointer entered from outside the tree.
	RelatedTarget *dom.Node
}
