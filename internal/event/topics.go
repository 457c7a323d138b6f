package event

// Pointer event topics.
const (
	// TopicPointerDown is published when a pointer button is pressed.
	TopicPointerDown Topic = "pointer.down"

	// TopicPointerOver is published when the pointer crosses from one
	// node into another.
	TopicPointerOver Topic = "pointer.over"

	// TopicPointerUp is published when a pointer button is released.
	TopicPointerUp Topic = "pointer.up"

	// TopicDragStart is published when the host begins a native drag.
	TopicDragStart Topic = "pointer.dragstart"
)

// Key event topics.
const (
	// TopicKeyDown is published when a key is pressed.
	TopicKeyDown Topic = "key.down"
)

// Selection event topics.
const (
	// TopicSelectionChanged is published after block selection flags
	// change during a cross-block gesture.
	TopicSelectionChanged Topic = "selection.changed"

	// TopicSelectionCleared is published when the block selection is
	// cleared.
	TopicSelectionCleared Topic = "selection.cleared"

	// TopicCaretMoved is published when the caret is repositioned.
	TopicCaretMoved Topic = "caret.moved"
)

// SelectionChanged is published on TopicSelectionChanged.
type SelectionChanged struct {
	// SelectedCount is the number of blocks currently selected.
	SelectedCount int
}

// SelectionCleared is published on TopicSelectionCleared.
type SelectionCleared struct {
	// Reason describes what cleared the selection (e.g. "escape",
	// "dragstart", "pointer").
	Reason string
}

// CaretMoved is published on TopicCaretMoved.
type CaretMoved struct {
	// BlockID is the identity of the block holding the caret.
	BlockID string

	// Offset is the caret's grapheme offset within the block.
	Offset int
}
