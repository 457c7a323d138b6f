package document

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/latticeapp/scribe/internal/dom"
)

// Block is one identity-stable unit of document content. Blocks are
// created and ordered by the Container; selection code only reads
// positions and toggles the selected flag.
type Block struct {
	// ID is a stable unique identifier for the block.
	ID string

	// Tool names the block's content type (e.g. "paragraph", "header").
	Tool string

	// Text is the block's plain-text content.
	Text string

	// data is the tool's JSON payload, queried through gjson.
	data []byte

	// holder is the block's rendered container node.
	holder *dom.Node

	// selected reports whether the block is part of the current
	// cross-block selection.
	selected bool
}

// NewBlock creates a block of the given tool type with plain-text
// content and an optional JSON data payload.
func NewBlock(tool, text string, data []byte) *Block {
	b := &Block{
		ID:   uuid.NewString(),
		Tool: tool,
		Text: text,
		data: data,
	}
	b.holder = dom.NewNode("block")
	return b
}

// Holder returns the block's rendered container node.
func (b *Block) Holder() *dom.Node {
	return b.holder
}

// Selected reports whether the block is currently selected.
func (b *Block) Selected() bool {
	return b.selected
}

// SetSelected sets the block's selected flag.
func (b *Block) SetSelected(selected bool) {
	b.selected = selected
}

// Data queries the block's JSON payload by gjson path.
// Returns a zero Result if the block carries no payload.
func (b *Block) Data(path string) gjson.Result {
	if len(b.data) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(b.data, path)
}

// RawData returns the block's JSON payload as stored.
func (b *Block) RawData() []byte {
	return b.data
}
