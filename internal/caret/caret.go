// Package caret is the native text-selection stand-in: it tracks
// in-block text ranges and the caret, and offers the save/restore
// used while overlay inputs temporarily own the real selection.
package caret

import (
	"github.com/rivo/uniseg"

	"github.com/latticeapp/scribe/internal/document"
)

// Position names a caret placement inside a block.
type Position uint8

const (
	// Start places the caret before the block's first grapheme.
	Start Position = iota
	// End places the caret after the block's last grapheme.
	End
)

// String returns a human-readable name for the position.
func (p Position) String() string {
	if p == End {
		return "end"
	}
	return "start"
}

// Range is a text range inside one block.
// Offsets are grapheme-cluster counts, Start <= End not required.
type Range struct {
	Block *document.Block
	Start int
	End   int
}

// IsCollapsed returns true if the range selects no text.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// Selection tracks the document's text ranges and caret.
type Selection struct {
	ranges []Range
	saved  []Range

	caretBlock  *document.Block
	caretOffset int
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// IsCollapsed returns true when no range selects any text.
// An empty selection counts as collapsed.
func (s *Selection) IsCollapsed() bool {
	for _, r := range s.ranges {
		if !r.IsCollapsed() {
			return false
		}
	}
	return true
}

// Ranges returns the active ranges.
func (s *Selection) Ranges() []Range {
	return s.ranges
}

// AddRange adds a text range to the selection.
// Ranges with a nil block are ignored.
func (s *Selection) AddRange(r Range) {
	if r.Block == nil {
		return
	}
	s.ranges = append(s.ranges, r)
}

// RemoveAllRanges drops every active text range. The caret position is
// left untouched.
func (s *Selection) RemoveAllRanges() {
	s.ranges = nil
}

// Save snapshots the active ranges so an overlay input can take over
// the real selection. A later Restore brings them back.
func (s *Selection) Save() {
	s.saved = make([]Range, len(s.ranges))
	copy(s.saved, s.ranges)
}

// Restore reinstates the ranges captured by the last Save.
func (s *Selection) Restore() {
	s.ranges = make([]Range, len(s.saved))
	copy(s.ranges, s.saved)
}

// SetCaret collapses the selection to a caret at the start or end of
// the given block. The end offset is the block text's grapheme-cluster
// count, not its byte or rune length. A nil block is ignored.
func (s *Selection) SetCaret(b *document.Block, pos Position) {
	if b == nil {
		return
	}
	offset := 0
	if pos == End {
		offset = uniseg.GraphemeClusterCount(b.Text)
	}
	s.ranges = []Range{{Block: b, Start: offset, End: offset}}
	s.caretBlock = b
	s.caretOffset = offset
}

// Caret returns the block and grapheme offset of the caret, and false
// if no caret has been placed.
func (s *Selection) Caret() (*document.Block, int, bool) {
	if s.caretBlock == nil {
		return nil, 0, false
	}
	return s.caretBlock, s.caretOffset, true
}
