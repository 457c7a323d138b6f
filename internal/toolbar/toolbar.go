// Package toolbar controls the inline formatting toolbar and its
// hyperlink tool. The selection engine only ever closes it; opening is
// driven by in-block text selection, which lives outside this core.
package toolbar

import (
	"sync"

	"github.com/latticeapp/scribe/internal/caret"
	"github.com/latticeapp/scribe/internal/document"
)

// Inline is the inline formatting toolbar.
type Inline struct {
	mu     sync.Mutex
	opened bool

	// link is the toolbar's hyperlink tool.
	link *LinkTool
}

// NewInline creates a closed inline toolbar.
func NewInline() *Inline {
	return &Inline{link: NewLinkTool()}
}

// Open shows the toolbar. A no-op if already open.
func (t *Inline) Open() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opened = true
}

// Close hides the toolbar. A no-op if already closed.
func (t *Inline) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opened = false
}

// IsOpen reports whether the toolbar is showing.
func (t *Inline) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opened
}

// Link returns the toolbar's hyperlink tool.
func (t *Inline) Link() *LinkTool {
	return t.link
}

// Mark is a hyperlink annotation over a text range in one block.
type Mark struct {
	Start int
	End   int
	Href  string
}

// LinkTool wraps and unwraps text ranges with hyperlink marks.
// It is deliberately independent of the selection engine.
type LinkTool struct {
	mu    sync.Mutex
	marks map[*document.Block][]Mark
}

// NewLinkTool creates an empty link tool.
func NewLinkTool() *LinkTool {
	return &LinkTool{marks: make(map[*document.Block][]Mark)}
}

// Wrap annotates the given text range with a hyperlink.
// Collapsed ranges and ranges without a block are ignored.
func (lt *LinkTool) Wrap(r caret.Range, href string) {
	if r.Block == nil || r.IsCollapsed() {
		return
	}
	start, end := r.Start, r.End
	if start > end {
		start, end = end, start
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.marks[r.Block] = append(lt.marks[r.Block], Mark{Start: start, End: end, Href: href})
}

// Unwrap removes every mark that overlaps the given range.
func (lt *LinkTool) Unwrap(r caret.Range) {
	if r.Block == nil {
		return
	}
	start, end := r.Start, r.End
	if start > end {
		start, end = end, start
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()

	kept := lt.marks[r.Block][:0]
	for _, m := range lt.marks[r.Block] {
		if m.End <= start || m.Start >= end {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		delete(lt.marks, r.Block)
		return
	}
	lt.marks[r.Block] = kept
}

// Marks returns the block's hyperlink marks in insertion order.
func (lt *LinkTool) Marks(b *document.Block) []Mark {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	out := make([]Mark, len(lt.marks[b]))
	copy(out, lt.marks[b])
	return out
}
