package selection

import (
	"github.com/latticeapp/scribe/internal/caret"
	"github.com/latticeapp/scribe/internal/document"
	"github.com/latticeapp/scribe/internal/event"
)

// Store owns the aggregate view of block selection: a cached
// "is anything selected" answer over the live block sequence, and the
// clearing operations the engine and the host delegate to. Individual
// selected flags live on the blocks themselves.
type Store struct {
	doc     *document.Container
	sel     *caret.Selection
	emitter *event.Emitter

	// anyCached holds the memoized AnyBlockSelected answer.
	// nil means the next read must rescan.
	anyCached *bool
}

// NewStore creates a store over the given document.
func NewStore(doc *document.Container, sel *caret.Selection, emitter *event.Emitter) *Store {
	return &Store{
		doc:     doc,
		sel:     sel,
		emitter: emitter,
	}
}

// AnyBlockSelected reports whether any block is currently selected.
// The scan result is cached until InvalidateCache.
func (s *Store) AnyBlockSelected() bool {
	if s.anyCached != nil {
		return *s.anyCached
	}
	any := false
	for _, b := range s.doc.Blocks() {
		if b.Selected() {
			any = true
			break
		}
	}
	s.anyCached = &any
	return any
}

// SelectedCount returns the number of selected blocks. Never cached.
func (s *Store) SelectedCount() int {
	count := 0
	for _, b := range s.doc.Blocks() {
		if b.Selected() {
			count++
		}
	}
	return count
}

// InvalidateCache drops the memoized aggregate. Called after every
// selected-flag mutation.
func (s *Store) InvalidateCache() {
	s.anyCached = nil
}

// ClearSelection deselects every block and announces the clear.
// Reason describes the trigger (e.g. "escape", "dragstart").
func (s *Store) ClearSelection(reason string) {
	changed := false
	for _, b := range s.doc.Blocks() {
		if b.Selected() {
			b.SetSelected(false)
			changed = true
		}
	}
	if !changed {
		return
	}
	s.InvalidateCache()
	if s.emitter != nil {
		s.emitter.Emit(event.TopicSelectionCleared, event.SelectionCleared{Reason: reason})
	}
}

// ClearNonBlockSelection drops native text ranges while leaving block
// selected flags alone. Used when a cross-block gesture starts on top
// of an in-block text selection.
func (s *Store) ClearNonBlockSelection() {
	s.sel.RemoveAllRanges()
}
