// Package viewport tracks which block rows are visible and scrolls
// blocks into view on request.
package viewport

import "sync"

// Align names where a revealed row should land in the viewport.
type Align uint8

const (
	// AlignNearest scrolls the minimum distance that makes the row
	// visible: rows above the viewport land on the top edge, rows
	// below it on the bottom edge.
	AlignNearest Align = iota
	// AlignStart puts the row at the top of the viewport.
	AlignStart
	// AlignCenter centers the row in the viewport.
	AlignCenter
)

// Viewport is a window of visible rows over the document's block rows.
type Viewport struct {
	mu     sync.RWMutex
	top    int
	height int
	total  int
}

// New creates a viewport of the given height over total rows.
func New(height, total int) *Viewport {
	v := &Viewport{}
	v.Resize(height)
	v.SetTotal(total)
	return v
}

// Resize sets the viewport height, clamping the scroll position.
func (v *Viewport) Resize(height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if height < 0 {
		height = 0
	}
	v.height = height
	v.top = v.clamp(v.top)
}

// SetTotal sets the number of document rows, clamping the scroll
// position.
func (v *Viewport) SetTotal(total int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if total < 0 {
		total = 0
	}
	v.total = total
	v.top = v.clamp(v.top)
}

// Top returns the first visible row.
func (v *Viewport) Top() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.top
}

// Height returns the viewport height in rows.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// IsVisible reports whether the row is currently in view.
func (v *Viewport) IsVisible(row int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height > 0 && row >= v.top && row < v.top+v.height
}

// ScrollTo moves the top of the viewport to the given row, clamped to
// the document bounds.
func (v *Viewport) ScrollTo(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top = v.clamp(row)
}

// EnsureVisible scrolls the given row into view with the requested
// alignment. Returns true if the viewport moved. Rows already visible
// are left alone under AlignNearest.
func (v *Viewport) EnsureVisible(row int, align Align) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.height <= 0 || v.total == 0 {
		return false
	}
	if row < 0 {
		row = 0
	}
	if row >= v.total {
		row = v.total - 1
	}

	target := v.top
	switch align {
	case AlignStart:
		target = row
	case AlignCenter:
		target = row - v.height/2
	default: // AlignNearest
		switch {
		case row < v.top:
			target = row
		case row >= v.top+v.height:
			target = row - v.height + 1
		default:
			return false
		}
	}

	target = v.clamp(target)
	if target == v.top {
		return false
	}
	v.top = target
	return true
}

// clamp bounds a candidate top row. Callers hold the lock.
func (v *Viewport) clamp(top int) int {
	maxTop := v.total - v.height
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}
