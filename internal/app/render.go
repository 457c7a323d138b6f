package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/latticeapp/scribe/internal/dom"
)

// layout recomputes node rectangles from the current screen size.
func (a *App) layout() {
	if a.screen == nil {
		return
	}
	w, h := a.screen.Size()
	a.LayoutArea(w, h)
}

// LayoutArea lays the document out into the given area: one row per
// block, scrolled by the viewport. Off-screen blocks get an empty
// rectangle so hit testing misses them.
func (a *App) LayoutArea(width, height int) {
	a.vp.Resize(height)
	a.vp.SetTotal(a.doc.Len())

	a.doc.Root().Rect = dom.Rect{X: 0, Y: 0, Width: width, Height: height}

	top := a.vp.Top()
	for i, b := range a.doc.Blocks() {
		holder := b.Holder()
		if a.vp.IsVisible(i) {
			holder.Rect = dom.Rect{X: 0, Y: i - top, Width: width, Height: 1}
		} else {
			holder.Rect = dom.Rect{}
		}
	}
}

// render paints the visible blocks.
func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Clear()

	width, _ := a.screen.Size()
	top := a.vp.Top()
	current := a.doc.CurrentIndex()

	for i, b := range a.doc.Blocks() {
		if !a.vp.IsVisible(i) {
			continue
		}
		y := i - top

		style := tcell.StyleDefault
		if b.Selected() {
			style = a.theme.SelectionStyle(style)
		}

		marker := ' '
		if i == current {
			marker = '>'
		}
		a.screen.SetContent(0, y, marker, nil, tcell.StyleDefault.Foreground(a.theme.SelectionColor()))

		x := 2
		for _, r := range b.Text {
			if x >= width {
				break
			}
			a.screen.SetContent(x, y, r, nil, style)
			x++
		}
		// Extend the highlight across the row so the selection reads
		// as block-level.
		if b.Selected() {
			for ; x < width; x++ {
				a.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	a.screen.Show()
}
