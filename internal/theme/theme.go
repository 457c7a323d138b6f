// Package theme derives the terminal styles used to paint selected
// blocks.
package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the resolved selection highlight colors.
type Theme struct {
	selection colorful.Color
	blend     float64
}

// New builds a theme from a hex highlight color and a blend strength.
// Blend is clamped to [0, 1]: 0 leaves block backgrounds untouched,
// 1 replaces them with the highlight color outright.
func New(selectionHex string, blend float64) (*Theme, error) {
	c, err := colorful.Hex(selectionHex)
	if err != nil {
		return nil, fmt.Errorf("theme: parse selection color %q: %w", selectionHex, err)
	}
	if blend < 0 {
		blend = 0
	}
	if blend > 1 {
		blend = 1
	}
	return &Theme{selection: c, blend: blend}, nil
}

// SelectionStyle returns the style for a selected cell, tinting the
// base style's background toward the highlight color in Lab space.
// A default (terminal-inherited) background takes the highlight color
// directly, since there is nothing to blend with.
func (t *Theme) SelectionStyle(base tcell.Style) tcell.Style {
	_, bg, _ := base.Decompose()

	if bg == tcell.ColorDefault {
		return base.Background(toTcell(t.selection))
	}

	blended := fromTcell(bg).BlendLab(t.selection, t.blend).Clamped()
	return base.Background(toTcell(blended))
}

// SelectionColor returns the raw highlight color as a tcell color,
// used for gutter markers and the demo renderer's caret row.
func (t *Theme) SelectionColor() tcell.Color {
	return toTcell(t.selection)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
