package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewRejectsBadHex(t *testing.T) {
	if _, err := New("not-a-color", 0.5); err == nil {
		t.Error("New should reject an unparseable hex color")
	}
	if _, err := New("#2e5090", 0.5); err != nil {
		t.Errorf("New rejected a valid hex color: %v", err)
	}
}

func TestBlendClamping(t *testing.T) {
	th, err := New("#ff0000", 5)
	if err != nil {
		t.Fatal(err)
	}

	// Blend clamps to 1: a black background becomes the highlight
	// color outright.
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 0))
	_, bg, _ := th.SelectionStyle(base).Decompose()

	r, g, b := bg.TrueColor().RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("blended bg = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestDefaultBackgroundTakesHighlight(t *testing.T) {
	th, err := New("#2e5090", 0.35)
	if err != nil {
		t.Fatal(err)
	}

	_, bg, _ := th.SelectionStyle(tcell.StyleDefault).Decompose()
	if bg == tcell.ColorDefault {
		t.Error("selected cell over a default background should get the highlight color")
	}
	if bg != th.SelectionColor() {
		t.Error("default background should take the raw highlight color")
	}
}

func TestZeroBlendKeepsBase(t *testing.T) {
	th, err := New("#ff0000", 0)
	if err != nil {
		t.Fatal(err)
	}

	baseColor := tcell.NewRGBColor(10, 20, 30)
	base := tcell.StyleDefault.Background(baseColor)
	_, bg, _ := th.SelectionStyle(base).Decompose()

	r, g, b := bg.TrueColor().RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("zero blend changed bg to (%d,%d,%d)", r, g, b)
	}
}
