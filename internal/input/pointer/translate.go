package pointer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/latticeapp/scribe/internal/dom"
	"github.com/latticeapp/scribe/internal/event"
	"github.com/latticeapp/scribe/internal/input/key"
)

// Translator converts terminal mouse events into pointer events on the
// emitter, tracking the node under the pointer so crossings produce
// ActionOver events with the correct RelatedTarget.
type Translator struct {
	mu      sync.Mutex
	root    *dom.Node
	emitter *event.Emitter

	// held is the button mask from the previous event.
	held tcell.ButtonMask

	// last is the node the pointer was over at the previous event.
	last *dom.Node
}

// NewTranslator creates a translator hit-testing against root and
// publishing on emitter.
func NewTranslator(root *dom.Node, emitter *event.Emitter) *Translator {
	return &Translator{
		root:    root,
		emitter: emitter,
	}
}

// HandleTcell processes one tcell mouse event. It publishes, in order:
// pointer-down for newly pressed buttons, pointer-over when the node
// under the pointer changed, then pointer-up for released buttons.
func (t *Translator) HandleTcell(ev *tcell.EventMouse) {
	t.mu.Lock()
	x, y := ev.Position()
	mods := modifiersFromTcell(ev.Modifiers())
	target := t.root.HitTest(x, y)

	mask := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := mask &^ t.held
	released := t.held &^ mask
	t.held = mask

	related := t.last
	moved := target != t.last
	if moved {
		t.last = target
	}
	t.mu.Unlock()

	pos := Position{X: x, Y: y}

	for _, b := range buttonsIn(pressed) {
		t.emitter.Emit(event.TopicPointerDown, Event{
			Position:  pos,
			Button:    b,
			Modifiers: mods,
			Action:    ActionPress,
			Target:    target,
		})
	}

	if moved && target != nil {
		t.emitter.Emit(event.TopicPointerOver, Event{
			Position:      pos,
			Modifiers:     mods,
			Action:        ActionOver,
			Target:        target,
			RelatedTarget: related,
		})
	}

	for _, b := range buttonsIn(released) {
		t.emitter.Emit(event.TopicPointerUp, Event{
			Position:  pos,
			Button:    b,
			Modifiers: mods,
			Action:    ActionRelease,
			Target:    target,
		})
	}
}

// buttonsIn expands a tcell button mask into pointer buttons.
// tcell maps Button1 to left, Button2 to right and Button3 to middle.
func buttonsIn(mask tcell.ButtonMask) []Button {
	var out []Button
	if mask&tcell.Button1 != 0 {
		out = append(out, ButtonLeft)
	}
	if mask&tcell.Button2 != 0 {
		out = append(out, ButtonRight)
	}
	if mask&tcell.Button3 != 0 {
		out = append(out, ButtonMiddle)
	}
	return out
}

func modifiersFromTcell(mods tcell.ModMask) key.Modifier {
	var m key.Modifier
	if mods&tcell.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		m |= key.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		m |= key.ModMeta
	}
	return m
}
