package key

import "github.com/gdamore/tcell/v2"

// Event is one keyboard event.
type Event struct {
	// Key is the key that was pressed.
	Key Key

	// Rune holds the character for KeyRune events.
	Rune rune

	// Modifiers are the modifier keys held during the event.
	Modifiers Modifier
}

// FromTcell translates a tcell key event into an Event.
func FromTcell(ev *tcell.EventKey) Event {
	e := Event{Modifiers: modifiersFromTcell(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyEscape:
		e.Key = KeyEscape
	case tcell.KeyEnter:
		e.Key = KeyEnter
	case tcell.KeyTab:
		e.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Key = KeyBackspace
	case tcell.KeyDelete:
		e.Key = KeyDelete
	case tcell.KeyHome:
		e.Key = KeyHome
	case tcell.KeyEnd:
		e.Key = KeyEnd
	case tcell.KeyPgUp:
		e.Key = KeyPageUp
	case tcell.KeyPgDn:
		e.Key = KeyPageDown
	case tcell.KeyUp:
		e.Key = KeyUp
	case tcell.KeyDown:
		e.Key = KeyDown
	case tcell.KeyLeft:
		e.Key = KeyLeft
	case tcell.KeyRight:
		e.Key = KeyRight
	case tcell.KeyRune:
		e.Key = KeyRune
		e.Rune = ev.Rune()
	default:
		e.Key = KeyNone
	}

	return e
}

func modifiersFromTcell(mods tcell.ModMask) Modifier {
	var m Modifier
	if mods&tcell.ModShift != 0 {
		m |= ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		m |= ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		m |= ModMeta
	}
	return m
}
