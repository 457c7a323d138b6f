package plugin

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/latticeapp/scribe/internal/event"
)

// Hook function names a script may define.
const (
	hookSelectionChanged = "on_selection_changed"
	hookSelectionCleared = "on_selection_cleared"
	hookCaretMoved       = "on_caret_moved"
)

// Hooks routes selection lifecycle events from the emitter into a
// host's Lua hook functions.
type Hooks struct {
	host *Host
	subs []*event.Subscription
}

// AttachHooks subscribes the host to the selection topics. Call Detach
// before closing the host.
func AttachHooks(host *Host, emitter *event.Emitter) *Hooks {
	h := &Hooks{host: host}

	h.subs = append(h.subs, emitter.Subscribe(event.TopicSelectionChanged, func(payload any) {
		changed, ok := payload.(event.SelectionChanged)
		if !ok {
			return
		}
		// Hook errors must not disturb event dispatch.
		_ = host.Call(hookSelectionChanged, lua.LNumber(changed.SelectedCount))
	}))

	h.subs = append(h.subs, emitter.Subscribe(event.TopicSelectionCleared, func(payload any) {
		cleared, ok := payload.(event.SelectionCleared)
		if !ok {
			return
		}
		_ = host.Call(hookSelectionCleared, lua.LString(cleared.Reason))
	}))

	h.subs = append(h.subs, emitter.Subscribe(event.TopicCaretMoved, func(payload any) {
		moved, ok := payload.(event.CaretMoved)
		if !ok {
			return
		}
		_ = host.Call(hookCaretMoved, lua.LString(moved.BlockID), lua.LNumber(moved.Offset))
	}))

	return h
}

// Detach unsubscribes every hook.
func (h *Hooks) Detach(emitter *event.Emitter) {
	for _, sub := range h.subs {
		emitter.Unsubscribe(sub)
	}
	h.subs = nil
}
