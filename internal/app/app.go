// Package app wires the editor's components together and runs the
// terminal event loop.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/latticeapp/scribe/internal/caret"
	"github.com/latticeapp/scribe/internal/config"
	"github.com/latticeapp/scribe/internal/document"
	"github.com/latticeapp/scribe/internal/event"
	"github.com/latticeapp/scribe/internal/input/key"
	"github.com/latticeapp/scribe/internal/input/pointer"
	"github.com/latticeapp/scribe/internal/plugin"
	"github.com/latticeapp/scribe/internal/selection"
	"github.com/latticeapp/scribe/internal/theme"
	"github.com/latticeapp/scribe/internal/toolbar"
	"github.com/latticeapp/scribe/internal/viewport"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Debug enables the event tap that logs all traffic.
	Debug bool
}

// App is the central coordinator for the editor's components.
type App struct {
	cfg config.Config

	screen  tcell.Screen
	emitter *event.Emitter

	doc        *document.Container
	sel        *caret.Selection
	store      *selection.Store
	engine     *selection.Engine
	toolbar    *toolbar.Inline
	vp         *viewport.Viewport
	translator *pointer.Translator
	theme      *theme.Theme

	pluginHosts []*plugin.Host
	pluginHooks []*plugin.Hooks

	downSub   *event.Subscription
	debugSubs []*event.Subscription
	debugLog  *os.File
}

// New builds the application from its configuration.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	th, err := theme.New(cfg.SelectionColor, cfg.SelectionBlend)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		emitter: event.NewEmitter(),
		doc:     document.NewContainer(nil),
		sel:     caret.New(),
		toolbar: toolbar.NewInline(),
		theme:   th,
	}
	a.store = selection.NewStore(a.doc, a.sel, a.emitter)
	a.vp = viewport.New(0, 0)
	a.engine = selection.NewEngine(a.doc, a.store, a.sel, a.toolbar, a.vp, a.emitter)
	a.translator = pointer.NewTranslator(a.doc.Root(), a.emitter)

	if cfg.EnableCrossBlockSelection {
		a.downSub = a.emitter.Subscribe(event.TopicPointerDown, func(payload any) {
			if ev, ok := payload.(pointer.Event); ok {
				a.engine.WatchSelection(ev)
			}
		})
	}

	if opts.Debug {
		if err := a.attachDebugTap(); err != nil {
			return nil, err
		}
	}

	for _, script := range cfg.PluginScripts {
		host := plugin.NewHost(script)
		if err := host.LoadFile(script); err != nil {
			host.Close()
			return nil, fmt.Errorf("app: load plugin %s: %w", script, err)
		}
		a.pluginHosts = append(a.pluginHosts, host)
		a.pluginHooks = append(a.pluginHooks, plugin.AttachHooks(host, a.emitter))
	}

	return a, nil
}

// attachDebugTap logs every emitted event to a file. Stdout is owned
// by the screen, so the tap never writes there.
func (a *App) attachDebugTap() error {
	f, err := os.OpenFile("scribe-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("app: open debug log: %w", err)
	}
	a.debugLog = f
	logger := log.New(f, "", log.Ltime|log.Lmicroseconds)

	topics := []event.Topic{
		event.TopicPointerDown,
		event.TopicPointerOver,
		event.TopicPointerUp,
		event.TopicDragStart,
		event.TopicKeyDown,
		event.TopicSelectionChanged,
		event.TopicSelectionCleared,
		event.TopicCaretMoved,
	}
	for _, topic := range topics {
		t := topic
		a.debugSubs = append(a.debugSubs, a.emitter.Subscribe(t, func(payload any) {
			logger.Printf("%s %+v", t, payload)
		}))
	}
	return nil
}

// Document returns the app's block container.
func (a *App) Document() *document.Container {
	return a.doc
}

// Emitter returns the app's event emitter.
func (a *App) Emitter() *event.Emitter {
	return a.emitter
}

// Engine returns the cross-block selection engine.
func (a *App) Engine() *selection.Engine {
	return a.engine
}

// SeedDocument fills an empty document with starter blocks, one per
// text line.
func (a *App) SeedDocument(lines []string) {
	if a.doc.Len() > 0 {
		return
	}
	for _, line := range lines {
		a.doc.Append(document.NewBlock("paragraph", line, nil))
	}
	a.vp.SetTotal(a.doc.Len())
	a.doc.SetCurrentIndex(0)
}

// SetScreen attaches the terminal screen. Must be called before Run.
func (a *App) SetScreen(screen tcell.Screen) {
	a.screen = screen
}

// Run initializes the screen and processes events until quit.
func (a *App) Run() error {
	if a.screen == nil {
		return errors.New("app: no screen attached")
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("app: init screen: %w", err)
	}
	defer a.screen.Fini()
	a.screen.EnableMouse()

	a.layout()
	a.render()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch tev := ev.(type) {
		case *tcell.EventResize:
			a.layout()

		case *tcell.EventMouse:
			a.translator.HandleTcell(tev)
			a.layout()

		case *tcell.EventKey:
			if err := a.HandleKey(key.FromTcell(tev)); err != nil {
				return err
			}
			a.layout()
		}

		a.render()
	}
}

// HandleKey routes one keyboard event.
func (a *App) HandleKey(ev key.Event) error {
	switch {
	case ev.Key == key.KeyEscape:
		// Escape ends the session: place the caret, then hand the
		// flags to the store.
		a.engine.Clear(&ev)
		a.store.ClearSelection("escape")

	case ev.Key == key.KeyRune && ev.Rune == 'q' && ev.Modifiers.IsEmpty():
		return ErrQuit

	case ev.Modifiers.HasShift() && (ev.Key == key.KeyDown || ev.Key == key.KeyRight):
		a.engine.ToggleBlockSelectedState(true)

	case ev.Modifiers.HasShift() && (ev.Key == key.KeyUp || ev.Key == key.KeyLeft):
		a.engine.ToggleBlockSelectedState(false)

	case ev.Key.IsArrow():
		if a.engine.IsCrossBlockSelectionStarted() {
			// Plain navigation ends the selection, caret placed by
			// travel direction.
			a.engine.Clear(&ev)
			a.store.ClearSelection("navigation")
			break
		}
		a.moveCurrent(ev.Key)
	}
	return nil
}

// moveCurrent moves the caret block up or down.
func (a *App) moveCurrent(k key.Key) {
	idx := a.doc.CurrentIndex()
	if idx < 0 {
		return
	}
	switch k {
	case key.KeyUp:
		idx--
	case key.KeyDown:
		idx++
	default:
		return
	}
	block := a.doc.BlockAt(idx)
	if block == nil {
		return
	}
	a.doc.SetCurrentIndex(idx)
	a.sel.SetCaret(block, caret.Start)
	a.vp.EnsureVisible(idx, a.scrollAlign())
}

func (a *App) scrollAlign() viewport.Align {
	switch a.cfg.ScrollAlign {
	case "center":
		return viewport.AlignCenter
	case "start":
		return viewport.AlignStart
	default:
		return viewport.AlignNearest
	}
}

// Shutdown releases the screen and plugin states. Safe to call on all
// exit paths.
func (a *App) Shutdown() {
	for _, hooks := range a.pluginHooks {
		hooks.Detach(a.emitter)
	}
	for _, host := range a.pluginHosts {
		host.Close()
	}
	a.pluginHooks = nil
	a.pluginHosts = nil

	for _, sub := range a.debugSubs {
		a.emitter.Unsubscribe(sub)
	}
	a.debugSubs = nil
	if a.debugLog != nil {
		a.debugLog.Close()
		a.debugLog = nil
	}
}
