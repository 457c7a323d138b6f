// Package plugin runs user Lua scripts in a sandboxed state and feeds
// them the editor's selection lifecycle.
package plugin

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrHostClosed indicates a call on a closed host.
var ErrHostClosed = errors.New("plugin: host closed")

// Host wraps one sandboxed Lua state.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes
// access from Go. Lua execution itself is single-threaded.
type Host struct {
	mu     sync.Mutex
	name   string
	L      *lua.LState
	closed bool
}

// NewHost creates a sandboxed host. Only the base, table, string and
// math libraries are opened; io, os and debug stay out, and the code
// loaders (dofile, loadfile, load, loadstring) are removed.
func NewHost(name string) *Host {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, fn := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(fn, lua.LNil)
	}

	return &Host{name: name, L: L}
}

// Name returns the host's name.
func (h *Host) Name() string {
	return h.name
}

// LoadFile executes a Lua script file in the host's state.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.withRecovery(func() error {
		return h.L.DoFile(path)
	})
}

// LoadString executes Lua source in the host's state.
func (h *Host) LoadString(code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.withRecovery(func() error {
		return h.L.DoString(code)
	})
}

// HasFunction returns true if the script defined the named global
// function.
func (h *Host) HasFunction(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	return h.L.GetGlobal(name).Type() == lua.LTFunction
}

// Call invokes a global Lua function. Missing functions are a silent
// no-op so scripts only implement the hooks they care about.
func (h *Host) Call(fn string, args ...lua.LValue) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	fnVal := h.L.GetGlobal(fn)
	if fnVal.Type() != lua.LTFunction {
		return nil
	}

	return h.withRecovery(func() error {
		return h.L.CallByParam(lua.P{
			Fn:      fnVal,
			NRet:    0,
			Protect: true,
		}, args...)
	})
}

// Global reads a global value from the script's state.
func (h *Host) Global(name string) lua.LValue {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return lua.LNil
	}
	return h.L.GetGlobal(name)
}

// Close shuts the Lua state down. Further calls error or no-op.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

func (h *Host) withRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plugin %s: lua panic: %v", h.name, r)
		}
	}()
	return fn()
}
