// Package selection implements cross-block selection: the state
// machine that lets a user select a contiguous run of blocks by
// dragging the pointer across them or by extending the selection one
// block at a time with the keyboard.
//
// The engine holds an anchor pair — the block where the gesture began
// and the block most recently touched — and on every qualifying
// pointer crossing recomputes which blocks in the affected range flip
// their selected flag. The range-toggle pass handles direction
// reversal mid-drag and re-crossing the anchor block without leaving
// stray selected blocks behind.
//
// All entry points run synchronously inside the host's event dispatch;
// the engine assumes single-goroutine use and takes no locks of its
// own.
package selection
