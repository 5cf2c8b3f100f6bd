package tui

import "github.com/vovakirdan/paddle-arcade/internal/core"

// DefaultHoldTicks is how long a movement key counts as held after a press.
// Terminals report key presses and auto-repeat but never releases, so a key
// stays down until its repeat stops for this many ticks.
const DefaultHoldTicks = 8

// opposite pairs movement actions; pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// InputLatch turns terminal key presses into per-tick input frames.
// Movement actions are held for a number of ticks after each press;
// every other action is delivered exactly once, on the next frame.
type InputLatch struct {
	holdTicks int
	held      map[core.Action]int
	pressed   map[core.Action]bool
}

// NewInputLatch creates a latch holding movement keys for holdTicks frames.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &InputLatch{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pressed:   make(map[core.Action]bool),
	}
}

// Press records a key press.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if other, ok := opposite[a]; ok {
		delete(l.held, other)
		l.held[a] = l.holdTicks
		return
	}
	l.pressed[a] = true
}

// Frame returns the input for the next tick and ages the held keys.
func (l *InputLatch) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range l.held {
		f.Set(a)
		if n <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = n - 1
		}
	}
	for a := range l.pressed {
		f.Set(a)
		delete(l.pressed, a)
	}
	return f
}

// Reset releases every key.
func (l *InputLatch) Reset() {
	clear(l.held)
	clear(l.pressed)
}
