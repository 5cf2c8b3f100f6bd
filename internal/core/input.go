package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; games only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up (Pong)
	ActionDown           // S, Down arrow - move paddle down (Pong)
	ActionLeft           // A, Left arrow - move paddle left (Brick Breaker)
	ActionRight          // D, Right arrow - move paddle right (Brick Breaker)
	ActionLaunch         // Space - launch the ball (Brick Breaker start phase)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart the game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// NewInputFrameOf creates a frame with the given actions held.
func NewInputFrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyBinding maps a frontend's physical keys to an action. Held bindings are
// active while any key is down; the others fire once, on the frame the key
// goes down.
type KeyBinding[K comparable] struct {
	Keys   []K
	Action Action
	Held   bool
}

// PollBindings builds the frame for one tick from a frontend's key queries.
func PollBindings[K comparable](bindings []KeyBinding[K], down, justPressed func(K) bool) InputFrame {
	f := NewInputFrame()
	for _, b := range bindings {
		query := justPressed
		if b.Held {
			query = down
		}
		for _, k := range b.Keys {
			if query(k) {
				f.Set(b.Action)
				break
			}
		}
	}
	return f
}
