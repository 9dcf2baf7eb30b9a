package core

// Action represents a semantic game intent, abstracted from physical keys,
// mouse buttons or terminal escape sequences.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Start moving left (key down)
	ActionLeftRelease         // Stop moving left (key up)
	ActionRight               // Start moving right (key down)
	ActionRightRelease        // Stop moving right (key up)
	ActionFire                // Space - fire a bullet
	ActionPause               // P - toggle pause
	ActionStart               // Enter, S or Play button - start a new game while inactive
	ActionQuit                // Q, Ctrl+C - exit
	ActionUp                  // Menu navigation
	ActionDown                // Menu navigation
	ActionConfirm             // Menu selection
	ActionBack                // Esc, B - back to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionLeftRelease:
		return "LeftRelease"
	case ActionRight:
		return "Right"
	case ActionRightRelease:
		return "RightRelease"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Point is a pointer position in field coordinates.
type Point struct {
	X, Y int
}

// InputFrame holds the intents collected during one input poll.
// Multiple intents may arrive per tick; the game applies them in a fixed
// order so the result does not depend on event arrival order.
type InputFrame struct {
	Actions map[Action]bool
	clicks  []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer click at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.clicks = append(f.clicks, Point{X: x, Y: y})
}

// Clicks returns the pointer clicks recorded this frame.
func (f InputFrame) Clicks() []Point {
	return f.clicks
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return len(f.clicks) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.clicks = f.clicks[:0]
}
