package tui

import "github.com/vovakirdan/alien-invasion/internal/core"

// Terminals report key presses and auto-repeats but never releases. A held
// direction is therefore released once no repeat arrived within a window.
// A fresh press only nudges the ship; a key kept down comes back as a new
// press once the terminal starts repeating, and from then on each repeat
// only needs to span the gap to the next one.
const (
	nudgeHoldMillis  = 50
	repeatHoldMillis = 120
)

// holdTracker synthesizes release intents for the two movement keys.
type holdTracker struct {
	nudgeTicks  int
	repeatTicks int
	deadline    map[core.Action]int // press action -> tick it expires on
}

func newHoldTracker(tickRate int) *holdTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &holdTracker{
		nudgeTicks:  max(1, nudgeHoldMillis*tickRate/1000),
		repeatTicks: max(1, repeatHoldMillis*tickRate/1000),
		deadline:    make(map[core.Action]int),
	}
}

// Press records a movement key at tick now. It reports whether this is a new
// press that the game has not seen yet; opposite directions are released.
func (h *holdTracker) Press(a core.Action, now int, frame *core.InputFrame) bool {
	if other := opposite(a); other != core.ActionNone {
		if h.Held(other) {
			delete(h.deadline, other)
			frame.Set(release(other))
		}
	}

	if h.Held(a) {
		h.deadline[a] = now + h.repeatTicks
		return false
	}
	h.deadline[a] = now + h.nudgeTicks
	return true
}

// Expire emits releases for keys whose window ended by tick now.
func (h *holdTracker) Expire(now int, frame *core.InputFrame) {
	for a, until := range h.deadline {
		if now >= until {
			delete(h.deadline, a)
			frame.Set(release(a))
		}
	}
}

// Held reports whether a movement key is considered down.
func (h *holdTracker) Held(a core.Action) bool {
	_, ok := h.deadline[a]
	return ok
}

// Reset forgets every held key.
func (h *holdTracker) Reset() {
	clear(h.deadline)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

func release(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionLeftRelease
	}
	return core.ActionRightRelease
}
