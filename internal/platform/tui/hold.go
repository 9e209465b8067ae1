package tui

import (
	"time"

	"github.com/vovakirdan/space-odyssey/internal/core"
)

// keyHoldDuration is how long a key counts as held after its last press.
// Terminals only report presses and auto-repeats, never releases, so the
// window has to bridge the gap between the first press and the first repeat.
const keyHoldDuration = 150 * time.Millisecond

// holdTracker turns key presses into level-triggered actions.
type holdTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, last: make(map[core.Action]time.Time)}
}

// touch records a press of a held action.
func (h *holdTracker) touch(a core.Action, now time.Time) {
	h.last[a] = now
}

// apply marks every action seen within the window as held in f.
func (h *holdTracker) apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			f.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}

// release forgets everything, e.g. when the terminal loses focus.
func (h *holdTracker) release() {
	clear(h.last)
}

// isHeldAction reports whether an action is level-triggered.
func isHeldAction(a core.Action) bool {
	switch a {
	case core.ActionTurnLeft, core.ActionTurnRight, core.ActionThrust, core.ActionReverse:
		return true
	default:
		return false
	}
}
