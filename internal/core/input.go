package core

import "github.com/vovakirdan/space-odyssey/internal/geom"

// Action is a semantic game action, abstracted from physical keys and buttons.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // Left arrow, A - rotate counter-clockwise (held)
	ActionTurnRight        // Right arrow, D - rotate clockwise (held)
	ActionThrust           // Up arrow, W - move along heading (held)
	ActionReverse          // Down arrow, S - move against heading (held)
	ActionFire             // Space - shoot
	ActionPause            // P - toggle pause while playing
	ActionBack             // Escape, B - toggle game/menu
	ActionConfirm          // Enter - activate the focused menu item
	ActionMenuUp           // Move menu focus up
	ActionMenuDown         // Move menu focus down
	ActionDebug            // F3 - toggle collision overlay
	ActionQuit             // Ctrl+C - leave immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrust:
		return "Thrust"
	case ActionReverse:
		return "Reverse"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the polled input state for one frame.
//
// Pressed holds edge-triggered actions (went down this frame). Held holds
// level-triggered actions (down for the whole frame). A pressed action also
// counts as held so that a single tap moves the ship for one frame.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool

	// Click is the primary-button click position in world units, if any.
	Click *geom.Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as triggered this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held down this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// ClickAt records a click at a world position.
func (f *InputFrame) ClickAt(p geom.Vec2) {
	f.Click = &p
}

// WasPressed reports whether the action was triggered this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// IsHeld reports whether the action is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
	f.Click = nil
}
