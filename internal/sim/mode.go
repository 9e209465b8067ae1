package sim

// Mode selects which input handlers and render branch are active.
type Mode int

const (
	ModeMenu Mode = iota
	ModeGame
	ModeOptions
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeGame:
		return "game"
	case ModeOptions:
		return "options"
	default:
		return "unknown"
	}
}

// ModeState is the menu/game/options state machine plus the pause flag.
type ModeState struct {
	Mode          Mode
	Paused        bool
	ExitRequested bool
}

// NewModeState returns the initial state: the menu, with the simulation paused.
func NewModeState() ModeState {
	return ModeState{Mode: ModeMenu, Paused: true}
}

// Play enters the game unpaused.
func (s *ModeState) Play() {
	s.Mode = ModeGame
	s.Paused = false
}

// Options opens the options screen and pauses.
func (s *ModeState) Options() {
	s.Mode = ModeOptions
	s.Paused = true
}

// Back toggles between game and menu. From options it returns to the menu.
func (s *ModeState) Back() {
	switch s.Mode {
	case ModeGame:
		s.Mode = ModeMenu
		s.Paused = true
	case ModeMenu:
		s.Play()
	case ModeOptions:
		s.Mode = ModeMenu
		s.Paused = true
	}
}

// TogglePause flips the pause flag. It only applies while playing.
func (s *ModeState) TogglePause() {
	if s.Mode == ModeGame {
		s.Paused = !s.Paused
	}
}

// Exit asks the loop driver to tear down. Only the menu offers it.
func (s *ModeState) Exit() {
	if s.Mode == ModeMenu {
		s.ExitRequested = true
	}
}

// Running reports whether the simulation advances this frame.
func (s ModeState) Running() bool {
	return s.Mode == ModeGame && !s.Paused
}
