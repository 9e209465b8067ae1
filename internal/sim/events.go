package sim

// EventKind classifies something the world reports to its driver.
type EventKind int

const (
	EventDeath EventKind = iota
	EventAsteroidDestroyed
	EventShot
	EventSoundToggled
	EventModeChanged
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventDeath:
		return "death"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventShot:
		return "shot"
	case EventSoundToggled:
		return "sound_toggled"
	case EventModeChanged:
		return "mode_changed"
	default:
		return "unknown"
	}
}

// Event is a notable state change. The world never logs or persists
// anything itself; drivers drain events after each step.
type Event struct {
	Kind    EventKind
	Clock   float64
	Score   int // score after the event, before a restart resets it
	Mode    Mode
	SoundOn bool
}
