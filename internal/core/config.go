// Package core provides platform-neutral types shared by the simulation and its
// frontends: semantic input actions, the cell screen buffer and runtime options.
// It imports no UI library so that game logic stays pure and testable.
package core

// RuntimeConfig contains options passed from the CLI to a frontend.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (cells or pixels)
	ScreenH  int   // Frontend surface height (cells or pixels)
	TickRate int   // Frames per second the driver aims for
	Seed     int64 // RNG seed, 0 = time based
	Debug    bool  // Draw collision circles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
