package sim

// Ammo is the magazine. The reload cooldown starts only once the clip
// is emptied, not after every shot.
type Ammo struct {
	Available       int
	Max             int
	ReloadStamp     float64 // simulation clock of the last reload
	ReloadThreshold float64 // seconds
}

// NewAmmo creates a full magazine that is ready to fire at clock 0.
func NewAmmo(capacity int, reloadThreshold float64) Ammo {
	return Ammo{
		Available:       capacity,
		Max:             capacity,
		ReloadStamp:     -reloadThreshold,
		ReloadThreshold: reloadThreshold,
	}
}

// Reloading reports whether the cooldown is still running at clock.
func (a Ammo) Reloading(clock float64) bool {
	return clock-a.ReloadStamp < a.ReloadThreshold
}

// Take spends one shot. It returns false while reloading.
// Emptying the clip refills it and starts the cooldown.
func (a *Ammo) Take(clock float64) bool {
	if a.Reloading(clock) {
		return false
	}
	a.Available--
	if a.Available <= 0 {
		a.Available = a.Max
		a.ReloadStamp = clock
	}
	return true
}

// Display is the count shown on the HUD: zero during the cooldown.
func (a Ammo) Display(clock float64) int {
	if a.Reloading(clock) {
		return 0
	}
	return a.Available
}

// Refill restores a full clip. The reload stamp is kept.
func (a *Ammo) Refill() {
	a.Available = a.Max
}
