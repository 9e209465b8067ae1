package sim

import "testing"

func TestAmmoClipThenCooldown(t *testing.T) {
	a := NewAmmo(5, 0.5)
	clock := 1.0

	for i := range 5 {
		if !a.Take(clock) {
			t.Fatalf("shot %d should succeed", i+1)
		}
	}
	if a.Available != 5 {
		t.Errorf("emptied clip should refill to 5, got %d", a.Available)
	}
	if a.ReloadStamp != clock {
		t.Errorf("ReloadStamp = %v, expected %v", a.ReloadStamp, clock)
	}

	if a.Take(clock) {
		t.Error("6th shot should be rejected during cooldown")
	}
	if a.Take(1.49) {
		t.Error("shot before the threshold elapses should be rejected")
	}
	if !a.Take(1.5) {
		t.Error("shot once the threshold elapsed should succeed")
	}
}

func TestAmmoReadyAtStart(t *testing.T) {
	a := NewAmmo(5, 0.5)
	if a.Reloading(0) {
		t.Error("a fresh magazine should not be reloading at clock 0")
	}
	if !a.Take(0) {
		t.Error("first shot at clock 0 should succeed")
	}
}

func TestAmmoDisplay(t *testing.T) {
	a := NewAmmo(3, 0.5)
	if a.Display(0) != 3 {
		t.Errorf("Display = %d, expected 3", a.Display(0))
	}
	a.Take(0)
	if a.Display(0) != 2 {
		t.Errorf("Display = %d, expected 2", a.Display(0))
	}
	a.Take(0)
	a.Take(0)
	if a.Display(0.1) != 0 {
		t.Errorf("Display during cooldown = %d, expected 0", a.Display(0.1))
	}
	if a.Display(0.5) != 3 {
		t.Errorf("Display after cooldown = %d, expected 3", a.Display(0.5))
	}
}

func TestAmmoRefill(t *testing.T) {
	a := NewAmmo(5, 0.5)
	a.Take(0)
	a.Take(0)
	stamp := a.ReloadStamp
	a.Refill()
	if a.Available != 5 {
		t.Errorf("Available = %d after refill", a.Available)
	}
	if a.ReloadStamp != stamp {
		t.Error("refill should not touch the reload stamp")
	}
}
