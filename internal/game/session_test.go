package game

import "testing"

func TestSessionAdvancePacing(t *testing.T) {
	sess := NewSession()

	// Menu state never ticks.
	if sess.Advance(4) {
		t.Error("Advance ticked in the menu")
	}

	sess.Start()
	ticks := 0
	for frame := 0; frame < 12; frame++ {
		if sess.Advance(4) {
			ticks++
		}
	}
	if ticks != 3 {
		t.Errorf("ticks = %d over 12 frames at 4 steps/tick, want 3", ticks)
	}
	if sess.Steps != 3 {
		t.Errorf("Steps = %d, want 3", sess.Steps)
	}
}

func TestSessionBlend(t *testing.T) {
	sess := NewSession()
	sess.Start()

	if got := sess.Blend(4); got != 0 {
		t.Errorf("Blend at tick start = %g, want 0", got)
	}
	sess.Advance(4)
	sess.Advance(4)
	if got := sess.Blend(4); got != 0.5 {
		t.Errorf("Blend mid-tick = %g, want 0.5", got)
	}

	// Paused and single-step configs snap to fully-blended.
	sess.TogglePause()
	if got := sess.Blend(4); got != 1.0 {
		t.Errorf("Blend while paused = %g, want 1.0", got)
	}
	sess.TogglePause()
	if got := sess.Blend(1); got != 1.0 {
		t.Errorf("Blend at 1 step = %g, want 1.0", got)
	}
}

func TestSessionStateTransitions(t *testing.T) {
	sess := NewSession()

	// Pause toggles are meaningless in the menu.
	sess.TogglePause()
	if sess.State != StateMenu {
		t.Errorf("state = %v, want menu", sess.State)
	}

	sess.Start()
	if sess.State != StateRunning {
		t.Fatalf("state = %v after Start, want running", sess.State)
	}
	sess.TogglePause()
	if sess.State != StatePaused {
		t.Errorf("state = %v, want paused", sess.State)
	}
	sess.TogglePause()
	if sess.State != StateRunning {
		t.Errorf("state = %v, want running", sess.State)
	}

	// Start is a no-op once out of the menu.
	sess.Start()
	if sess.State != StateRunning {
		t.Errorf("Start changed a running session to %v", sess.State)
	}
}
