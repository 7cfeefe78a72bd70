package game

import "testing"

func TestParticleLifecycle(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(Particle{X: 5, Y: 5, VY: 1, Size: 2, MaxLife: 3, Col: Palette.RainDrop})

	if len(ps.P) != 1 {
		t.Fatalf("len = %d, want 1", len(ps.P))
	}
	for i := 0; i < 4; i++ {
		ps.Update(100)
	}
	if len(ps.P) != 0 {
		t.Errorf("expired particle not removed, len = %d", len(ps.P))
	}
}

func TestParticleOffscreenCulled(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(Particle{X: 5, Y: 99, VY: 10, Size: 2, MaxLife: 1000, Col: Palette.RainDrop})

	ps.Update(100) // drops below the viewport
	ps.Update(100)
	if len(ps.P) != 0 {
		t.Errorf("off-screen particle not removed, len = %d", len(ps.P))
	}
}

func TestParticleOverwriteAtCapacity(t *testing.T) {
	ps := NewParticleSystem(3)
	for i := 0; i < 5; i++ {
		ps.Add(Particle{X: float64(i), MaxLife: 100})
	}
	if len(ps.P) != 3 {
		t.Errorf("len = %d, want capped at 3", len(ps.P))
	}
}

func TestParticleRenderData(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(Particle{X: 3, Y: 4, Size: 2, MaxLife: 10, Col: RGB{255, 0, 0}})
	ps.Add(Particle{X: 7, Y: 8, Size: 1, MaxLife: 10, Col: RGB{0, 255, 0}})

	buf := ps.RenderData(nil)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16 (8 floats per sprite)", len(buf))
	}
	if buf[0] != 3 || buf[1] != 4 || buf[2] != 2 {
		t.Errorf("first sprite = %v", buf[:3])
	}
	if buf[3] != 1 || buf[4] != 0 {
		t.Errorf("first sprite color = %v", buf[3:6])
	}

	// Reuses the caller's buffer.
	buf2 := ps.RenderData(buf)
	if len(buf2) != 16 {
		t.Errorf("reused buffer len = %d, want 16", len(buf2))
	}
}
