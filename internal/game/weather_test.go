package game

import "testing"

func TestWeatherFlipsOnChanceRoll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeatherChangeChance = 100
	cfg.RainDuration = 300
	ws := NewWeatherSystem(cfg, 5)

	if !ws.Update(1) {
		t.Fatal("certain change chance did not flip the weather")
	}
	if !ws.Raining() {
		t.Fatal("first flip should enter rain")
	}
	if ws.RainRemaining() != cfg.RainDuration {
		t.Errorf("RainRemaining = %d, want %d", ws.RainRemaining(), cfg.RainDuration)
	}

	// A change roll during rain ends it early.
	if !ws.Update(2) {
		t.Fatal("certain change chance did not end the rain")
	}
	if ws.Raining() || ws.RainRemaining() != 0 {
		t.Errorf("weather still raining: mode=%v left=%d", ws.Mode, ws.RainRemaining())
	}
}

func TestWeatherNeverChangesAtZeroChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeatherChangeChance = 0
	ws := NewWeatherSystem(cfg, 5)

	for frame := uint64(1); frame <= 500; frame++ {
		if ws.Update(frame) {
			t.Fatalf("weather flipped at frame %d with zero chance", frame)
		}
	}
	if ws.Raining() {
		t.Error("mode drifted to rain")
	}
}

func TestRainExpiresAfterDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeatherChangeChance = 0
	ws := NewWeatherSystem(cfg, 5)
	ws.Mode = WeatherRain
	ws.rainLeft = 3

	flips := 0
	for frame := uint64(1); frame <= 10; frame++ {
		if ws.Update(frame) {
			flips++
		}
	}
	if flips != 1 {
		t.Errorf("flips = %d, want exactly 1 (the expiry)", flips)
	}
	if ws.Raining() {
		t.Error("rain did not expire")
	}
	if ws.RainTotal != 3 {
		t.Errorf("RainTotal = %d, want 3", ws.RainTotal)
	}
}

func TestSpawnRainOnlyWhileRaining(t *testing.T) {
	cfg := DefaultConfig()
	ws := NewWeatherSystem(cfg, 5)
	ps := NewParticleSystem(100)

	ws.SpawnRain(ps, cfg, 1)
	if len(ps.P) != 0 {
		t.Fatal("rain particles spawned while clear")
	}

	ws.Mode = WeatherRain
	ws.SpawnRain(ps, cfg, 2)
	if len(ps.P) == 0 {
		t.Error("no rain particles spawned while raining")
	}
	for i := range ps.P {
		if ps.P[i].X < 0 || ps.P[i].X > float64(cfg.Width()) {
			t.Errorf("drop %d outside the viewport: x=%g", i, ps.P[i].X)
		}
	}
}
