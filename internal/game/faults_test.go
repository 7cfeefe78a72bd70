package game

import "testing"

func testFaultWorld(t *testing.T, cfg Config, seed uint64) (*Grid, *VehicleSystem, *FaultSystem, *EventBus) {
	t.Helper()
	bus := NewEventBus()
	g := NewGrid(cfg.Rows, cfg.Cols)
	vs := NewVehicleSystem(cfg, seed, bus)
	return g, vs, NewFaultSystem(cfg, seed, bus), bus
}

func TestFaultPlacedAheadOfTraffic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PotholeChance = 100
	cfg.IceChance = 0
	cfg.RainChance = 0
	g, vs, fs, bus := testFaultWorld(t, cfg, 13)

	v := vs.NewVehicle(50, 1)
	vs.Vehicles = append(vs.Vehicles, v)
	g.SetVehicle(50, 1, v.ID)

	var spawnedAt []int
	bus.Subscribe(EventFaultSpawned, func(e Event) {
		if e.Fault != FaultPothole {
			t.Errorf("fault kind = %v, want pothole", e.Fault)
		}
		spawnedAt = append(spawnedAt, e.Row)
	})

	fs.Update(g, vs, false, 1)

	if len(spawnedAt) != 1 {
		t.Fatalf("fault events = %d, want 1", len(spawnedAt))
	}
	// Lands 2-4 rows ahead of the only vehicle.
	if row := spawnedAt[0]; row < 46 || row > 48 {
		t.Errorf("fault row = %d, want within [46,48]", row)
	}
	if g.FaultCount() != 1 {
		t.Errorf("FaultCount = %d, want 1", g.FaultCount())
	}
}

func TestRainFaultOnlyWhileRaining(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PotholeChance = 0
	cfg.IceChance = 0
	cfg.RainChance = 100
	g, vs, fs, _ := testFaultWorld(t, cfg, 13)

	v := vs.NewVehicle(50, 1)
	vs.Vehicles = append(vs.Vehicles, v)
	g.SetVehicle(50, 1, v.ID)

	fs.Update(g, vs, false, 1)
	if g.FaultCount() != 0 {
		t.Fatal("rain slick placed while clear")
	}

	fs.Update(g, vs, true, 2)
	if g.FaultCount() != 1 {
		t.Error("no rain slick placed while raining")
	}
}

func TestNoFaultsWithoutVehicles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PotholeChance = 100
	cfg.IceChance = 100
	cfg.RainChance = 100
	g, vs, fs, _ := testFaultWorld(t, cfg, 13)

	for frame := uint64(1); frame <= 20; frame++ {
		fs.Update(g, vs, true, frame)
	}
	if g.FaultCount() != 0 {
		t.Errorf("faults placed on an empty road: %d", g.FaultCount())
	}
}

func TestFaultsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PotholeChance = 50
	run := func() []FaultKind {
		g, vs, fs, _ := testFaultWorld(t, cfg, 21)
		v := vs.NewVehicle(100, 0)
		vs.Vehicles = append(vs.Vehicles, v)
		g.SetVehicle(100, 0, v.ID)
		for frame := uint64(1); frame <= 30; frame++ {
			fs.Update(g, vs, false, frame)
		}
		out := make([]FaultKind, 0)
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				out = append(out, g.FaultAt(row, col))
			}
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fault maps diverge at cell %d with identical seeds", i)
		}
	}
}
