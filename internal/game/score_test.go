package game

import "testing"

func scoreVehicle(row, col int, speed float64) Vehicle {
	return Vehicle{
		ID:    1,
		Row:   row,
		Col:   col,
		Speed: speed,
		Alive: true,
	}
}

func TestScoreCleanRoad(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGrid(cfg.Rows, cfg.Cols)
	v := scoreVehicle(100, 1, 3.0)

	b := Score(cfg, g, &v)

	if b.Safety != 1.0 {
		t.Errorf("Safety = %g, want 1.0 on a clean road", b.Safety)
	}
	if b.Efficiency != 1.0 {
		t.Errorf("Efficiency = %g, want 1.0 at top speed", b.Efficiency)
	}
	if b.Comfort != 1.0 {
		t.Errorf("Comfort = %g, want 1.0 with zero yaw and accel", b.Comfort)
	}
	if b.Total != MaxScore(cfg) {
		t.Errorf("Total = %g, want max %g", b.Total, MaxScore(cfg))
	}
}

func TestScoreFaultAheadLowersSafety(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGrid(cfg.Rows, cfg.Cols)
	v := scoreVehicle(100, 1, 3.0)
	g.SetFault(98, 1, FaultPothole) // 2 rows ahead

	b := Score(cfg, g, &v)

	want := 1.0 - 1.0/2.0
	if absF(b.Safety-want) > 1e-9 {
		t.Errorf("Safety = %g, want %g", b.Safety, want)
	}
}

func TestScoreBlockedHalvesEfficiency(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGrid(cfg.Rows, cfg.Cols)
	v := scoreVehicle(100, 1, 3.0)
	v.Blocked = true

	b := Score(cfg, g, &v)

	if b.Efficiency != 0.5 {
		t.Errorf("Efficiency = %g, want 0.5 while blocked", b.Efficiency)
	}
}

func TestScoreTailgatingPenalty(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGrid(cfg.Rows, cfg.Cols)
	v := scoreVehicle(100, 1, 3.0)
	g.SetVehicle(99, 1, 2) // leader inside the safe following distance

	b := Score(cfg, g, &v)

	if b.Safety != 0.5 {
		t.Errorf("Safety = %g, want 0.5 with a violated gap", b.Safety)
	}
}

func TestScoreComfortPenalties(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGrid(cfg.Rows, cfg.Cols)
	v := scoreVehicle(100, 1, 3.0)
	v.Yaw = 5.0   // worst case
	v.Accel = 1.0 // worst case

	b := Score(cfg, g, &v)

	// The penalty terms leave float residue, so compare with a tolerance.
	if absF(b.Comfort) > 1e-9 {
		t.Errorf("Comfort = %g, want ~0.0 at extreme yaw and accel", b.Comfort)
	}
}

func TestPickEgo(t *testing.T) {
	cfg := DefaultConfig()
	bus := NewEventBus()
	g := NewGrid(cfg.Rows, cfg.Cols)
	vs := NewVehicleSystem(cfg, 3, bus)

	if id, _ := PickEgo(cfg, g, vs); id != -1 {
		t.Errorf("empty fleet ego = %d, want -1", id)
	}

	slow := scoreVehicle(100, 0, 1.0)
	slow.ID = 1
	fast := scoreVehicle(120, 2, 3.0)
	fast.ID = 2
	vs.Vehicles = append(vs.Vehicles, slow, fast)
	g.SetVehicle(100, 0, 1)
	g.SetVehicle(120, 2, 2)

	id, b := PickEgo(cfg, g, vs)
	if id != 2 {
		t.Errorf("ego = %d, want the faster car 2", id)
	}
	if b.Total <= 0 {
		t.Errorf("ego score total = %g, want positive", b.Total)
	}
}

func TestPickEgoTieBreaksLowID(t *testing.T) {
	cfg := DefaultConfig()
	bus := NewEventBus()
	g := NewGrid(cfg.Rows, cfg.Cols)
	vs := NewVehicleSystem(cfg, 3, bus)

	a := scoreVehicle(100, 0, 2.0)
	a.ID = 4
	b := scoreVehicle(150, 2, 2.0)
	b.ID = 9
	vs.Vehicles = append(vs.Vehicles, a, b)
	g.SetVehicle(100, 0, 4)
	g.SetVehicle(150, 2, 9)

	if id, _ := PickEgo(cfg, g, vs); id != 4 {
		t.Errorf("tied ego = %d, want lower ID 4", id)
	}
}
