package game

import "testing"

func TestGridOccupancy(t *testing.T) {
	g := NewGrid(10, 3)

	if g.Occupied(5, 1) {
		t.Error("fresh grid should be empty")
	}
	g.SetVehicle(5, 1, 7)
	if got := g.VehicleAt(5, 1); got != 7 {
		t.Errorf("VehicleAt = %d, want 7", got)
	}

	g.Move(5, 1, 4, 1, 7)
	if g.Occupied(5, 1) {
		t.Error("source cell still occupied after Move")
	}
	if got := g.VehicleAt(4, 1); got != 7 {
		t.Errorf("destination cell = %d, want 7", got)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 3)

	if g.Occupied(-1, 0) || g.Occupied(10, 0) || g.Occupied(0, 3) {
		t.Error("out-of-bounds cells must read as empty")
	}
	if g.FaultAt(-1, 0) != FaultNone {
		t.Error("out-of-bounds fault must read as none")
	}
	// Writes outside the grid are dropped, not panics.
	g.SetVehicle(-1, 0, 1)
	if !g.SetFault(5, 1, FaultIce) {
		t.Error("in-bounds SetFault should succeed")
	}
	if g.SetFault(-1, 0, FaultIce) {
		t.Error("out-of-bounds SetFault should report failure")
	}
}

func TestGridFaultNeverOverwritten(t *testing.T) {
	g := NewGrid(10, 3)

	if !g.SetFault(2, 0, FaultPothole) {
		t.Fatal("first SetFault failed")
	}
	if g.SetFault(2, 0, FaultIce) {
		t.Error("SetFault overwrote an existing fault")
	}
	if got := g.FaultAt(2, 0); got != FaultPothole {
		t.Errorf("fault = %v, want pothole", got)
	}
	if g.FaultCount() != 1 {
		t.Errorf("FaultCount = %d, want 1", g.FaultCount())
	}
}

func TestGridCloneSharesFaults(t *testing.T) {
	g := NewGrid(10, 3)
	g.SetVehicle(5, 1, 1)
	g.SetFault(3, 2, FaultIce)

	cp := g.Clone()

	// Occupancy is independent.
	cp.SetVehicle(5, 1, -1)
	if !g.Occupied(5, 1) {
		t.Error("clone occupancy write leaked into original")
	}

	// Faults placed after the clone show up in both.
	g.SetFault(7, 0, FaultRain)
	if cp.FaultAt(7, 0) != FaultRain {
		t.Error("fault map must be shared between clones")
	}
}
