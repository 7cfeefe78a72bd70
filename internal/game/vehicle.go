package game

import "sort"

// Vehicle is one car on the lane grid. Row decreases as it drives; row 0 is
// the exit. Speed, mass, yaw and acceleration are randomized at spawn and feed
// the happiness score.
type Vehicle struct {
	ID       int
	Row, Col int

	// Previous cell, for render interpolation between sim ticks.
	PrevRow, PrevCol int

	Speed float64 // cells per tick potential, 1..3
	Mass  float64 // kg, 1000..3000
	Yaw   float64 // degrees off-axis, -5..5
	Accel float64 // -1..1

	Cooldown int // frames until the next lane change is allowed
	Blocked  bool
	Alive    bool

	FaultHits    int
	LaneChanges  int
	RowsAdvanced int
}

// VehicleSystem owns all vehicles and runs the per-tick driving policy.
type VehicleSystem struct {
	Vehicles []Vehicle
	cfg      Config
	seed     uint64
	nextID   int
	bus      *EventBus

	order []int // reused sort scratch
}

func NewVehicleSystem(cfg Config, seed uint64, bus *EventBus) *VehicleSystem {
	if seed == 0 {
		seed = 1
	}
	return &VehicleSystem{
		Vehicles: make([]Vehicle, 0, 32),
		cfg:      cfg,
		seed:     seed,
		bus:      bus,
	}
}

// NewVehicle rolls spawn-time dynamics for a vehicle at (row, col).
func (vs *VehicleSystem) NewVehicle(row, col int) Vehicle {
	vs.nextID++
	r := NewRand(vs.seed ^ uint64(vs.nextID)*0xA11CE5ED)
	return Vehicle{
		ID:      vs.nextID,
		Row:     row,
		Col:     col,
		PrevRow: row,
		PrevCol: col,
		Speed:   r.RangeF(1, 3),
		Mass:    float64(r.Range(1000, 3000)),
		Yaw:     r.RangeF(-5, 5),
		Accel:   r.RangeF(-1, 1),
		Alive:   true,
	}
}

// Find returns the vehicle with the given ID, or nil.
func (vs *VehicleSystem) Find(id int) *Vehicle {
	for i := range vs.Vehicles {
		if vs.Vehicles[i].ID == id {
			return &vs.Vehicles[i]
		}
	}
	return nil
}

// AliveCount returns the number of vehicles still on the grid.
func (vs *VehicleSystem) AliveCount() int {
	n := 0
	for i := range vs.Vehicles {
		if vs.Vehicles[i].Alive {
			n++
		}
	}
	return n
}

// Update advances every vehicle one tick. Back-most vehicles (highest row)
// move first, so a car never steps into a cell its leader is about to vacate
// this same tick.
func (vs *VehicleSystem) Update(g *Grid, frame uint64) {
	vs.order = vs.order[:0]
	for i := range vs.Vehicles {
		if vs.Vehicles[i].Alive {
			vs.order = append(vs.order, i)
		}
	}
	sort.Slice(vs.order, func(a, b int) bool {
		return vs.Vehicles[vs.order[a]].Row > vs.Vehicles[vs.order[b]].Row
	})

	for _, i := range vs.order {
		vs.step(&vs.Vehicles[i], g, frame)
	}
}

func (vs *VehicleSystem) step(v *Vehicle, g *Grid, frame uint64) {
	v.PrevRow = v.Row
	v.PrevCol = v.Col
	v.Blocked = false
	if v.Cooldown > 0 {
		v.Cooldown--
	}

	// Fault avoidance: a hazard within detection range prompts an early merge.
	if d := vs.faultDistAhead(v, g); d > 0 && d <= vs.cfg.FaultDetectionDistance {
		if vs.tryMerge(v, g, frame) {
			return
		}
	}

	// Keep the safe following distance; blocked cars try to merge out.
	for off := 1; off <= vs.cfg.SafeDistance; off++ {
		if g.Occupied(v.Row-off, v.Col) {
			if !vs.tryMerge(v, g, frame) {
				v.Blocked = true
			}
			return
		}
	}

	next := v.Row - 1
	if next < 0 {
		// Off the far end of the grid.
		g.SetVehicle(v.Row, v.Col, -1)
		v.Alive = false
		vs.bus.Emit(Event{Type: EventVehicleExited, Frame: frame, Vehicle: v.ID, Row: v.Row, Col: v.Col})
		return
	}
	if g.Occupied(next, v.Col) {
		v.Blocked = true
		return
	}

	g.Move(v.Row, v.Col, next, v.Col, v.ID)
	v.Row = next
	v.RowsAdvanced++

	if k := g.FaultAt(v.Row, v.Col); k != FaultNone {
		vs.applyFaultHit(v, k, frame)
	}
}

// faultDistAhead returns the distance in rows to the nearest fault ahead in
// the vehicle's lane, or 0 when none is within detection range.
func (vs *VehicleSystem) faultDistAhead(v *Vehicle, g *Grid) int {
	for d := 1; d <= vs.cfg.FaultDetectionDistance; d++ {
		if g.FaultAt(v.Row-d, v.Col) != FaultNone {
			return d
		}
	}
	return 0
}

// tryMerge attempts a lane change into an adjacent lane. The target lane must
// be clear for MergeSafeDistance rows both ahead and behind, and the vehicle's
// lane-change cooldown must have expired.
func (vs *VehicleSystem) tryMerge(v *Vehicle, g *Grid, frame uint64) bool {
	if v.Cooldown > 0 {
		return false
	}
	for _, dir := range [2]int{-1, 1} {
		newCol := v.Col + dir
		if newCol < 0 || newCol >= g.Cols {
			continue
		}
		clear := true
		for off := -vs.cfg.MergeSafeDistance; off <= vs.cfg.MergeSafeDistance; off++ {
			if g.Occupied(v.Row+off, newCol) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		g.Move(v.Row, v.Col, v.Row, newCol, v.ID)
		v.Col = newCol
		v.Cooldown = vs.cfg.LaneChangeCooldown
		v.LaneChanges++
		vs.bus.Emit(Event{Type: EventLaneChange, Frame: frame, Vehicle: v.ID, Row: v.Row, Col: v.Col})
		if k := g.FaultAt(v.Row, v.Col); k != FaultNone {
			vs.applyFaultHit(v, k, frame)
		}
		return true
	}
	return false
}

func (vs *VehicleSystem) applyFaultHit(v *Vehicle, k FaultKind, frame uint64) {
	v.FaultHits++
	r := NewRand(vs.seed ^ uint64(v.ID)*0xF33D ^ splitmix64(frame))
	switch k {
	case FaultPothole:
		// Jolt: speed loss and a yaw kick.
		v.Speed = clampF(v.Speed*0.7, 1, 3)
		v.Yaw = clampF(v.Yaw+r.RangeF(-2, 2), -5, 5)
	case FaultIce:
		// Slide: yaw drifts, braking is unreliable.
		v.Yaw = clampF(v.Yaw+r.RangeF(-3, 3), -5, 5)
		v.Accel = clampF(v.Accel+r.RangeF(-0.5, 0.5), -1, 1)
	case FaultRain:
		v.Speed = clampF(v.Speed*0.85, 1, 3)
	}
	vs.bus.Emit(Event{Type: EventFaultHit, Frame: frame, Vehicle: v.ID, Row: v.Row, Col: v.Col, Fault: k})
}

// RemoveDead removes exited vehicles using swap-remove.
func (vs *VehicleSystem) RemoveDead() {
	for i := 0; i < len(vs.Vehicles); {
		if !vs.Vehicles[i].Alive {
			vs.Vehicles[i] = vs.Vehicles[len(vs.Vehicles)-1]
			vs.Vehicles = vs.Vehicles[:len(vs.Vehicles)-1]
		} else {
			i++
		}
	}
}
