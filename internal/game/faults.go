package game

// FaultSystem injects road hazards ahead of traffic. Potholes and ice roll
// their own chances every frame; rain slicks only appear while it rains.
// Faults land 2-4 rows ahead of a random live vehicle, in a random lane, and
// never overwrite an existing fault.
type FaultSystem struct {
	cfg  Config
	seed uint64
	bus  *EventBus
}

func NewFaultSystem(cfg Config, seed uint64, bus *EventBus) *FaultSystem {
	if seed == 0 {
		seed = 1
	}
	return &FaultSystem{cfg: cfg, seed: seed, bus: bus}
}

// Update rolls fault injection for one frame.
func (fs *FaultSystem) Update(g *Grid, vs *VehicleSystem, raining bool, frame uint64) {
	r := NewRand(fs.seed ^ splitmix64(frame*0xC2B2AE3D27D4EB4F))

	if r.Percent(fs.cfg.PotholeChance) {
		fs.place(g, vs, r, FaultPothole, frame)
	}
	if r.Percent(fs.cfg.IceChance) {
		fs.place(g, vs, r, FaultIce, frame)
	}
	if raining && r.Percent(fs.cfg.RainChance) {
		fs.place(g, vs, r, FaultRain, frame)
	}
}

func (fs *FaultSystem) place(g *Grid, vs *VehicleSystem, r *Rand, k FaultKind, frame uint64) {
	alive := make([]int, 0, len(vs.Vehicles))
	for i := range vs.Vehicles {
		if vs.Vehicles[i].Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return
	}
	v := &vs.Vehicles[alive[r.Intn(len(alive))]]
	row := v.Row - r.Range(2, 4)
	col := r.Intn(g.Cols)
	if !g.InBounds(row, col) {
		return
	}
	if g.SetFault(row, col, k) {
		fs.bus.Emit(Event{Type: EventFaultSpawned, Frame: frame, Vehicle: -1, Row: row, Col: col, Fault: k})
	}
}
