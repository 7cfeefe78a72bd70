package game

// SpawnSystem feeds vehicles into the bottom of the grid: an initial batch at
// start, then a per-frame chance roll for new arrivals. Spacing between
// vehicles in a lane respects MinVehicleDistance; initial placement uses a
// random gap in [MinVehicleDistance, MaxVehicleDistance].
type SpawnSystem struct {
	cfg  Config
	seed uint64
	bus  *EventBus
}

func NewSpawnSystem(cfg Config, seed uint64, bus *EventBus) *SpawnSystem {
	if seed == 0 {
		seed = 1
	}
	return &SpawnSystem{cfg: cfg, seed: seed, bus: bus}
}

// SpawnInitial places NumCarsSpawn vehicles near the bottom of the grid,
// cycling lanes and backing off by a random inter-vehicle gap each time a lane
// wraps around.
func (ss *SpawnSystem) SpawnInitial(g *Grid, vs *VehicleSystem) {
	r := NewRand(ss.seed ^ 0xBEEF)
	row := g.Rows - 1
	col := 0
	for i := 0; i < ss.cfg.NumCarsSpawn; i++ {
		if col >= g.Cols {
			col = 0
			row -= r.Range(ss.cfg.MinVehicleDistance, ss.cfg.MaxVehicleDistance)
		}
		if row < 0 {
			return
		}
		ss.add(g, vs, row, col, 0)
		col++
	}
}

// Update rolls the per-frame arrival chance and spawns at the bottom row in a
// random lane with enough clearance.
func (ss *SpawnSystem) Update(g *Grid, vs *VehicleSystem, frame uint64) {
	r := NewRand(ss.seed ^ splitmix64(frame*0xB0B5EED))
	if !r.Percent(ss.cfg.VehicleSpawnChance) {
		return
	}
	row := g.Rows - 1
	// Try each lane once, starting from a random one.
	start := r.Intn(g.Cols)
	for off := 0; off < g.Cols; off++ {
		col := (start + off) % g.Cols
		if !ss.laneClear(g, row, col) {
			continue
		}
		ss.add(g, vs, row, col, frame)
		return
	}
}

// laneClear checks the bottom cell and MinVehicleDistance rows above it.
func (ss *SpawnSystem) laneClear(g *Grid, row, col int) bool {
	for off := 0; off <= ss.cfg.MinVehicleDistance; off++ {
		if g.Occupied(row-off, col) {
			return false
		}
	}
	return true
}

func (ss *SpawnSystem) add(g *Grid, vs *VehicleSystem, row, col int, frame uint64) {
	if g.Occupied(row, col) {
		return
	}
	v := vs.NewVehicle(row, col)
	vs.Vehicles = append(vs.Vehicles, v)
	g.SetVehicle(row, col, v.ID)
	ss.bus.Emit(Event{Type: EventVehicleSpawned, Frame: frame, Vehicle: v.ID, Row: row, Col: col})
}
