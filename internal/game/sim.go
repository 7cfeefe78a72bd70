package game

// Sim wires the grid, vehicles, faults, weather and spawning into one
// deterministic frame-stepped simulation. Everything here is headless; the
// renderer only reads from it.
type Sim struct {
	Cfg      Config
	Grid     *Grid
	Vehicles *VehicleSystem
	Weather  *WeatherSystem
	Faults   *FaultSystem
	Spawner  *SpawnSystem
	Bus      *EventBus
	Log      *EventLog

	Frame    uint64
	EgoID    int
	EgoScore ScoreBreakdown

	history *History
}

func NewSim(cfg Config, seed uint64) *Sim {
	if seed == 0 {
		seed = 1
	}
	bus := NewEventBus()
	log := NewEventLog(128)
	log.Attach(bus)

	s := &Sim{
		Cfg:      cfg,
		Grid:     NewGrid(cfg.Rows, cfg.Cols),
		Vehicles: NewVehicleSystem(cfg, seed^0xCAFE, bus),
		Weather:  NewWeatherSystem(cfg, seed^0x57A7),
		Faults:   NewFaultSystem(cfg, seed^0xFA17, bus),
		Spawner:  NewSpawnSystem(cfg, seed^0xB0B, bus),
		Bus:      bus,
		Log:      log,
		EgoID:    -1,
		history:  NewHistory(600),
	}
	s.Spawner.SpawnInitial(s.Grid, s.Vehicles)
	s.EgoID, s.EgoScore = PickEgo(cfg, s.Grid, s.Vehicles)
	return s
}

// Step advances the simulation one tick. A snapshot of the pre-step state is
// pushed first so StepBack can rewind.
func (s *Sim) Step() {
	s.history.Push(s.snapshot())
	s.Frame++

	if s.Weather.Update(s.Frame) {
		s.Bus.Emit(Event{Type: EventWeatherChanged, Frame: s.Frame, Vehicle: -1, Weather: s.Weather.Mode})
	}
	s.Faults.Update(s.Grid, s.Vehicles, s.Weather.Raining(), s.Frame)
	s.Spawner.Update(s.Grid, s.Vehicles, s.Frame)
	s.Vehicles.Update(s.Grid, s.Frame)
	s.Vehicles.RemoveDead()

	ego, score := PickEgo(s.Cfg, s.Grid, s.Vehicles)
	if ego != s.EgoID {
		s.EgoID = ego
		if ego >= 0 {
			s.Bus.Emit(Event{Type: EventEgoChanged, Frame: s.Frame, Vehicle: ego})
		}
	}
	s.EgoScore = score
}

// StepBack rewinds one tick. Returns false when no history remains.
// Faults stay on the grid across rewinds; they are persistent for the run.
func (s *Sim) StepBack() bool {
	snap, ok := s.history.Pop()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// RewindDepth returns how many ticks StepBack can still undo.
func (s *Sim) RewindDepth() int { return s.history.Len() }

// Ego returns the current ego vehicle, or nil right after it exits.
func (s *Sim) Ego() *Vehicle {
	if s.EgoID < 0 {
		return nil
	}
	return s.Vehicles.Find(s.EgoID)
}

func (s *Sim) snapshot() Snapshot {
	vehicles := make([]Vehicle, len(s.Vehicles.Vehicles))
	copy(vehicles, s.Vehicles.Vehicles)
	return Snapshot{
		Frame:    s.Frame,
		Vehicles: vehicles,
		Grid:     s.Grid.Clone(),
		NextID:   s.Vehicles.nextID,
		EgoID:    s.EgoID,
		EgoScore: s.EgoScore,
		Weather:  s.Weather.Mode,
		RainLeft: s.Weather.RainRemaining(),
		RainTot:  s.Weather.RainTotal,
	}
}

func (s *Sim) restore(snap Snapshot) {
	s.Frame = snap.Frame
	s.Vehicles.Vehicles = s.Vehicles.Vehicles[:0]
	s.Vehicles.Vehicles = append(s.Vehicles.Vehicles, snap.Vehicles...)
	s.Grid = snap.Grid.Clone()
	s.Vehicles.nextID = snap.NextID
	s.EgoID = snap.EgoID
	s.EgoScore = snap.EgoScore
	s.Weather.Mode = snap.Weather
	s.Weather.rainLeft = snap.RainLeft
	s.Weather.RainTotal = snap.RainTot
}
