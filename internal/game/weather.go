package game

type WeatherMode uint8

const (
	WeatherClear WeatherMode = iota
	WeatherRain
)

func (m WeatherMode) String() string {
	if m == WeatherRain {
		return "rain"
	}
	return "clear"
}

// WeatherSystem is a two-state machine. Each frame it rolls the change chance;
// entering rain arms a fixed-duration countdown after which the sky clears on
// its own. A change roll during rain also ends it early.
type WeatherSystem struct {
	cfg       Config
	seed      uint64
	Mode      WeatherMode
	rainLeft  int // frames of rain remaining
	RainTotal int // frames rained this run, for the HUD
}

func NewWeatherSystem(cfg Config, seed uint64) *WeatherSystem {
	if seed == 0 {
		seed = 1
	}
	return &WeatherSystem{
		cfg:  cfg,
		seed: seed,
		Mode: WeatherClear,
	}
}

// Update advances one frame. Returns true when the mode flipped.
func (ws *WeatherSystem) Update(frame uint64) bool {
	r := NewRand(ws.seed ^ splitmix64(frame*0x57A7E12D))
	switch ws.Mode {
	case WeatherClear:
		if r.Percent(ws.cfg.WeatherChangeChance) {
			ws.Mode = WeatherRain
			ws.rainLeft = ws.cfg.RainDuration
			return true
		}
	case WeatherRain:
		ws.RainTotal++
		ws.rainLeft--
		if ws.rainLeft <= 0 || r.Percent(ws.cfg.WeatherChangeChance) {
			ws.Mode = WeatherClear
			ws.rainLeft = 0
			return true
		}
	}
	return false
}

// Raining reports whether rain faults and rain particles should spawn.
func (ws *WeatherSystem) Raining() bool { return ws.Mode == WeatherRain }

// RainRemaining returns frames of rain left, 0 when clear.
func (ws *WeatherSystem) RainRemaining() int { return ws.rainLeft }

// SpawnRain feeds rain particles into the particle system while raining.
// Rates are in drops per frame across the road viewport.
func (ws *WeatherSystem) SpawnRain(ps *ParticleSystem, cfg Config, frame uint64) {
	if !ws.Raining() || ps == nil {
		return
	}
	r := NewRand(ws.seed ^ splitmix64(frame*0x9E3779B185EBCA87))
	drops := 2 + r.Intn(3)
	w := float64(cfg.Width())
	h := float64(cfg.Height())
	for i := 0; i < drops; i++ {
		ps.Add(Particle{
			X:       r.RangeF(0, w),
			Y:       r.RangeF(-20, h*0.2),
			VX:      r.RangeF(-0.4, 0.4),
			VY:      r.RangeF(6.0, 10.0),
			Size:    1.0 + r.RangeF(0, 0.8),
			Life:    0,
			MaxLife: r.RangeF(30, 60),
			Col:     Palette.RainDrop,
		})
	}
}
