package game

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the full set of tunables for a simulation run. It is built once at
// startup and passed by value into the systems that need it; nothing mutates it
// after load.
type Config struct {
	// Grid / display.
	Rows     int
	Cols     int
	CellSize int
	FPS      int
	ViewRows int // visible row window (viewport height in cells)

	// Logging panel.
	LogPanelWidth int

	// Fault probabilities, percent per injection roll.
	PotholeChance int
	IceChance     int
	RainChance    int

	// Weather dynamics.
	WeatherChangeChance int // percent per frame
	RainDuration        int // frames

	// Vehicle spawning.
	NumCarsSpawn       int
	MinVehicleDistance int
	MaxVehicleDistance int
	VehicleSpawnChance int // percent per frame

	// Happiness score weights.
	SafetyWeight     float64
	EfficiencyWeight float64
	ComfortWeight    float64

	// Vehicle behavior thresholds.
	FaultDetectionDistance int
	SafeDistance           int
	MergeSafeDistance      int
	AnimationSteps         int
	LaneChangeCooldown     int // frames
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Rows:     300,
		Cols:     4,
		CellSize: 40,
		FPS:      60,
		ViewRows: 15,

		LogPanelWidth: 300,

		PotholeChance: 5,
		IceChance:     3,
		RainChance:    8,

		WeatherChangeChance: 2,
		RainDuration:        300,

		NumCarsSpawn:       4,
		MinVehicleDistance: 8,
		MaxVehicleDistance: 15,
		VehicleSpawnChance: 5,

		SafetyWeight:     5.0,
		EfficiencyWeight: 3.0,
		ComfortWeight:    2.0,

		FaultDetectionDistance: 5,
		SafeDistance:           2,
		MergeSafeDistance:      2,
		AnimationSteps:         8,
		LaneChangeCooldown:     30,
	}
}

// Width returns the road viewport width in pixels.
func (c Config) Width() int { return c.Cols * c.CellSize }

// Height returns the viewport height in pixels.
func (c Config) Height() int { return c.ViewRows * c.CellSize }

// WindowWidth returns the full window width: road viewport plus log panel.
func (c Config) WindowWidth() int { return c.Width() + c.LogPanelWidth }

// LoadConfig reads a KEY = value file and overlays it on the defaults.
// Lines starting with '#' and blank lines are ignored. Unknown keys and
// malformed values are errors; absent keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	intFields, floatFields := cfg.fieldsByKey()

	set := func(key, value string) error {
		if p, ok := intFields[key]; ok {
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q", key, value)
			}
			*p = v
			return nil
		}
		if p, ok := floatFields[key]; ok {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("%s: invalid number %q", key, value)
			}
			*p = v
			return nil
		}
		return fmt.Errorf("unknown key %q", key)
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, fmt.Errorf("config %s:%d: expected KEY = value, got %q", path, lineNo, line)
		}
		if err := set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Config{}, fmt.Errorf("config %s:%d: %w", path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fieldsByKey maps the file key names onto the struct's fields. Built once
// per load, not per line.
func (c *Config) fieldsByKey() (map[string]*int, map[string]*float64) {
	intFields := map[string]*int{
		"ROWS":                     &c.Rows,
		"COLS":                     &c.Cols,
		"CELL_SIZE":                &c.CellSize,
		"FPS":                      &c.FPS,
		"VIEW_ROWS":                &c.ViewRows,
		"LOG_PANEL_WIDTH":          &c.LogPanelWidth,
		"POTHOLE_CHANCE":           &c.PotholeChance,
		"ICE_CHANCE":               &c.IceChance,
		"RAIN_CHANCE":              &c.RainChance,
		"WEATHER_CHANGE_CHANCE":    &c.WeatherChangeChance,
		"RAIN_DURATION":            &c.RainDuration,
		"NUM_CARS_SPAWN":           &c.NumCarsSpawn,
		"MIN_VEHICLE_DISTANCE":     &c.MinVehicleDistance,
		"MAX_VEHICLE_DISTANCE":     &c.MaxVehicleDistance,
		"VEHICLE_SPAWN_CHANCE":     &c.VehicleSpawnChance,
		"FAULT_DETECTION_DISTANCE": &c.FaultDetectionDistance,
		"SAFE_DISTANCE":            &c.SafeDistance,
		"MERGE_SAFE_DISTANCE":      &c.MergeSafeDistance,
		"ANIMATION_STEPS":          &c.AnimationSteps,
		"LANE_CHANGE_COOLDOWN":     &c.LaneChangeCooldown,
	}
	floatFields := map[string]*float64{
		"SAFETY_WEIGHT":     &c.SafetyWeight,
		"EFFICIENCY_WEIGHT": &c.EfficiencyWeight,
		"COMFORT_WEIGHT":    &c.ComfortWeight,
	}
	return intFields, floatFields
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive (ROWS=%d, COLS=%d)", c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("CELL_SIZE must be positive (got %d)", c.CellSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("FPS must be positive (got %d)", c.FPS)
	}
	if c.ViewRows <= 0 || c.ViewRows > c.Rows {
		return fmt.Errorf("VIEW_ROWS must be in 1..ROWS (got %d, ROWS=%d)", c.ViewRows, c.Rows)
	}
	if c.LogPanelWidth < 0 {
		return fmt.Errorf("LOG_PANEL_WIDTH must be non-negative (got %d)", c.LogPanelWidth)
	}

	pcts := []struct {
		name string
		v    int
	}{
		{"POTHOLE_CHANCE", c.PotholeChance},
		{"ICE_CHANCE", c.IceChance},
		{"RAIN_CHANCE", c.RainChance},
		{"WEATHER_CHANGE_CHANCE", c.WeatherChangeChance},
		{"VEHICLE_SPAWN_CHANCE", c.VehicleSpawnChance},
	}
	for _, p := range pcts {
		if p.v < 0 || p.v > 100 {
			return fmt.Errorf("%s must be in [0,100] (got %d)", p.name, p.v)
		}
	}

	if c.RainDuration < 0 {
		return fmt.Errorf("RAIN_DURATION must be non-negative (got %d)", c.RainDuration)
	}
	if c.NumCarsSpawn < 0 {
		return fmt.Errorf("NUM_CARS_SPAWN must be non-negative (got %d)", c.NumCarsSpawn)
	}
	if c.MinVehicleDistance < 0 || c.MaxVehicleDistance < 0 {
		return fmt.Errorf("vehicle distances must be non-negative (min=%d, max=%d)",
			c.MinVehicleDistance, c.MaxVehicleDistance)
	}
	if c.MinVehicleDistance > c.MaxVehicleDistance {
		return fmt.Errorf("MIN_VEHICLE_DISTANCE (%d) exceeds MAX_VEHICLE_DISTANCE (%d)",
			c.MinVehicleDistance, c.MaxVehicleDistance)
	}
	if c.SafetyWeight < 0 || c.EfficiencyWeight < 0 || c.ComfortWeight < 0 {
		return fmt.Errorf("score weights must be non-negative (safety=%g, efficiency=%g, comfort=%g)",
			c.SafetyWeight, c.EfficiencyWeight, c.ComfortWeight)
	}
	if c.FaultDetectionDistance < 0 || c.SafeDistance < 0 || c.MergeSafeDistance < 0 {
		return fmt.Errorf("behavior distances must be non-negative (detect=%d, safe=%d, merge=%d)",
			c.FaultDetectionDistance, c.SafeDistance, c.MergeSafeDistance)
	}
	if c.AnimationSteps < 1 {
		return fmt.Errorf("ANIMATION_STEPS must be at least 1 (got %d)", c.AnimationSteps)
	}
	if c.LaneChangeCooldown < 0 {
		return fmt.Errorf("LANE_CHANGE_COOLDOWN must be non-negative (got %d)", c.LaneChangeCooldown)
	}
	return nil
}
