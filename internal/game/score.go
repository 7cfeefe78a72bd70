package game

// Happiness scoring: a weighted blend of safety, efficiency and comfort,
// each normalized to [0,1]. The best-scoring vehicle is the ego and the
// camera follows it.

// ScoreBreakdown carries the per-component values alongside the total, for
// the HUD and the log panel.
type ScoreBreakdown struct {
	Safety     float64
	Efficiency float64
	Comfort    float64
	Total      float64
}

// Score evaluates one vehicle against the current grid.
//
// Safety penalizes proximity to the nearest fault ahead (1/dist) and a
// violated following distance. Efficiency is speed relative to the 3
// cells/tick spawn maximum, halved while blocked. Comfort penalizes yaw and
// acceleration magnitudes, yaw weighted harder than acceleration.
func Score(cfg Config, g *Grid, v *Vehicle) ScoreBreakdown {
	var b ScoreBreakdown

	faultPenalty := 0.0
	for d := 1; d <= cfg.FaultDetectionDistance; d++ {
		if g.FaultAt(v.Row-d, v.Col) != FaultNone {
			faultPenalty = 1.0 / float64(d)
			break
		}
	}
	gapPenalty := 0.0
	for d := 1; d <= cfg.SafeDistance; d++ {
		if g.Occupied(v.Row-d, v.Col) {
			gapPenalty = 0.5
			break
		}
	}
	b.Safety = clampF(1.0-faultPenalty-gapPenalty, 0, 1)

	b.Efficiency = clampF(v.Speed/3.0, 0, 1)
	if v.Blocked {
		b.Efficiency *= 0.5
	}

	b.Comfort = clampF(1.0-(absF(v.Yaw)/5.0)*0.57-absF(v.Accel)*0.43, 0, 1)

	b.Total = cfg.SafetyWeight*b.Safety +
		cfg.EfficiencyWeight*b.Efficiency +
		cfg.ComfortWeight*b.Comfort
	return b
}

// MaxScore returns the highest possible happiness total for the config.
func MaxScore(cfg Config) float64 {
	return cfg.SafetyWeight + cfg.EfficiencyWeight + cfg.ComfortWeight
}

// PickEgo returns the ID of the happiest vehicle, or -1 when the grid is
// empty. Ties break toward the lower ID so the choice is stable.
func PickEgo(cfg Config, g *Grid, vs *VehicleSystem) (int, ScoreBreakdown) {
	bestID := -1
	var best ScoreBreakdown
	for i := range vs.Vehicles {
		v := &vs.Vehicles[i]
		if !v.Alive {
			continue
		}
		b := Score(cfg, g, v)
		if bestID == -1 || b.Total > best.Total ||
			(b.Total == best.Total && v.ID < bestID) {
			bestID = v.ID
			best = b
		}
	}
	return bestID, best
}
