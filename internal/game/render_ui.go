package game

import "fmt"

// HUD and log panel. Everything is queued through the rect pipeline and
// flushed in one draw call at the end of the frame.

const (
	hudScale  = 2
	logScale  = 1.5
	hudMargin = 8
)

// RenderHUD queues the overlay for the current session state: the start
// screen, the running HUD with the ego happiness breakdown, the paused
// banner, and the right-side event log panel.
func (r *Renderer) RenderHUD(sim *Sim, sess *Session) {
	cfg := sim.Cfg

	switch sess.State {
	case StateMenu:
		r.drawMenu(cfg)
		return
	case StatePaused:
		r.drawPausedBanner(cfg, sim)
	}
	r.drawStatusBar(sim)
	r.drawLogPanel(sim)
}

func (r *Renderer) drawMenu(cfg Config) {
	r.QueueRect(0, 0, float32(cfg.WindowWidth()), float32(cfg.Height()), Palette.PanelBG, 1)

	title := "COLLABORATIVE AUTONOMOUS VEHICLES"
	cx := cfg.WindowWidth() / 2
	cy := cfg.Height() / 2
	r.DrawString(title, cx-TextWidth(title, hudScale)/2, cy-60, hudScale, Palette.HUDText)

	lines := []string{
		"SPACE  START / PAUSE",
		"RIGHT  STEP WHILE PAUSED",
		"LEFT   REWIND WHILE PAUSED",
		"ESC    QUIT",
	}
	y := cy - 10
	for _, line := range lines {
		r.DrawString(line, cx-TextWidth(lines[1], logScale)/2, y, logScale, Palette.HUDDim)
		y += 18
	}
}

func (r *Renderer) drawPausedBanner(cfg Config, sim *Sim) {
	msg := fmt.Sprintf("PAUSED  (REWIND %d)", sim.RewindDepth())
	w := TextWidth(msg, hudScale)
	x := (cfg.Width() - w) / 2
	r.QueueRect(float32(x-hudMargin), float32(cfg.Height()/2-14), float32(w+2*hudMargin), 28, Palette.PanelBG, 0.85)
	r.DrawString(msg, x, cfg.Height()/2-7, hudScale, Palette.Warn)
}

// drawStatusBar queues the top strip over the road: frame counter, weather,
// fleet counts and the ego happiness breakdown.
func (r *Renderer) drawStatusBar(sim *Sim) {
	cfg := sim.Cfg
	r.QueueRect(0, 0, float32(cfg.Width()), 74, Palette.PanelBG, 0.78)

	x := hudMargin
	r.DrawString(fmt.Sprintf("TICK %d", sim.Frame), x, 6, logScale, Palette.HUDText)
	weatherCol := Palette.HUDDim
	if sim.Weather.Raining() {
		weatherCol = Palette.RainSlick
	}
	r.DrawString(fmt.Sprintf("WEATHER %s", sim.Weather.Mode), x+110, 6, logScale, weatherCol)
	r.DrawString(fmt.Sprintf("CARS %d  FAULTS %d", sim.Vehicles.AliveCount(), sim.Grid.FaultCount()),
		x+260, 6, logScale, Palette.HUDDim)

	ego := sim.Ego()
	if ego == nil {
		r.DrawString("EGO: NONE", x, 26, logScale, Palette.HUDDim)
		return
	}
	b := sim.EgoScore
	r.DrawString(fmt.Sprintf("EGO CAR %d  LANE %d  ROW %d", ego.ID, ego.Col, ego.Row),
		x, 26, logScale, Palette.EgoBody)
	r.DrawString(fmt.Sprintf("SAFE %.2f  EFF %.2f  COMF %.2f", b.Safety, b.Efficiency, b.Comfort),
		x, 42, logScale, Palette.HUDDim)

	total := fmt.Sprintf("HAPPINESS %.2f / %.1f", b.Total, MaxScore(cfg))
	r.DrawString(total, x, 58, logScale, scoreColor(b.Total, MaxScore(cfg)))
	r.drawScoreMeter(float32(x+TextWidth(total, logScale)+14), 58, b.Total, MaxScore(cfg))
}

func (r *Renderer) drawScoreMeter(x, y float32, total, max float64) {
	const meterW, meterH = 90, 10
	r.QueueRect(x, y, meterW, meterH, Palette.PanelLine, 1)
	frac := float32(clampF(total/max, 0, 1))
	r.QueueRect(x+1, y+1, (meterW-2)*frac, meterH-2, scoreColor(total, max), 1)
}

func scoreColor(total, max float64) RGB {
	switch frac := total / max; {
	case frac >= 0.7:
		return Palette.Good
	case frac >= 0.4:
		return Palette.Warn
	default:
		return Palette.Bad
	}
}

// drawLogPanel queues the event log strip to the right of the road.
func (r *Renderer) drawLogPanel(sim *Sim) {
	cfg := sim.Cfg
	px := float32(cfg.Width())
	r.QueueRect(px, 0, float32(cfg.LogPanelWidth), float32(cfg.Height()), Palette.PanelBG, 1)
	r.QueueRect(px, 0, 2, float32(cfg.Height()), Palette.PanelLine, 1)

	x := cfg.Width() + hudMargin
	r.DrawString("EVENT LOG", x, 6, logScale, Palette.HUDText)
	r.QueueRect(px+hudMargin, 22, float32(cfg.LogPanelWidth-2*hudMargin), 1, Palette.PanelLine, 1)

	const lineH = 14
	maxLines := (cfg.Height() - 34) / lineH
	lines := sim.Log.Tail(maxLines)
	y := 30
	for _, line := range lines {
		r.DrawString(line, x, y, logScale, Palette.HUDDim)
		y += lineH
	}
}
