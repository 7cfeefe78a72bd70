package game

type SimState int

const (
	StateMenu    SimState = iota
	StateRunning          // free-running at FPS
	StatePaused           // frozen; RIGHT steps, LEFT rewinds
)

// Session tracks run state and the frame pacing between sim ticks.
// The simulation advances one tick every AnimationSteps render frames;
// vehicles interpolate between cells on the frames in between.
type Session struct {
	State      SimState
	RenderTick int // frames since the last sim tick
	Steps      uint64
}

func NewSession() *Session {
	return &Session{State: StateMenu}
}

// Advance reports whether this render frame should run a sim tick, and
// updates the pacing counter. Only meaningful while running.
func (s *Session) Advance(animSteps int) bool {
	if s.State != StateRunning {
		return false
	}
	s.RenderTick++
	if s.RenderTick >= animSteps {
		s.RenderTick = 0
		s.Steps++
		return true
	}
	return false
}

// Blend returns the 0..1 interpolation factor between the previous and
// current vehicle cells for this render frame.
func (s *Session) Blend(animSteps int) float64 {
	if animSteps <= 1 || s.State != StateRunning {
		return 1.0
	}
	return clampF(float64(s.RenderTick)/float64(animSteps), 0, 1)
}

func (s *Session) TogglePause() {
	switch s.State {
	case StateRunning:
		s.State = StatePaused
	case StatePaused:
		s.State = StateRunning
		s.RenderTick = 0
	}
}

func (s *Session) Start() {
	if s.State == StateMenu {
		s.State = StateRunning
	}
}
