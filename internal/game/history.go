package game

// Snapshot is one rewindable frame of simulation state. The occupancy grid
// and the vehicle slice are deep copies; the fault map inside the grid is
// shared on purpose (faults persist through rewinds).
type Snapshot struct {
	Frame    uint64
	Vehicles []Vehicle
	Grid     *Grid
	NextID   int
	EgoID    int
	EgoScore ScoreBreakdown
	Weather  WeatherMode
	RainLeft int
	RainTot  int
}

// History is a bounded LIFO of snapshots. When full, the oldest snapshot is
// dropped so memory stays flat on long runs.
type History struct {
	snaps []Snapshot
	max   int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = 600
	}
	return &History{
		snaps: make([]Snapshot, 0, max),
		max:   max,
	}
}

func (h *History) Len() int { return len(h.snaps) }

func (h *History) Push(s Snapshot) {
	if len(h.snaps) >= h.max {
		copy(h.snaps, h.snaps[1:])
		h.snaps = h.snaps[:len(h.snaps)-1]
	}
	h.snaps = append(h.snaps, s)
}

func (h *History) Pop() (Snapshot, bool) {
	if len(h.snaps) == 0 {
		return Snapshot{}, false
	}
	s := h.snaps[len(h.snaps)-1]
	h.snaps = h.snaps[:len(h.snaps)-1]
	return s, true
}
