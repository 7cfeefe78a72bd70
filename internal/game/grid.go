package game

// FaultKind identifies an environmental hazard on a grid cell.
type FaultKind uint8

const (
	FaultNone FaultKind = iota
	FaultPothole
	FaultIce
	FaultRain
)

func (k FaultKind) String() string {
	switch k {
	case FaultPothole:
		return "pothole"
	case FaultIce:
		return "ice"
	case FaultRain:
		return "rain"
	}
	return "none"
}

// Grid is the lane grid: a Rows x Cols occupancy map of vehicle IDs plus a
// parallel fault map. Row 0 is the far end of the road; vehicles travel toward
// decreasing row.
type Grid struct {
	Rows, Cols int
	cells      []int // vehicle ID per cell, -1 = empty
	faults     []FaultKind
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Rows:   rows,
		Cols:   cols,
		cells:  make([]int, rows*cols),
		faults: make([]FaultKind, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = -1
	}
	return g
}

// InBounds reports whether (row, col) is a valid cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// VehicleAt returns the vehicle ID occupying (row, col), or -1.
// Out-of-bounds cells read as empty.
func (g *Grid) VehicleAt(row, col int) int {
	if !g.InBounds(row, col) {
		return -1
	}
	return g.cells[row*g.Cols+col]
}

// Occupied reports whether a vehicle occupies (row, col).
func (g *Grid) Occupied(row, col int) bool {
	return g.VehicleAt(row, col) >= 0
}

// SetVehicle writes a vehicle ID into a cell. id -1 clears it.
func (g *Grid) SetVehicle(row, col, id int) {
	if g.InBounds(row, col) {
		g.cells[row*g.Cols+col] = id
	}
}

// Move relocates a vehicle between cells, keeping the occupancy invariant.
func (g *Grid) Move(fromRow, fromCol, toRow, toCol, id int) {
	g.SetVehicle(fromRow, fromCol, -1)
	g.SetVehicle(toRow, toCol, id)
}

// FaultAt returns the fault on (row, col); out of bounds reads as FaultNone.
func (g *Grid) FaultAt(row, col int) FaultKind {
	if !g.InBounds(row, col) {
		return FaultNone
	}
	return g.faults[row*g.Cols+col]
}

// SetFault places a fault. Existing faults are never overwritten; faults are
// persistent for the run.
func (g *Grid) SetFault(row, col int, k FaultKind) bool {
	if !g.InBounds(row, col) {
		return false
	}
	i := row*g.Cols + col
	if g.faults[i] != FaultNone {
		return false
	}
	g.faults[i] = k
	return true
}

// FaultCount returns the number of faulted cells.
func (g *Grid) FaultCount() int {
	n := 0
	for _, f := range g.faults {
		if f != FaultNone {
			n++
		}
	}
	return n
}

// Clone deep-copies the occupancy map. The fault map is shared: faults are
// persistent and rewinding must not un-spawn them.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Rows:   g.Rows,
		Cols:   g.Cols,
		cells:  make([]int, len(g.cells)),
		faults: g.faults,
	}
	copy(cp.cells, g.cells)
	return cp
}
