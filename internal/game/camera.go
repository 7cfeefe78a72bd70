package game

// Camera is a vertical scroll offset over the lane grid, in grid pixels.
// It centres the ego vehicle in the ViewRows viewport and eases toward the
// target so single-cell moves don't snap.
type Camera struct {
	Offset float64 // top of the viewport in grid pixels
	target float64
}

// Follow retargets the camera at a vehicle's interpolated row.
func (c *Camera) Follow(cfg Config, visRow float64) {
	c.target = visRow*float64(cfg.CellSize) - float64(cfg.Height())/2
	c.clampTarget(cfg)
}

// Update eases the offset toward the target. Called once per render frame.
func (c *Camera) Update() {
	c.Offset += (c.target - c.Offset) * 0.18
	if absF(c.target-c.Offset) < 0.5 {
		c.Offset = c.target
	}
}

// Snap jumps straight to the target (used on rewind and sim start).
func (c *Camera) Snap() {
	c.Offset = c.target
}

func (c *Camera) clampTarget(cfg Config) {
	maxOff := float64(cfg.Rows*cfg.CellSize - cfg.Height())
	c.target = clampF(c.target, 0, maxOff)
}

// VisibleRows returns the inclusive row range intersecting the viewport.
func (c *Camera) VisibleRows(cfg Config) (int, int) {
	first := int(c.Offset) / cfg.CellSize
	last := first + cfg.ViewRows
	return clamp(first, 0, cfg.Rows-1), clamp(last, 0, cfg.Rows-1)
}
