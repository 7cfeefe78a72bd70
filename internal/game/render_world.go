package game

// DrawWorld queues the road, lane lines and fault markers for the visible row
// window. Everything renders through the rect pipeline; FlushRects is called
// by the main loop after the HUD is queued.
func (r *Renderer) DrawWorld(sim *Sim, cam *Camera) {
	cfg := sim.Cfg
	w := float32(cfg.Width())
	h := float32(cfg.Height())
	cell := float32(cfg.CellSize)

	// Dark road background.
	r.QueueRect(0, 0, w, h, Palette.Road, 1)

	// Vertical dashed lane lines, half-cell dashes scrolling with the camera.
	dashPhase := float32(int(cam.Offset) % cfg.CellSize)
	for c := 1; c < cfg.Cols; c++ {
		x := float32(c) * cell
		for y := -dashPhase; y < h; y += cell {
			r.QueueRect(x-1, y, 2, cell/2, Palette.LaneLine, 1)
		}
	}

	// Faults: inset squares in their cells.
	first, last := cam.VisibleRows(cfg)
	for row := first; row <= last; row++ {
		for col := 0; col < cfg.Cols; col++ {
			k := sim.Grid.FaultAt(row, col)
			if k == FaultNone {
				continue
			}
			x := float32(col)*cell + 10
			y := float32(row)*cell - float32(cam.Offset) + 10
			r.QueueRect(x, y, cell-20, cell-20, FaultColor(k), 1)
		}
	}
}
