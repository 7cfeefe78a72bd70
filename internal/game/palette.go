package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := clamp(int(c.R)+dr, 0, 255)
	g := clamp(int(c.G)+dg, 0, 255)
	b := clamp(int(c.B)+db, 0, 255)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Road      RGB
	LaneLine  RGB
	PanelBG   RGB
	PanelLine RGB
	Pothole   RGB
	Ice       RGB
	RainSlick RGB
	RainDrop  RGB
	CarBody   RGB
	EgoBody   RGB
	Window    RGB
	HUDText   RGB
	HUDDim    RGB
	Good      RGB
	Warn      RGB
	Bad       RGB
}{
	Road:      RGB{R: 30, G: 30, B: 30},
	LaneLine:  RGB{R: 150, G: 150, B: 150},
	PanelBG:   RGB{R: 18, G: 20, B: 24},
	PanelLine: RGB{R: 70, G: 76, B: 86},
	Pothole:   RGB{R: 139, G: 69, B: 19},
	Ice:       RGB{R: 173, G: 216, B: 230},
	RainSlick: RGB{R: 0, G: 191, B: 255},
	RainDrop:  RGB{R: 175, G: 195, B: 220},
	CarBody:   RGB{R: 190, G: 80, B: 70},
	EgoBody:   RGB{R: 80, G: 200, B: 120},
	Window:    RGB{R: 140, G: 140, B: 140},
	HUDText:   RGB{R: 235, G: 235, B: 235},
	HUDDim:    RGB{R: 150, G: 150, B: 150},
	Good:      RGB{R: 100, G: 255, B: 100},
	Warn:      RGB{R: 255, G: 255, B: 100},
	Bad:       RGB{R: 255, G: 80, B: 80},
}

// FaultColor maps a fault kind to its display colour.
func FaultColor(k FaultKind) RGB {
	switch k {
	case FaultPothole:
		return Palette.Pothole
	case FaultIce:
		return Palette.Ice
	case FaultRain:
		return Palette.RainSlick
	}
	return Palette.Road
}
