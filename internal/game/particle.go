package game

// Particle is a short-lived screen-space visual (rain drops, splash).
// Positions are in viewport pixels, not grid cells.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64
	MaxLife float64
	Col     RGB
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = 2000
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update moves particles one frame and drops expired or off-screen ones with
// swap-remove.
func (ps *ParticleSystem) Update(viewH float64) {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life++
		p.X += p.VX
		p.Y += p.VY
		if p.Life >= p.MaxLife || p.Y > viewH+4 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData appends particle sprites to buf.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		t := p.Life / p.MaxLife
		a := float32(clampF(1.0-t*0.6, 0, 1)) * 0.75
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255.0, float32(p.Col.G)/255.0, float32(p.Col.B)/255.0,
			a, 0,
		)
	}
	return buf
}
