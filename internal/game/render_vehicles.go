package game

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func uploadCarTexture(pix []uint8, s int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, s, s, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return tex
}

// makeCarTexture builds an 8x8 top-down car: body, windshield, roof, trunk
// bands, tinted by the body colour.
func makeCarTexture(body RGB, seed uint64) uint32 {
	const s = 8
	pix := make([]uint8, s*s*4)

	r := NewRand(seed)
	body = body.Add(r.Range(-25, 25), r.Range(-25, 25), r.Range(-25, 25))
	window := Palette.Window
	roof := body.Mul(180)

	set := func(x, y int, col RGB) {
		i := (y*s + x) * 4
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}

	// Vertical bands front to back: hood, windshield, roof, trunk.
	for y := 0; y < s; y++ {
		var col RGB
		switch y / 2 {
		case 0:
			col = body
		case 1:
			col = window
		case 2:
			col = roof
		default:
			col = body
		}
		for x := 0; x < s; x++ {
			set(x, y, col)
		}
	}
	return uploadCarTexture(pix, s)
}

// InitCarTextures creates the car texture set: a few tints of the regular
// body colour plus a distinct texture for the ego vehicle.
func (r *Renderer) InitCarTextures() {
	rng := NewRand(0xC0FFEE)
	r.carTexVariants = make([]uint32, 6)
	for i := range r.carTexVariants {
		r.carTexVariants[i] = makeCarTexture(Palette.CarBody, rng.NextU64())
	}
	r.egoCarTex = makeCarTexture(Palette.EgoBody, 0xE90)
}

// vehicleScreenPos returns the top-left pixel of the car sprite for a vehicle,
// interpolated between its previous and current cell.
func vehicleScreenPos(cfg Config, v *Vehicle, blend float64, cam *Camera) (float32, float32) {
	row := float64(v.PrevRow) + (float64(v.Row)-float64(v.PrevRow))*blend
	col := float64(v.PrevCol) + (float64(v.Col)-float64(v.PrevCol))*blend
	x := col*float64(cfg.CellSize) + 5
	y := row*float64(cfg.CellSize) - cam.Offset + 5
	return float32(x), float32(y)
}

// DrawVehicles renders all cars as textured quads, the ego with its own
// texture. Cars are inset 5px in their cell and tilted by their yaw.
func (r *Renderer) DrawVehicles(sim *Sim, blend float64, cam *Camera, fbW, fbH int) {
	if len(sim.Vehicles.Vehicles) == 0 {
		return
	}
	cfg := sim.Cfg
	size := float32(cfg.CellSize - 10)

	gl.UseProgram(r.carProg)
	gl.BindVertexArray(r.carVAO)
	gl.Uniform2f(r.carURes, float32(fbW), float32(fbH))
	gl.Uniform2f(r.carUSize, size, size)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for i := range sim.Vehicles.Vehicles {
		v := &sim.Vehicles.Vehicles[i]
		if !v.Alive {
			continue
		}
		x, y := vehicleScreenPos(cfg, v, blend, cam)
		if y+size < 0 || y > float32(cfg.Height()) {
			continue
		}

		tex := r.carTexVariants[v.ID%len(r.carTexVariants)]
		if v.ID == sim.EgoID {
			tex = r.egoCarTex
		}

		gl.Uniform2f(r.carUOrigin, x, y)
		gl.Uniform1f(r.carURotation, float32(v.Yaw*math.Pi/180.0))

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.Disable(gl.BLEND)
}
