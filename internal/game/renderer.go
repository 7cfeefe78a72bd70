package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const maxSpriteRender = 4000

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Rect program: streaming colored triangles.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectURes int32
	rectBuf  []float32

	// Car program: textured rotated quads.
	carProg      uint32
	carVAO       uint32
	carVBO       uint32
	carUOrigin   int32
	carUSize     int32
	carURotation int32
	carURes      int32
	carUTex      int32

	// Particle program: screen-space point sprites.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spURes     int32

	// Procedural car textures.
	carTexVariants []uint32
	egoCarTex      uint32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	carProg, err := linkProgram(carVertSrc, carFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("car program: %w", err)
	}
	spriteProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		gl.DeleteProgram(carProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		rectProg:   rectProg,
		carProg:    carProg,
		spriteProg: spriteProg,
	}

	// Rect VAO/VBO: streaming pos(2) + color(4).
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)
	rectStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteRender*6*int(rectStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, rectStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, rectStride, glOffset(2*4))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.rectURes = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	// Car VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var cVAO, cVBO uint32
	gl.GenVertexArrays(1, &cVAO)
	gl.GenBuffers(1, &cVBO)
	gl.BindVertexArray(cVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.carVAO = cVAO
	r.carVBO = cVBO

	gl.UseProgram(carProg)
	r.carUOrigin = gl.GetUniformLocation(carProg, gl.Str("uOrigin\x00"))
	r.carUSize = gl.GetUniformLocation(carProg, gl.Str("uSize\x00"))
	r.carURotation = gl.GetUniformLocation(carProg, gl.Str("uRotation\x00"))
	r.carURes = gl.GetUniformLocation(carProg, gl.Str("uResolution\x00"))
	r.carUTex = gl.GetUniformLocation(carProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.carUTex, 0)

	// Sprite VAO/VBO: streaming point sprites, 8 floats each.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)
	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spURes = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.carVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.carVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.carProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, tex := range r.carTexVariants {
		gl.DeleteTextures(1, &tex)
	}
	if r.egoCarTex != 0 {
		gl.DeleteTextures(1, &r.egoCarTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// QueueRect appends an axis-aligned filled rect to the rect buffer.
func (r *Renderer) QueueRect(x, y, w, h float32, col RGB, alpha float32) {
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	r.rectBuf = append(r.rectBuf,
		x, y, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x+w, y+h, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
	)
}

// FlushRects draws all queued rects and clears the buffer.
func (r *Renderer) FlushRects(fbW, fbH int) {
	if len(r.rectBuf) == 0 {
		return
	}
	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Uniform2f(r.rectURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.rectBuf) / 6
	gl.BufferData(gl.ARRAY_BUFFER, len(r.rectBuf)*4, gl.Ptr(r.rectBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.rectBuf = r.rectBuf[:0]
}

// DrawSprites renders point sprites. buf format:
// [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > maxSpriteRender {
		count = maxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
