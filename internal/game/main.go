package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and runs the render loop until the window
// closes. The simulation itself stays headless; this is the only place the
// GL, GLFW and audio layers meet it.
func RunDesktop(cfg Config, seed uint64) {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Road.R)/255.0,
		float32(Palette.Road.G)/255.0,
		float32(Palette.Road.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.InitCarTextures()

	sim := NewSim(cfg, seed)
	session := NewSession()
	particles := NewParticleSystem(1200)
	input := NewInput()

	var cam Camera
	if ego := sim.Ego(); ego != nil {
		cam.Follow(cfg, float64(ego.Row))
	} else {
		cam.Follow(cfg, float64(cfg.Rows-1))
	}
	cam.Snap()

	// Sound hooks ride the same bus the log does.
	sim.Bus.Subscribe(EventLaneChange, func(Event) { PlaySound(SoundLaneChange) })
	sim.Bus.Subscribe(EventFaultHit, func(Event) { PlaySound(SoundFaultThud) })
	sim.Bus.Subscribe(EventWeatherChanged, func(Event) { PlaySound(SoundWeatherChime) })

	frameDur := time.Second / time.Duration(cfg.FPS)
	logicalW, logicalH := cfg.WindowWidth(), cfg.Height()

	var spriteBuf []float32

	for !window.ShouldClose() {
		frameStart := time.Now()
		glfw.PollEvents()

		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
		}
		if input.JustPressed(window, glfw.KeySpace) {
			if session.State == StateMenu {
				PlaySound(SoundMenuSelect)
				session.Start()
			} else {
				session.TogglePause()
			}
		}
		if session.State == StatePaused {
			stepped := false
			if input.JustPressed(window, glfw.KeyRight) {
				sim.Step()
				stepped = true
			}
			if input.JustPressed(window, glfw.KeyLeft) {
				stepped = sim.StepBack()
			}
			if stepped {
				if ego := sim.Ego(); ego != nil {
					cam.Follow(cfg, float64(ego.Row))
				}
				cam.Snap()
			}
		}

		if session.Advance(cfg.AnimationSteps) {
			sim.Step()
		}

		if session.State != StateMenu {
			sim.Weather.SpawnRain(particles, cfg, sim.Frame)
			particles.Update(float64(cfg.Height()))
			if sim.Weather.Raining() {
				StartRainAmbience()
			} else {
				StopRainAmbience()
			}
			if ego := sim.Ego(); ego != nil {
				blend := session.Blend(cfg.AnimationSteps)
				visRow := float64(ego.PrevRow) + (float64(ego.Row)-float64(ego.PrevRow))*blend
				cam.Follow(cfg, visRow)
			}
			cam.Update()
		}

		fbW, fbH := window.GetFramebufferSize()
		rend.BeginFrame(fbW, fbH)

		if session.State != StateMenu {
			blend := session.Blend(cfg.AnimationSteps)
			rend.DrawWorld(sim, &cam)
			rend.FlushRects(logicalW, logicalH)
			rend.DrawVehicles(sim, blend, &cam, logicalW, logicalH)
			spriteBuf = particles.RenderData(spriteBuf)
			rend.DrawSprites(spriteBuf, logicalW, logicalH)
		}
		rend.RenderHUD(sim, session)
		rend.FlushRects(logicalW, logicalH)

		window.SwapBuffers()

		// Vsync paces us already; the sleep keeps the loop honest when the
		// driver runs unsynced.
		if elapsed := time.Since(frameStart); elapsed < frameDur {
			time.Sleep(frameDur - elapsed)
		}
	}
	StopRainAmbience()
}
