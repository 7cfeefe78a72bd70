package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundMenuSelect SoundKind = iota
	SoundLaneChange
	SoundFaultThud
	SoundWeatherChime
)

// AudioSystem manages procedural sound effects and the rain ambience loop.
type AudioSystem struct {
	ctx        *oto.Context
	ready      chan struct{}
	rainPlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.55

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartRainAmbience starts the looping rain bed. No-op while already playing.
func StartRainAmbience() {
	if globalAudio == nil || globalAudio.rainPlayer != nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	reader := &rainReader{seed: uint64(time.Now().UnixNano() | 1)}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(0.22)
	globalAudio.rainPlayer = player
	player.Play()
}

// StopRainAmbience stops the rain bed if it is playing.
func StopRainAmbience() {
	if globalAudio == nil || globalAudio.rainPlayer == nil {
		return
	}
	globalAudio.rainPlayer.Close()
	globalAudio.rainPlayer = nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// rainReader streams an endless filtered-noise rain bed.
type rainReader struct {
	seed uint64
	t    float64
	lp   float64
}

func (r *rainReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	for i := 0; i < samples; i++ {
		n := lcg(&r.seed)
		// one-pole lowpass takes the hiss down to a patter
		r.lp += 0.12 * (n - r.lp)
		swell := 0.8 + 0.2*math.Sin(2*math.Pi*0.13*r.t)
		putStereoF32(p, i, softSat(r.lp*swell))
		r.t += 1.0 / SampleRate
	}
	return samples * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundLaneChange:
		return genLaneChange()
	case SoundFaultThud:
		return genFaultThud()
	case SoundWeatherChime:
		return genWeatherChime()
	}
	return nil
}

func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLaneChange: short upward indicator blip.
func genLaneChange() []byte {
	n := SampleRate * 55 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.3, 0.2, 0.4)
		freq := 650 + 450*p
		s := fm(t, freq, 2.0, 0.4) * env * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFaultThud: low suspension thump plus a gravel noise tail.
func genFaultThud() []byte {
	n := SampleRate * 140 / 1000
	buf := makeBuf(n)
	seed := uint64(0x7BAD)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.4, 0.12, 0.45)
		thump := math.Sin(2*math.Pi*(90-50*p)*t) * env
		grit := lcg(&seed) * adsr(p, 0.0, 0.25, 0.0, 0.1) * 0.25
		putStereoF32(buf, i, softSat((thump+grit)*0.6))
	}
	return buf
}

// genWeatherChime: two-note chime for weather transitions.
func genWeatherChime() []byte {
	n := SampleRate * 320 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.2, 0.4, 0.5)
		freq := 880.0
		if p > 0.45 {
			freq = 660.0
		}
		s := fm(t, freq, 3.0, 0.25) * env * 0.28
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
