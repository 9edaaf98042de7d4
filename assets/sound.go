package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Sound names a synthesized effect.
type Sound int

const (
	SoundFire Sound = iota
	SoundExplosion
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundExplosion:
		return "explosion"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	clipsOnce sync.Once
	clips     map[Sound][]byte

	muted bool
)

// SetMuted silences every Play call.
func SetMuted(m bool) {
	muted = m
}

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// Play starts a fresh player for s. Errors are logged, never returned.
func Play(s Sound) {
	if muted {
		return
	}
	p, err := NewPlayer(s)
	if err != nil {
		log.Printf("assets: play %s: %v", s, err)
		return
	}
	p.Play()
}

// NewPlayer decodes the clip for s into a player on the shared context.
func NewPlayer(s Sound) (*audio.Player, error) {
	clipsOnce.Do(func() {
		clips = map[Sound][]byte{
			SoundFire:      EncodeWAV(synthFire(rand.New(rand.NewSource(1)))),
			SoundExplosion: EncodeWAV(synthExplosion(rand.New(rand.NewSource(2)))),
		}
	})
	b, ok := clips[s]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", int(s))
	}

	ctx := sharedContext()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", s, err)
	}
	return ctx.NewPlayer(stream)
}

// synthFire is a short noise crack over a falling sine thump.
func synthFire(rng *rand.Rand) []float64 {
	n := SampleRate * 18 / 100
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 28)
		freq := 180 - 120*t/0.18
		thump := math.Sin(2 * math.Pi * freq * t)
		crack := rng.Float64()*2 - 1
		out[i] = env * (0.55*thump + 0.45*crack*math.Exp(-t*60))
	}
	return out
}

// synthExplosion is low-passed noise with a slow exponential decay.
func synthExplosion(rng *rand.Rand) []float64 {
	n := SampleRate * 7 / 10
	out := make([]float64, n)
	var lp float64
	for i := range out {
		t := float64(i) / SampleRate
		// cutoff sweeps down as the blast fades
		alpha := 0.25 * math.Exp(-t*3)
		lp += alpha * ((rng.Float64()*2 - 1) - lp)
		out[i] = math.Exp(-t*5) * lp * 3
	}
	return out
}

// EncodeWAV wraps mono samples in [-1, 1] as a 16-bit PCM WAV file.
func EncodeWAV(samples []float64) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataLen := len(samples) * channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate*channels*bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for _, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		_ = binary.Write(&buf, binary.LittleEndian, int16(s*math.MaxInt16))
	}
	return buf.Bytes()
}
