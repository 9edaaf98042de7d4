package assets

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

func TestEncodeWAVHeader(t *testing.T) {
	b := EncodeWAV([]float64{0, 1, -1, 2})
	if len(b) != 44+8 {
		t.Fatalf("len = %d", len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Fatalf("bad chunk ids")
	}
	if rate := binary.LittleEndian.Uint32(b[24:28]); rate != SampleRate {
		t.Fatalf("sample rate = %d", rate)
	}
	samples := []int16{
		int16(binary.LittleEndian.Uint16(b[44:46])),
		int16(binary.LittleEndian.Uint16(b[46:48])),
		int16(binary.LittleEndian.Uint16(b[48:50])),
		int16(binary.LittleEndian.Uint16(b[50:52])),
	}
	want := []int16{0, 32767, -32767, 32767}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestSynthesizedClips(t *testing.T) {
	cases := []struct {
		name  string
		synth func(*rand.Rand) []float64
		n     int
	}{
		{"fire", synthFire, SampleRate * 18 / 100},
		{"explosion", synthExplosion, SampleRate * 7 / 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := c.synth(rand.New(rand.NewSource(1)))
			if len(out) != c.n {
				t.Fatalf("len = %d, want %d", len(out), c.n)
			}
			peak := 0.0
			for _, s := range out {
				if s < 0 {
					s = -s
				}
				if s > peak {
					peak = s
				}
			}
			if peak == 0 {
				t.Fatalf("clip is silent")
			}
			tail := out[len(out)-1]
			if tail > 0.1 || tail < -0.1 {
				t.Fatalf("clip does not fade: tail %v", tail)
			}
		})
	}
	if SoundExplosion.String() != "explosion" {
		t.Fatalf("String = %q", SoundExplosion.String())
	}
}
