package assets

import (
	"encoding/binary"
	"math"
)

type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
	WaveNoise
)

// Tone describes a synthesized cue: a frequency sweep with a linear fade out.
type Tone struct {
	Wave     Wave
	From     float64
	To       float64
	Duration float64 // seconds
	Volume   float64
}

// tones stand in for any cue missing from Dir/sounds.
var tones = map[string]Tone{
	"pick":   {Wave: WaveSquare, From: 440, To: 880, Duration: 0.08, Volume: 0.25},
	"drop":   {Wave: WaveSquare, From: 660, To: 330, Duration: 0.08, Volume: 0.25},
	"jump":   {Wave: WaveSquare, From: 300, To: 600, Duration: 0.12, Volume: 0.2},
	"step":   {Wave: WaveNoise, From: 1, To: 1, Duration: 0.03, Volume: 0.1},
	"bounce": {Wave: WaveSine, From: 220, To: 110, Duration: 0.1, Volume: 0.35},
	"recv":   {Wave: WaveSine, From: 523, To: 1046, Duration: 0.3, Volume: 0.3},
	"tele":   {Wave: WaveSine, From: 200, To: 1600, Duration: 0.6, Volume: 0.3},
}

// ToneFor returns the synthesized fallback of a cue.
func ToneFor(name string) (Tone, bool) {
	t, ok := tones[name]
	return t, ok
}

// PCM renders t as signed 16-bit little-endian stereo, the format ebiten's
// audio players expect.
func (t Tone) PCM(sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	noise := uint32(0x12345678)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.From + (t.To-t.From)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch t.Wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * phase)
		case WaveNoise:
			noise ^= noise << 13
			noise ^= noise >> 17
			noise ^= noise << 5
			v = float64(noise)/float64(math.MaxUint32)*2 - 1
		default:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		}
		s := int16(v * t.Volume * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
