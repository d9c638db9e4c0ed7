package assets

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/blockdrop/ecs/component"
)

const (
	SampleRate = 44100
	maxVoices  = 12
)

// SoundBank plays named cues. Each cue is read from Dir/sounds/<name>.wav
// once and falls back to a synthesized tone.
type SoundBank struct {
	ctx    *audio.Context
	pcm    map[string][]byte
	voices map[string][]*audio.Player
	muted  bool
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	if ctx == nil {
		ctx = audio.CurrentContext()
	}
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &SoundBank{
		ctx:    ctx,
		pcm:    make(map[string][]byte),
		voices: make(map[string][]*audio.Player),
	}
}

func (b *SoundBank) SetMuted(muted bool) { b.muted = muted }

// Play starts the cue according to mode. Unknown cues are ignored.
func (b *SoundBank) Play(name string, mode component.PlayMode) {
	if b == nil || b.muted {
		return
	}
	data, ok := b.load(name)
	if !ok {
		return
	}

	playing := b.prune(name)
	switch mode {
	case component.PlayAbort:
		if len(playing) > 0 {
			return
		}
	case component.PlayOverride:
		if len(playing) > 0 {
			p := playing[0]
			if err := p.Rewind(); err != nil {
				log.Printf("assets: rewind %s: %v", name, err)
				return
			}
			p.Play()
			return
		}
	}
	if b.total() >= maxVoices {
		return
	}

	p := b.ctx.NewPlayerFromBytes(data)
	p.Play()
	b.voices[name] = append(playing, p)
}

// prune closes finished players of a cue and returns the ones still playing.
func (b *SoundBank) prune(name string) []*audio.Player {
	kept := b.voices[name][:0]
	for _, p := range b.voices[name] {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	b.voices[name] = kept
	return kept
}

func (b *SoundBank) total() int {
	n := 0
	for _, v := range b.voices {
		n += len(v)
	}
	return n
}

func (b *SoundBank) load(name string) ([]byte, bool) {
	if data, ok := b.pcm[name]; ok {
		return data, data != nil
	}
	data, err := b.decodeWAV(fmt.Sprintf("sounds/%s.wav", name))
	if err != nil {
		tone, ok := ToneFor(name)
		if !ok {
			log.Printf("assets: no sound %q", name)
			b.pcm[name] = nil
			return nil, false
		}
		log.Printf("assets: %s.wav unavailable, using a synthesized tone", name)
		data = tone.PCM(b.ctx.SampleRate())
	}
	b.pcm[name] = data
	return data, true
}

func (b *SoundBank) decodeWAV(path string) ([]byte, error) {
	raw, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	return io.ReadAll(stream)
}
