package assets

import (
	"bytes"
	"fmt"
	"io"

	cfg "github.com/automoto/wallkick/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader synthesizes, decodes and caches the game's sounds.
type AudioLoader struct {
	sfxCache   map[cfg.SoundID][]byte // decoded PCM, ready for a new player
	musicCache map[cfg.MusicID][]byte // WAV files, decoded per player
	context    *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[cfg.SoundID][]byte),
		musicCache: make(map[cfg.MusicID][]byte),
		context:    ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	melody, ok := cfg.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no sound effect %d", id)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(SynthesizeWAV(melody, l.context.SampleRate())))
	if err != nil {
		return fmt.Errorf("failed to decode sound effect %d: %w", id, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded sound effect %d: %w", id, err)
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadMusic returns a looping player for a music track.
func (l *AudioLoader) LoadMusic(id cfg.MusicID) (*audio.Player, error) {
	data, ok := l.musicCache[id]
	if !ok {
		melody, found := cfg.Sound.Music[id]
		if !found {
			return nil, fmt.Errorf("no music track %q", id)
		}
		data = SynthesizeWAV(melody, l.context.SampleRate())
		l.musicCache[id] = data
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music %q: %w", id, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
