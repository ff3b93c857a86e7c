package systems

import (
	"log"
	"sync"

	"github.com/automoto/wallkick/assets"
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     cfg.MusicID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFade         *musicFade
	audioInitOnce      sync.Once
)

// musicFade moves the music volume along a tween. When next is set the
// track is swapped at the bottom of the fade and faded back in.
type musicFade struct {
	out  *gween.Tween
	in   *gween.Tween
	next cfg.MusicID
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes and decodes all sound effects at startup to avoid
// lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio plays queued sound effects and advances music fades.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	updateMusicFade(1 / float32(ebiten.TPS()))

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func updateMusicFade(dt float32) {
	f := globalFade
	if f == nil {
		return
	}

	if f.out != nil {
		v, done := f.out.Update(dt)
		if globalMusicPlayer != nil {
			globalMusicPlayer.SetVolume(float64(v))
		}
		if !done {
			return
		}
		f.out = nil
		if f.next == "" {
			StopMusic()
			return
		}
		startMusic(f.next, 0)
		f.in = gween.New(0, float32(globalMusicVolume), float32(cfg.Audio.CrossfadeSeconds), ease.Linear)
	}

	if f.in != nil {
		v, done := f.in.Update(dt)
		if globalMusicPlayer != nil {
			globalMusicPlayer.SetVolume(float64(v))
		}
		if done {
			globalFade = nil
		}
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts a looping track at the current music volume. Any fade in
// progress is dropped.
func PlayMusic(id cfg.MusicID) {
	initGlobalAudio()
	globalFade = nil

	// Already playing this music
	if globalMusicKey == id && globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(globalMusicVolume)
		return
	}
	startMusic(id, globalMusicVolume)
}

func startMusic(id cfg.MusicID, volume float64) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}

	player, err := globalAudioLoader.LoadMusic(id)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	player.SetVolume(volume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = id
}

// CrossfadeMusic fades the current track out, then fades id in. Each half
// lasts cfg.Audio.CrossfadeSeconds.
func CrossfadeMusic(id cfg.MusicID) {
	initGlobalAudio()
	if globalMusicPlayer == nil {
		startMusic(id, 0)
		globalFade = &musicFade{
			in: gween.New(0, float32(globalMusicVolume), float32(cfg.Audio.CrossfadeSeconds), ease.Linear),
		}
		return
	}
	globalFade = &musicFade{
		out:  gween.New(float32(globalMusicPlayer.Volume()), 0, float32(cfg.Audio.CrossfadeSeconds), ease.Linear),
		next: id,
	}
}

// FadeOutMusic fades the current track out and stops it.
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	seconds := float32(cfg.Audio.MusicFadeDuration) / float32(ebiten.TPS())
	globalFade = &musicFade{
		out: gween.New(float32(globalMusicPlayer.Volume()), 0, seconds, ease.Linear),
	}
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFade = nil
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFade == nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// MusicVolume returns the current music volume (0.0 - 1.0)
func MusicVolume() float64 {
	return globalMusicVolume
}

// CycleMusicVolume moves the music volume to the next configured step,
// wrapping to the first after the loudest.
func CycleMusicVolume() float64 {
	SetMusicVolume(nextVolumeStep(globalMusicVolume, cfg.Audio.VolumeSteps))
	return globalMusicVolume
}

func nextVolumeStep(cur float64, steps []float64) float64 {
	if len(steps) == 0 {
		return cur
	}
	for _, s := range steps {
		if s > cur+1e-6 {
			return s
		}
	}
	return steps[0]
}

// UpdateVolumeKey cycles the music volume on the volume key and stores it.
func UpdateVolumeKey(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.Action(cfg.ActionVolume).JustPressed {
		return
	}
	vol := CycleMusicVolume()
	settings := GetOrCreateSettings(e)
	settings.MusicVolume = vol
	SaveCurrentSettings(settings)
	log.Printf("Music volume %.0f%%", vol*100)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
