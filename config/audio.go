package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundWallJump
	SoundSlide
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// MusicID names a looping music track
type MusicID string

const (
	MusicMenu    MusicID = "menu"
	MusicLevel   MusicID = "level"
	MusicVictory MusicID = "victory"
)

// Melody is a synthesized clip: a square-ish lead over a sine bass.
// Notes are frequencies in Hz, one per beat; 0 is a rest.
type Melody struct {
	BPM   float64
	Notes []float64
	Bass  []float64 // optional, cycled under the lead one note per bar of four beats
	Gain  float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	CrossfadeSeconds  float64 // each half of the finish-line crossfade
	MusicFadeDuration int     // frames for a plain fade out (60 = 1 second at 60fps)
	VolumeSteps       []float64
}

// SoundConfig maps sound and music IDs to their synthesized clips
type SoundConfig struct {
	Music             map[MusicID]Melody
	SFX               map[SoundID]Melody
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

// Note frequencies used by the built-in tracks.
const (
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteF3 = 174.61
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteF4 = 349.23
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     1.0,
		CrossfadeSeconds:  1.0,
		MusicFadeDuration: 60,
		VolumeSteps:       []float64{0, 0.25, 0.5, 0.75, 1.0},
	}

	Sound = SoundConfig{
		Music: map[MusicID]Melody{
			MusicMenu: {
				BPM:   90,
				Notes: []float64{noteE4, 0, noteG4, 0, noteA4, noteG4, noteE4, 0},
				Bass:  []float64{noteC3, noteA3 / 2},
				Gain:  0.3,
			},
			MusicLevel: {
				BPM: 140,
				Notes: []float64{
					noteC4, noteE4, noteG4, noteE4, noteD4, noteF4, noteA4, noteF4,
					noteE4, noteG4, noteB4, noteG4, noteF4, noteA4, noteC5, noteA4,
				},
				Bass: []float64{noteC3, noteF3, noteG3 / 2, noteF3},
				Gain: 0.25,
			},
			MusicVictory: {
				BPM:   120,
				Notes: []float64{noteC5, noteE5, noteG5, 0, noteG5, noteE5, noteC5, 0},
				Bass:  []float64{noteC3, noteG3 / 2},
				Gain:  0.3,
			},
		},
		SFX: map[SoundID]Melody{
			SoundJump:         {BPM: 1200, Notes: []float64{noteC5, noteE5}, Gain: 0.4},
			SoundWallJump:     {BPM: 1200, Notes: []float64{noteG4, noteC5, noteG5}, Gain: 0.4},
			SoundSlide:        {BPM: 600, Notes: []float64{noteC3, noteC3}, Gain: 0.5},
			SoundMenuNavigate: {BPM: 1500, Notes: []float64{noteA4}, Gain: 0.3},
			SoundMenuSelect:   {BPM: 1200, Notes: []float64{noteA4, noteE5}, Gain: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSlide: 0.8,
		},
	}
}
