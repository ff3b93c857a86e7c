package components

import (
	cfg "github.com/automoto/wallkick/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects a scene wants played this frame
// (singleton component). Players and the music crossfade are global and live
// in the audio system.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
