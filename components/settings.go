package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player settings for the running scene.
type SettingsData struct {
	MusicVolume   float64
	Debug         bool
	UnlockedLevel int
}

var Settings = donburi.NewComponentType[SettingsData]()
