package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	Debug       bool    `json:"debug"`
}

// SavedProgress is how far the player got
type SavedProgress struct {
	UnlockedLevel int `json:"unlockedLevel"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "wallkick",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

func loadItem(key string, v any) bool {
	if gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings returns the stored settings merged with the defaults.
func LoadSettings() components.SettingsData {
	s := components.SettingsData{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		Debug:       cfg.Debug.Overlay,
	}

	var saved SavedSettings
	if loadItem("settings", &saved) {
		s.MusicVolume = saved.MusicVolume
		s.Debug = s.Debug || saved.Debug
	}
	var progress SavedProgress
	if loadItem("progress", &progress) {
		s.UnlockedLevel = progress.UnlockedLevel
	}
	return s
}

// SaveCurrentSettings writes the settings part of s to disk
func SaveCurrentSettings(s *components.SettingsData) {
	shared := *s
	current = &shared
	_ = saveItem("settings", SavedSettings{
		MusicVolume: s.MusicVolume,
		Debug:       s.Debug,
	})
}

// SaveProgress records that levels up to and including index are unlocked.
// Progress never goes backwards.
func SaveProgress(s *components.SettingsData, index int) {
	if index <= s.UnlockedLevel {
		return
	}
	s.UnlockedLevel = index
	shared := *s
	current = &shared
	_ = saveItem("progress", SavedProgress{UnlockedLevel: index})
}

// ApplySettings pushes loaded settings into the running systems
func ApplySettings(s components.SettingsData) {
	SetMusicVolume(s.MusicVolume)
}
