package systems

import (
	"github.com/automoto/wallkick/components"
	"github.com/yohamta/donburi/ecs"
)

// current survives scene changes; each scene gets a copy in its Settings
// component, written back whenever it is saved.
var current *components.SettingsData

// BootstrapSettings loads the persisted settings once and applies them.
func BootstrapSettings() components.SettingsData {
	s := LoadSettings()
	current = &s
	ApplySettings(s)
	return s
}

// CurrentSettings returns the settings shared across scenes.
func CurrentSettings() components.SettingsData {
	if current == nil {
		return BootstrapSettings()
	}
	return *current
}

// GetOrCreateSettings returns the scene's Settings component, seeded from
// the shared settings.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, CurrentSettings())
	}
	return components.Settings.Get(entry)
}
