package systems

import (
	"log"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine checks for player overlap with a finish line and triggers
// level complete. It fires once per level.
func UpdateFinishLine(ecs *ecs.ECS) {
	// Skip if level is already complete
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	body := components.Body.Get(playerEntry).Body
	obj := factory.MustWorld(ecs).Touching(body, tags.ResolvFinishLine)
	if obj == nil {
		return
	}

	// Get the finish line entity from the resolv object
	finishLineEntry, ok := obj.Data.(*donburi.Entry)
	if !ok || finishLineEntry == nil {
		return
	}

	finishLine := components.FinishLine.Get(finishLineEntry)

	// Only activate if not already activated
	if finishLine.Activated {
		return
	}

	finishLine.Activated = true
	levelComplete.IsComplete = true

	levelEntry, ok := components.Level.First(ecs.World)
	if ok {
		level := components.Level.Get(levelEntry)
		levelComplete.IsLast = level.IsLast()
		if !levelComplete.IsLast {
			SaveProgress(GetOrCreateSettings(ecs), level.LevelIndex+1)
		}
		log.Printf("Level %s complete after %v", level.CurrentLevel.Name,
			components.Movement.Get(playerEntry).Controller.Elapsed())
	}

	CrossfadeMusic(cfg.MusicVictory)
}
