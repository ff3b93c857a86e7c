package factory

import (
	"log"

	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex selects a level and builds its world, solids and
// finish lines. Out-of-range indexes fall back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to play")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	current := levels[levelIndex]

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
	})

	CreateWorld(ecs, current)
	for _, s := range current.Solids {
		CreateSolid(ecs, s)
	}
	for _, f := range current.FinishLines {
		CreateFinishLine(ecs, f.X, f.Y, f.W, f.H)
	}

	log.Printf("Level %s loaded: %d solids, %d finish lines", current.Name, len(current.Solids), len(current.FinishLines))
	return level
}
