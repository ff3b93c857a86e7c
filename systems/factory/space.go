package factory

import (
	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/automoto/wallkick/shared/rigidbody"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld builds the collision world for a level and its fixed-step
// clock.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)

	cell := max(cfg.Physics.CellSize, 1)
	space := resolv.NewSpace(max(level.MapWidth, cell), max(level.MapHeight, cell), cell, cell)
	world := rigidbody.NewWorld(space, cfg.Physics.PixelsPerUnit, cfg.Physics.Gravity)

	components.World.SetValue(entry, components.WorldData{
		World: world,
		Clock: rigidbody.NewClock(cfg.Physics.FixedTimestep, cfg.Physics.MaxStepsPerFrame),
	})
	return entry
}

// MustWorld returns the scene's collision world.
func MustWorld(ecs *ecs.ECS) *components.WorldData {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		panic("no collision world in scene")
	}
	return components.World.Get(entry)
}
