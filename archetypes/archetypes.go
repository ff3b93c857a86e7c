package archetypes

import (
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Movement,
		components.Animation,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
