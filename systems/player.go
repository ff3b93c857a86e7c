package systems

import (
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn replaces the character when the respawn key is pressed or it
// falls out of the level.
func UpdateRespawn(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	body := components.Body.Get(playerEntry).Object
	if !input.Action(cfg.ActionRespawn).JustPressed && !fellOut(ecs, body.Y) {
		return
	}
	Respawn(ecs)
}

func fellOut(ecs *ecs.ECS, top float64) bool {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(entry).CurrentLevel
	return level != nil && top > float64(level.MapHeight)+cfg.Physics.KillPlaneMargin
}

// Respawn tears the current character down and spawns a fresh one at the
// spawn point with the current tuning.
func Respawn(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := *components.Player.Get(playerEntry)

	factory.DestroyPlayer(ecs, playerEntry)
	factory.CreatePlayer(ecs, player.SpawnX, player.SpawnY, player.Spawns+1)
	factory.MustWorld(ecs).Clock.Reset()
	SnapCamera(ecs)
}
