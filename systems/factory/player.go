package factory

import (
	"log"

	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a character with its feet at (x, y) pixels, driven by
// a movement controller using the current cfg.Controller tuning.
func CreatePlayer(ecs *ecs.ECS, x, y float64, spawns int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	world := MustWorld(ecs)

	w, h := cfg.Physics.ColliderWidth, cfg.Physics.ColliderHeight
	body := world.NewBody(x-w/2, y-h, w, h, cfg.Physics.Mass, tags.ResolvPlayer)
	body.Object.Data = player

	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
		Spawns: spawns,
	})
	anim := &components.AnimationData{Params: map[string]bool{}}
	components.Animation.Set(player, anim)

	probes := &components.ProbeRecorder{Inner: world.Prober(body)}
	ctrl, err := controller.New(cfg.Controller, controller.Deps{
		Body:     body,
		Prober:   probes,
		Input:    inputFor(ecs),
		Animator: anim,
	})
	if err != nil {
		log.Printf("Warning: player controller: %v", err)
	}
	components.Movement.SetValue(player, components.MovementData{
		Controller: ctrl,
		Probes:     probes,
		Last:       ctrl.State(),
	})

	return player
}

// DestroyPlayer tears the controller down and takes the body out of the
// world before removing the entity.
func DestroyPlayer(ecs *ecs.ECS, player *donburi.Entry) {
	components.Movement.Get(player).Controller.Teardown()
	MustWorld(ecs).Remove(components.Body.Get(player).Body)
	ecs.World.Remove(player.Entity())
}

// inputFor returns the scene's input buffer, creating it if needed.
func inputFor(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
