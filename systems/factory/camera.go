package factory

import (
	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
