package factory

import (
	"slices"

	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid adds a solid tile run. Its surface becomes a resolv tag the
// movement probes report.
func CreateSolid(ecs *ecs.ECS, s leveldata.SolidRect) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	world := MustWorld(ecs)

	obj := world.AddStatic(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvGround, s.Surface)
	obj.Data = solid // Link for O(1) lookup

	if s.Surface != "" && !slices.Contains(world.SurfaceTags, s.Surface) {
		world.SurfaceTags = append(world.SurfaceTags, s.Surface)
	}

	components.Object.SetValue(solid, components.ObjectData{Object: obj, Surface: s.Surface})
	return solid
}
