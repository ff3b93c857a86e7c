package factory

import (
	"github.com/automoto/wallkick/archetypes"
	"github.com/automoto/wallkick/components"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates a finish line trigger volume
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	obj := MustWorld(ecs).AddStatic(x, y, w, h, tags.ResolvFinishLine)
	obj.Data = finishLine

	components.Object.SetValue(finishLine, components.ObjectData{Object: obj})
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Activated: false,
	})

	return finishLine
}
