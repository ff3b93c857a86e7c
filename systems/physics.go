package systems

import (
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs the fixed steps owed for this frame, then the
// controllers' render step.
func UpdatePhysics(ecs *ecs.ECS) {
	stepPhysics(ecs, 1/float64(ebiten.TPS()))
}

func stepPhysics(ecs *ecs.ECS, frame float64) {
	world := factory.MustWorld(ecs)
	n := world.Clock.Advance(frame)
	dt := world.Clock.Step
	world.Steps += n

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		body := components.Body.Get(e)
		before := mv.Controller.Stats()

		if n > 0 {
			mv.Probes.Reset()
		}
		for range n {
			mv.Controller.FixedStep(dt)
			world.Step(body.Body, dt)
		}
		mv.Controller.RenderStep()
		mv.Last = mv.Controller.State()

		for _, id := range movementSounds(before, mv.Controller.Stats()) {
			PlaySFX(ecs, id)
		}
	})
}

// movementSounds maps counter changes between two frames to sound effects.
func movementSounds(before, after controller.Stats) []cfg.SoundID {
	var out []cfg.SoundID
	if after.Jumps > before.Jumps {
		out = append(out, cfg.SoundJump)
	}
	if after.WallJumps > before.WallJumps {
		out = append(out, cfg.SoundWallJump)
	}
	if after.Slides > before.Slides {
		out = append(out, cfg.SoundSlide)
	}
	return out
}
