package systems

import (
	"image/color"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps pixel world coordinates onto the screen around the camera.
type view struct {
	offX, offY float64
	w, h       float64
}

func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX: w/2 - camera.Position.X,
		offY: h/2 - camera.Position.Y,
		w:    w,
		h:    h,
	}, true
}

// visible culls boxes outside the screen.
func (v view) visible(x, y, w, h float64) bool {
	sx, sy := x+v.offX, y+v.offY
	return sx+w >= 0 && sy+h >= 0 && sx <= v.w && sy <= v.h
}

func (v view) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(o.X+v.offX), float32(o.Y+v.offY), float32(o.W), float32(o.H), c, false)
}

func surfaceColor(surface string) color.RGBA {
	switch surface {
	case "glass":
		return cfg.Render.GlassColor
	default:
		return cfg.Render.StoneColor
	}
}

// DrawLevel renders the solids and finish lines as flat boxes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.X, o.Y, o.W, o.H) {
			v.fill(screen, o.Object, surfaceColor(o.Surface))
		}
	})
	tags.FinishLine.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.X, o.Y, o.W, o.H) {
			v.fill(screen, o.Object, cfg.Render.FinishColor)
		}
	})
}

// DrawPlayer renders the character's collider, tinted by what it is doing.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Body.Get(e).Object
		mv := components.Movement.Get(e)
		v.fill(screen, o, playerColor(components.Animation.Get(e), mv.Last))

		// Facing marker
		eyeX := o.X + o.W - 4
		if mv.Last.FacingLeft {
			eyeX = o.X + 1
		}
		vector.FillRect(screen, float32(eyeX+v.offX), float32(o.Y+3+v.offY), 3, 3, cfg.White, false)
	})
}

func playerColor(anim *components.AnimationData, st controller.State) color.RGBA {
	switch {
	case st.ClingingToWall:
		return cfg.Render.ClingColor
	case anim.Bool(controller.ParamSliding):
		return cfg.Render.SlideColor
	default:
		return cfg.Render.PlayerColor
	}
}
