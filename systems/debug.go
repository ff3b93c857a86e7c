package systems

import (
	"image/color"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/automoto/wallkick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	probeMissColor = color.RGBA{255, 255, 0, 255}
	probeHitColor  = color.RGBA{255, 60, 60, 255}
)

// UpdateDebugToggle flips the debug overlay on the debug key and stores it.
func UpdateDebugToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.Action(cfg.ActionDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	SaveCurrentSettings(settings)
}

// DrawDebug outlines every collision object and draws the probes cast during
// the last fixed step.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	world := factory.MustWorld(ecs)
	for _, obj := range world.Space.Objects() {
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
			if obj.HasTags(cfg.Controller.NonClingableSurfaceTag) {
				c = color.RGBA{180, 220, 255, 255}
			}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvFinishLine) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x := float32(obj.X + v.offX)
		y := float32(obj.Y + v.offY)
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}

	ppu := world.PixelsPerUnit
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		for _, tr := range components.Movement.Get(e).Probes.Traces {
			length, c := tr.Length, probeMissColor
			if tr.Hit.Hit {
				length, c = tr.Hit.Distance, probeHitColor
			}
			dir := tr.Direction.Vector()
			// World units, y up, to screen pixels, y down.
			x0 := tr.Origin.X*ppu + v.offX
			y0 := -tr.Origin.Y*ppu + v.offY
			x1 := x0 + dir.X*length*ppu
			y1 := y0 - dir.Y*length*ppu
			// Probes are a few pixels long, so stretch them to stay visible.
			if length*ppu < 3 {
				x1, y1 = x0+dir.X*3, y0-dir.Y*3
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
		}
	})
}
