package rigidbody

import (
	"math"

	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Prober casts axis-aligned rays through the world's space.
type Prober struct {
	world  *World
	ignore *resolv.Object
}

var _ controller.Prober = (*Prober)(nil)

// Raycast returns the nearest object tagged layer along the ray. Distances
// are in world units. A ray starting inside an object hits at 0.
func (p *Prober) Raycast(origin controller.Vec2, dir controller.Direction, maxDistance float64, layer string) controller.Hit {
	if maxDistance < 0 {
		return controller.Hit{}
	}
	w := p.world
	ppu := w.PixelsPerUnit

	x0 := origin.X * ppu
	y0 := -origin.Y * ppu
	d := dir.Vector()
	dx := d.X * maxDistance * ppu
	dy := -d.Y * maxDistance * ppu

	// one pixel of slack so rays starting on a cell edge see both sides
	minX, maxX := math.Min(x0, x0+dx)-1, math.Max(x0, x0+dx)+1
	minY, maxY := math.Min(y0, y0+dy)-1, math.Max(y0, y0+dy)+1

	var hit *resolv.Object
	best := math.Inf(1)
	w.eachObject(minX, minY, maxX, maxY, func(o *resolv.Object) bool {
		if o == p.ignore || (layer != "" && !o.HasTags(layer)) {
			return true
		}
		ok, t := gamemath.SegmentAABB(x0, y0, dx, dy, o.X, o.Y, o.X+o.W, o.Y+o.H)
		if ok && t < best {
			hit, best = o, t
		}
		return true
	})
	if hit == nil {
		return controller.Hit{}
	}
	return controller.Hit{
		Hit:        true,
		Distance:   best * maxDistance,
		SurfaceTag: w.surfaceTag(hit),
	}
}

func (w *World) surfaceTag(o *resolv.Object) string {
	for _, t := range w.SurfaceTags {
		if o.HasTags(t) {
			return t
		}
	}
	return ""
}
