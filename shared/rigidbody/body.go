package rigidbody

import (
	"github.com/automoto/wallkick/shared/controller"
	"github.com/solarlune/resolv"
)

// Body is a character body backed by a resolv object. It implements
// controller.Body and controller.RoomMaker.
type Body struct {
	Object *resolv.Object
	// Grounded is set by World.Step when downward movement was blocked.
	Grounded bool

	world *World
	vel   controller.Vec2
	mass  float64
	col   controller.Collider
}

var (
	_ controller.Body      = (*Body)(nil)
	_ controller.RoomMaker = (*Body)(nil)
)

func (b *Body) Velocity() controller.Vec2     { return b.vel }
func (b *Body) SetVelocity(v controller.Vec2) { b.vel = v }
func (b *Body) Mass() float64                 { return b.mass }
func (b *Body) Collider() controller.Collider { return b.col }

// Bounds returns the collider box in world units.
func (b *Body) Bounds() controller.Rect {
	ppu := b.world.PixelsPerUnit
	o := b.Object
	return controller.Rect{
		MinX: o.X / ppu,
		MaxX: (o.X + o.W) / ppu,
		MinY: -(o.Y + o.H) / ppu,
		MaxY: -o.Y / ppu,
	}
}

// SetCollider resizes the object around its default centre shifted by
// c.Offset.
func (b *Body) SetCollider(c controller.Collider) {
	if c.Height <= 0 {
		return
	}
	ppu := b.world.PixelsPerUnit
	o := b.Object

	anchor := o.Y + o.H/2 + b.col.Offset*ppu
	h := c.Height * ppu
	cy := anchor - c.Offset*ppu

	o.H = h
	o.Y = cy - h/2
	o.SetShape(resolv.NewRectangle(0, 0, o.W, h))
	o.Update()
	b.col = c
}

// MakeRoom shifts the body sideways, up to World.MaxPush pixels, to a spot
// where a collider of the given height fits. The bottom edge stays put.
func (b *Body) MakeRoom(height float64, preferLeft bool) bool {
	o := b.Object
	grow := height*b.world.PixelsPerUnit - o.H
	if grow <= 0 {
		return true
	}
	top := o.Y - grow
	h := o.H + grow
	if b.world.free(o, o.X, top, o.W, h) {
		return true
	}

	dirs := []float64{1, -1}
	if preferLeft {
		dirs = []float64{-1, 1}
	}
	for _, dir := range dirs {
		for offset := 1.0; offset <= b.world.MaxPush; offset++ {
			if b.world.free(o, o.X+offset*dir, top, o.W, h) {
				o.X += offset * dir
				o.Update()
				return true
			}
		}
	}
	return false
}

// Position is the bottom-centre of the body in world units.
func (b *Body) Position() controller.Vec2 {
	r := b.Bounds()
	return controller.Vec2{X: r.CenterX(), Y: r.MinY}
}

// Teleport puts the body's top-left corner at (x, y) pixels and stops it.
func (b *Body) Teleport(x, y float64) {
	b.Object.X = x
	b.Object.Y = y
	b.Object.Update()
	b.vel = controller.Vec2{}
}

// free reports whether the box (pixels) overlaps no solid other than self.
func (w *World) free(self *resolv.Object, x, y, width, height float64) bool {
	found := true
	w.eachObject(x, y, x+width, y+height, func(o *resolv.Object) bool {
		if o == self || !w.isSolid(o) {
			return true
		}
		if overlaps(x, y, width, height, o) {
			found = false
			return false
		}
		return true
	})
	return found
}

func (w *World) isSolid(o *resolv.Object) bool {
	for _, t := range w.SolidTags {
		if o.HasTags(t) {
			return true
		}
	}
	return false
}

// eachObject visits every object registered in the cells covering the
// pixel box once. fn returns false to stop.
func (w *World) eachObject(minX, minY, maxX, maxY float64, fn func(*resolv.Object) bool) {
	cx, cy := w.Space.WorldToSpace(minX, minY)
	ex, ey := w.Space.WorldToSpace(maxX, maxY)
	seen := map[*resolv.Object]bool{}
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := w.Space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if seen[o] {
					continue
				}
				seen[o] = true
				if !fn(o) {
					return
				}
			}
		}
	}
}
