// Package rigidbody hosts character bodies in a resolv space. It integrates
// gravity, resolves movement against solid objects and answers the ray
// probes the movement controller needs.
//
// resolv works in pixels with y down; bodies and probes expose world units
// with y up, converted with PixelsPerUnit.
package rigidbody

import (
	"math"

	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	TagSolid = "solid"
	TagBody  = "body"
)

// World steps bodies inside one resolv space.
type World struct {
	Space *resolv.Space

	PixelsPerUnit float64
	// Gravity in units/s², negative pulls down.
	Gravity float64
	// SolidTags block body movement.
	SolidTags []string
	// SurfaceTags are reported by probes, first match wins.
	SurfaceTags []string
	// MaxSubstep bounds a single collision sweep in pixels so fast bodies
	// cannot skip over thin geometry.
	MaxSubstep float64
	// MaxPush is how far MakeRoom may shift a body sideways, in pixels.
	MaxPush float64
}

func NewWorld(space *resolv.Space, pixelsPerUnit, gravity float64) *World {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &World{
		Space:         space,
		PixelsPerUnit: pixelsPerUnit,
		Gravity:       gravity,
		SolidTags:     []string{TagSolid},
		MaxSubstep:    float64(min(space.CellWidth, space.CellHeight)) / 2,
		MaxPush:       12,
	}
}

// NewBody creates a body with its top-left corner at (x, y) pixels and adds
// it to the space.
func (w *World) NewBody(x, y, width, height, mass float64, tags ...string) *Body {
	obj := resolv.NewObject(x, y, width, height, append([]string{TagBody}, tags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	w.Space.Add(obj)
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Object: obj,
		world:  w,
		mass:   mass,
		col:    controller.Collider{Height: height / w.PixelsPerUnit},
	}
}

// AddStatic adds a fixed box with its top-left corner at (x, y) pixels.
func (w *World) AddStatic(x, y, width, height float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	w.Space.Add(obj)
	return obj
}

// Touching returns the first object tagged tag that overlaps b.
func (w *World) Touching(b *Body, tag string) *resolv.Object {
	o := b.Object
	var found *resolv.Object
	w.eachObject(o.X, o.Y, o.X+o.W, o.Y+o.H, func(other *resolv.Object) bool {
		if other == o || !other.HasTags(tag) || !overlaps(o.X, o.Y, o.W, o.H, other) {
			return true
		}
		found = other
		return false
	})
	return found
}

// Remove takes the body out of the space.
func (w *World) Remove(b *Body) {
	if b.Object.Space != nil {
		w.Space.Remove(b.Object)
	}
}

// Prober returns a probe that ignores b itself.
func (w *World) Prober(b *Body) *Prober {
	p := &Prober{world: w}
	if b != nil {
		p.ignore = b.Object
	}
	return p
}

// Step applies gravity and moves b by its velocity over dt seconds,
// stopping at solid objects. A blocked axis loses its velocity.
func (w *World) Step(b *Body, dt float64) {
	if dt <= 0 || b.Object.Space == nil {
		return
	}
	b.vel.Y += w.Gravity * dt

	ppu := w.PixelsPerUnit
	b.Grounded = false
	if w.sweep(b, b.vel.X*dt*ppu, 0) {
		b.vel.X = 0
	}
	if w.sweep(b, 0, -b.vel.Y*dt*ppu) {
		if b.vel.Y < 0 {
			b.Grounded = true
		}
		b.vel.Y = 0
	}
}

// sweep moves b along one axis in substeps and reports whether it was
// blocked.
func (w *World) sweep(b *Body, dx, dy float64) bool {
	d := dx + dy
	if d == 0 {
		return false
	}
	n := 1
	if w.MaxSubstep > 0 {
		n = int(math.Ceil(math.Abs(d) / w.MaxSubstep))
	}
	step := d / float64(n)
	for i := 0; i < n; i++ {
		moved, blocked := w.move(b.Object, step*boolf(dx != 0), step*boolf(dy != 0))
		if blocked {
			return true
		}
		if !moved {
			return false
		}
	}
	return false
}

// move shifts obj by (dx, dy), one of which is zero, as far as the nearest
// solid ahead allows.
func (w *World) move(obj *resolv.Object, dx, dy float64) (moved, blocked bool) {
	// resolv only looks at the cells of the destination box, pad by a pixel
	// so the moved edge is always covered
	if check := obj.Check(dx+gamemath.Sign(dx), dy+gamemath.Sign(dy), w.SolidTags...); check != nil {
		if solid, ok := nearestAhead(obj, check.Objects, dx, dy); ok {
			contact := check.ContactWithObject(solid)
			if dx != 0 {
				dx = contact.X()
			} else {
				dy = contact.Y()
			}
			blocked = true
		}
	}
	obj.X += dx
	obj.Y += dy
	obj.Update()
	return dx != 0 || dy != 0, blocked
}

// nearestAhead picks the closest object the movement would run into.
// Objects already overlapping obj are ignored so a stuck body can leave.
func nearestAhead(obj *resolv.Object, candidates []*resolv.Object, dx, dy float64) (*resolv.Object, bool) {
	var best *resolv.Object
	bestGap := math.Inf(1)
	for _, o := range candidates {
		if overlaps(obj.X, obj.Y, obj.W, obj.H, o) {
			continue
		}
		var gap float64
		switch {
		case dx > 0:
			if !spanOverlap(obj.Y, obj.H, o.Y, o.H) {
				continue
			}
			gap = o.X - (obj.X + obj.W)
		case dx < 0:
			if !spanOverlap(obj.Y, obj.H, o.Y, o.H) {
				continue
			}
			gap = obj.X - (o.X + o.W)
		case dy > 0:
			if !spanOverlap(obj.X, obj.W, o.X, o.W) {
				continue
			}
			gap = o.Y - (obj.Y + obj.H)
		case dy < 0:
			if !spanOverlap(obj.X, obj.W, o.X, o.W) {
				continue
			}
			gap = obj.Y - (o.Y + o.H)
		}
		if gap < -eps || gap > math.Abs(dx+dy)+eps {
			continue
		}
		if gap < bestGap {
			best, bestGap = o, gap
		}
	}
	return best, best != nil
}

// contact tolerance in pixels
const eps = 1e-6

// spanOverlap reports overlap of [a, a+al) and [b, b+bl) deeper than eps.
func spanOverlap(a, al, b, bl float64) bool {
	return a < b+bl-eps && a+al > b+eps
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return spanOverlap(x, w, o.X, o.W) && spanOverlap(y, h, o.Y, o.H)
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
