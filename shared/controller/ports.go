package controller

import "github.com/automoto/wallkick/shared/gamemath"

// Vec2 is a world-space vector, y up.
type Vec2 = gamemath.Vec2

// Rect is an axis-aligned box in world units, y up.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) CenterX() float64 { return (r.MinX + r.MaxX) / 2 }
func (r Rect) Height() float64  { return r.MaxY - r.MinY }

// Collider is the character's bottom-anchored collision shape. Offset is the
// vertical shift of the collider centre from its default centre.
type Collider struct {
	Height float64
	Offset float64
}

// Body is the rigid body the controller steers. The physics host integrates
// it; the controller is the only writer between physics steps.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	Mass() float64
	Bounds() Rect
	Collider() Collider
	SetCollider(c Collider)
}

// RoomMaker is implemented by bodies that can shift sideways to make room
// for a taller collider. Used when a ceiling-blocked restore gives up.
type RoomMaker interface {
	MakeRoom(height float64, preferLeft bool) bool
}

// Direction of a probe ray.
type Direction uint8

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Vector returns the unit vector of d in world space.
func (d Direction) Vector() Vec2 {
	switch d {
	case Down:
		return Vec2{Y: -1}
	case Up:
		return Vec2{Y: 1}
	case Left:
		return Vec2{X: -1}
	case Right:
		return Vec2{X: 1}
	}
	return Vec2{}
}

// Hit is the result of a raycast.
type Hit struct {
	Hit        bool
	Distance   float64
	SurfaceTag string
}

// Prober issues raycasts against tagged collision geometry.
type Prober interface {
	Raycast(origin Vec2, dir Direction, maxDistance float64, layer string) Hit
}

// Key is a logical input key.
type Key uint8

const (
	KeyMoveLeft Key = iota
	KeyMoveRight
	KeyJump
	KeySlide
)

// Input answers logical key queries for the current render step.
type Input interface {
	Held(k Key) bool
	DownEdge(k Key) bool
	UpEdge(k Key) bool
}

// Animator receives the exported animation flags.
type Animator interface {
	SetBool(name string, value bool)
}

// Animation parameter names written by the exporter.
const (
	ParamJumping  = "Jumping"
	ParamSliding  = "Sliding"
	ParamGrounded = "Grounded"
)
