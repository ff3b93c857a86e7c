package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // pixels, centre of the view
	LookAheadX float64   // Current smoothed X offset for look-ahead
	Snapped    bool      // false until the first update jumps straight to the target
}

var Camera = donburi.NewComponentType[CameraData]()
