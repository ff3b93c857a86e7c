package components

import (
	"github.com/automoto/wallkick/shared/rigidbody"
	"github.com/yohamta/donburi"
)

// WorldData owns the collision world and the fixed-step clock.
type WorldData struct {
	*rigidbody.World
	Clock *rigidbody.Clock
	Steps int // fixed steps run so far
}

var World = donburi.NewComponentType[WorldData]()
