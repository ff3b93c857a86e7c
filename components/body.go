package components

import (
	"github.com/automoto/wallkick/shared/rigidbody"
	"github.com/yohamta/donburi"
)

// BodyData is the player's rigid body in the collision world.
type BodyData struct {
	*rigidbody.Body
}

var Body = donburi.NewComponentType[BodyData]()
