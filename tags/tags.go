package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Solid      = donburi.NewTag().SetName("Solid")
	FinishLine = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvGround     = "ground"
	ResolvPlayer     = "Player"
	ResolvFinishLine = "finishline"
)
