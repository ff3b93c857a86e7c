package components

import "github.com/yohamta/donburi"

// FinishLineData marks an end-of-level trigger. It fires once per level.
type FinishLineData struct {
	Activated bool
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
