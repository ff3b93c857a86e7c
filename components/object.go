package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a static collision box: a solid tile run or a trigger volume.
type ObjectData struct {
	*resolv.Object
	Surface string // surface tag for solids, empty for triggers
}

var Object = donburi.NewComponentType[ObjectData]()
