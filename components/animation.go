package components

import (
	"github.com/yohamta/donburi"
)

// AnimationData receives the boolean parameters exported by the movement
// controller. Renderers read them to pick colors and the HUD lists them.
type AnimationData struct {
	Params map[string]bool
}

func (a *AnimationData) SetBool(name string, v bool) {
	if a.Params == nil {
		a.Params = make(map[string]bool, 4)
	}
	a.Params[name] = v
}

func (a *AnimationData) Bool(name string) bool {
	return a.Params[name]
}

var Animation = donburi.NewComponentType[AnimationData]()
