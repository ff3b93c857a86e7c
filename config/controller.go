package config

import "github.com/automoto/wallkick/shared/controller"

// ControllerTuning is the movement controller's configuration block.
type ControllerTuning = controller.Tuning

// Controller is the tuning handed to the next spawned character. It starts as
// the built-in defaults and is replaced when a tuning file is loaded.
var Controller ControllerTuning

func init() {
	Controller = controller.DefaultTuning()
}
