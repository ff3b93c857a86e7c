package components

import (
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
	Primed          bool                  // false until the first poll of a scene
}

// Action returns the frame state of a single action.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[id],
		JustPressed:  d.Current[id] && !d.Previous[id],
		JustReleased: !d.Current[id] && d.Previous[id],
	}
}

// controllerActions maps the movement controller's logical keys onto actions.
var controllerActions = [...]cfg.ActionID{
	controller.KeyMoveLeft:  cfg.ActionMoveLeft,
	controller.KeyMoveRight: cfg.ActionMoveRight,
	controller.KeyJump:      cfg.ActionJump,
	controller.KeySlide:     cfg.ActionSlide,
}

func (d *InputData) action(k controller.Key) (cfg.ActionID, bool) {
	if int(k) >= len(controllerActions) {
		return cfg.ActionNone, false
	}
	return controllerActions[k], true
}

// Held, DownEdge and UpEdge let the input buffer drive a movement controller.
// Edges are per rendered frame.
func (d *InputData) Held(k controller.Key) bool {
	id, ok := d.action(k)
	return ok && d.Action(id).Pressed
}

func (d *InputData) DownEdge(k controller.Key) bool {
	id, ok := d.action(k)
	return ok && d.Action(id).JustPressed
}

func (d *InputData) UpEdge(k controller.Key) bool {
	id, ok := d.action(k)
	return ok && d.Action(id).JustReleased
}

var Input = donburi.NewComponentType[InputData]()
