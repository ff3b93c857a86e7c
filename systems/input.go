package systems

import (
	"strings"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePhysics in the system order: the movement controller
// reads this buffer directly.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	stick := readStick(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Down on the stick slides.
	if stick.any() {
		gamepadUsed = true
		activeGamepadID = stick.gamepad
		input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || stick.left
		input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || stick.right
		input.Current[cfg.ActionMenuUp] = input.Current[cfg.ActionMenuUp] || stick.up
		input.Current[cfg.ActionMenuDown] = input.Current[cfg.ActionMenuDown] || stick.down
		input.Current[cfg.ActionSlide] = input.Current[cfg.ActionSlide] || stick.down
	}

	// Keys held across a scene change are not new presses
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// stickState is the left stick of the most recently pushed gamepad, reduced
// to four directions past the deadzone.
type stickState struct {
	left, right, up, down bool
	gamepad               ebiten.GamepadID
}

func (s stickState) any() bool {
	return s.left || s.right || s.up || s.down
}

func readStick(gamepads []ebiten.GamepadID) stickState {
	var s stickState
	dz := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		pushed := stickState{left: h < -dz, right: h > dz, up: v < -dz, down: v > dz, gamepad: gpID}
		if pushed.any() {
			s.left = s.left || pushed.left
			s.right = s.right || pushed.right
			s.up = s.up || pushed.up
			s.down = s.down || pushed.down
			s.gamepad = gpID
		}
	}
	return s
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
