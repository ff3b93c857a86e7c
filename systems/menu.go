package systems

import (
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/fonts"
	"github.com/automoto/wallkick/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu drives the title menu: keyboard and gamepad navigation on top
// of the mouse handling in the ebitenui tree. The exit key quits on release.
func NewUpdateMenu(menu *ui.MenuUI) ecs.System {
	// Escape still held from the previous scene must not quit on release.
	backArmed := false
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		back := input.Action(cfg.ActionMenuBack)
		if back.JustPressed {
			backArmed = true
		}
		if back.JustReleased && backArmed {
			if menu.OnExit != nil {
				menu.OnExit()
			}
			return
		}

		if input.Action(cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.Move(-1)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.Move(1)
		}
		if input.Action(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			menu.Activate()
			return
		}

		menu.Update()
	}
}

// NewDrawMenu renders the background, the title and the menu widgets. The
// title moves up while the credits show.
func NewDrawMenu(menu *ui.MenuUI) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

		titleFont := fonts.Title.Get()
		title := menu.Title()
		y := cfg.Menu.TitleY
		if menu.CreditsShown() {
			y = cfg.Menu.CreditsTitleY
		}
		text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(y), cfg.Menu.TitleColor)

		menu.Draw(screen)

		input := getOrCreateInput(e)
		hint := getMenuHint(input.LastInputMethod)
		hintFont := fonts.Small.Get()
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
	}
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   M: Music volume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   M: Music volume"
	}
	return "Arrows: Navigate   Enter: Select   M: Music volume   Esc: Quit"
}
