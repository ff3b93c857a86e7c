package systems

import (
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateLevelComplete handles input when the win sign is shown
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete || levelComplete.Continue {
		return
	}

	input := getOrCreateInput(e)
	if input.Action(cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		levelComplete.Continue = true
	}
}

// DrawLevelComplete renders the win sign
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	// Draw message
	msgFont := fonts.Bold.Get()
	msg := cfg.LevelComplete.Message
	if levelComplete.IsLast {
		msg = cfg.LevelComplete.LastMessage
	}
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.LevelComplete.MessageY), cfg.LevelComplete.TextColor)

	// Draw continue hint
	hintFont := fonts.Regular.Get()
	input := getOrCreateInput(e)
	hint := getLevelCompleteHint(input.LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// getLevelCompleteHint returns the appropriate hint for the win sign
func getLevelCompleteHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to continue"
	case components.InputXbox:
		return "Press A to continue"
	}
	return cfg.LevelComplete.ContinueHint
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	ent, ok := components.LevelComplete.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// ContinueRequested reports that the win sign was dismissed, and whether
// there is a level after this one.
func ContinueRequested(e *ecs.ECS) (requested, hasNext bool) {
	lc := GetOrCreateLevelComplete(e)
	return lc.Continue, !lc.IsLast
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}
