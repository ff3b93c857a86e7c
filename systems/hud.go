package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/fonts"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 12
	hudPanelWidth = 190
)

var (
	hudPanelColor = color.RGBA{0, 0, 0, 140}
	hudOnColor    = color.RGBA{120, 255, 120, 255}
	hudOffColor   = color.RGBA{150, 150, 150, 255}
)

// animationParams are listed on the HUD in this order.
var animationParams = []string{
	controller.ParamGrounded,
	controller.ParamJumping,
	controller.ParamSliding,
}

// DrawHUD lists the exported animation flags and the wall state of the
// player in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	st := components.Movement.Get(playerEntry).Last

	lines := hudLines(levelName(ecs), player.Spawns, st)
	height := float32((len(lines)+1)*hudLineHeight + 4)
	vector.FillRect(screen, hudMargin-4, hudMargin-4, hudPanelWidth, height, hudPanelColor, false)

	face := fonts.Small.Get()
	y := hudMargin + hudLineHeight - 2
	for _, l := range lines {
		text.Draw(screen, l, face, hudMargin, y, cfg.White)
		y += hudLineHeight
	}
	x := hudMargin
	for _, name := range animationParams {
		c := hudOffColor
		if anim.Bool(name) {
			c = hudOnColor
		}
		text.Draw(screen, name, face, x, y, c)
		x += text.BoundString(face, name).Dx() + 8
	}
}

func hudLines(level string, spawns int, st controller.State) []string {
	wall := st.WallSide.String()
	if st.WallSurfaceTag != "" {
		wall += " (" + st.WallSurfaceTag + ")"
	}
	cling := "no"
	if st.ClingingToWall {
		cling = "yes"
	}
	return []string{
		fmt.Sprintf("%s  spawn #%d", level, spawns),
		fmt.Sprintf("%v, jump %v", st.Locomotion, st.JumpPhase),
		fmt.Sprintf("wall %s  cling %s", wall, cling),
		fmt.Sprintf("vel %+.2f %+.2f", st.Velocity.X, st.Velocity.Y),
	}
}

func levelName(ecs *ecs.ECS) string {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return ""
	}
	if l := components.Level.Get(entry).CurrentLevel; l != nil {
		return l.Name
	}
	return ""
}
