package systems

import (
	"math"

	"github.com/automoto/wallkick/components"
	"github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // between respawns
	}
	body := components.Body.Get(playerEntry).Object
	st := components.Movement.Get(playerEntry).Last

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(st.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		dir := 1.0
		if st.FacingLeft {
			dir = -1
		}
		targetLookAhead := dir * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Follow the centre of the collider with look-ahead
	targetX := body.X + body.W/2 + camera.LookAheadX
	targetY := body.Y + body.H/2

	targetX, targetY = clampCamera(targetX, targetY,
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.MapWidth), float64(levelData.CurrentLevel.MapHeight))

	if !camera.Snapped {
		camera.Position.X, camera.Position.Y = targetX, targetY
		camera.Snapped = true
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the view inside the level. A level smaller than the
// screen is centred on that axis.
func clampCamera(x, y, screenW, screenH, levelW, levelH float64) (float64, float64) {
	clamp := func(v, screen, level float64) float64 {
		if level <= screen {
			return level / 2
		}
		return math.Max(screen/2, math.Min(level-screen/2, v))
	}
	return clamp(x, screenW, levelW), clamp(y, screenH, levelH)
}

// SnapCamera makes the next camera update jump straight to the player.
func SnapCamera(e *ecs.ECS) {
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		camera.Snapped = false
		camera.LookAheadX = 0
	}
}
