package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/wallkick/assets"
	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/systems"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene for one level
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if requested, hasNext := systems.ContinueRequested(ps.ecs); requested {
		ps.teardown()
		if hasNext {
			ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.levelIndex+1))
		} else {
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		}
		return
	}

	// Back to the title menu
	input, ok := components.Input.First(ps.ecs.World)
	if ok && components.Input.Get(input).Action(cfg.ActionMenuBack).JustPressed {
		ps.teardown()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}
}

// teardown stops the character before the scene is dropped.
func (ps *PlatformerScene) teardown() {
	components.Movement.Each(ps.ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).Controller.Teardown()
	})
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)

	if ps.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateVolumeKey)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdateTuningReload)

	// Gameplay stops while the win sign shows
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateRespawn))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateFinishLine))
	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ps.ecs = ecs

	// Level first: it creates the collision world everything else lives in.
	level := factory.CreateLevelAtIndex(ps.ecs, assets.MustLoadLevels(), ps.levelIndex)
	levelData := components.Level.Get(level)
	ps.levelIndex = levelData.LevelIndex

	factory.CreateCamera(ps.ecs)

	spawn := levelData.CurrentLevel.Spawn()
	factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y, 1)

	systems.PlayMusic(cfg.MusicLevel)
}
