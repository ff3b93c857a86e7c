package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/systems"
	"github.com/automoto/wallkick/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	menu := ui.NewMenuUI(
		func() {
			// Start at the furthest level reached
			level := systems.CurrentSettings().UnlockedLevel
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, level))
		},
		ms.sceneChanger.Quit,
	)

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateVolumeKey)
	ms.ecs.AddSystem(systems.NewUpdateMenu(menu))

	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(menu))

	systems.PlayMusic(cfg.MusicMenu)
}
