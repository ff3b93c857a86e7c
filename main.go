package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/wallkick/assets"
	"github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/config/tuning"
	"github.com/automoto/wallkick/fonts"
	"github.com/automoto/wallkick/scenes"
	"github.com/automoto/wallkick/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, config.Debug.Level)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadTuning fills config.Controller from path, or from the bundled defaults
// when path is empty. Out-of-range values are corrected and reported.
func loadTuning(path string) {
	var (
		t   config.ControllerTuning
		err error
	)
	if path == "" {
		t, err = tuning.Parse(assets.DefaultTuningYAML)
	} else {
		t, err = tuning.LoadFile(path)
	}
	if err != nil {
		log.Printf("Warning: %v", err)
		if errors.Is(err, tuning.ErrUnreadable) {
			return
		}
	}
	config.Controller = t
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "start straight in a level")
	flag.IntVar(&config.Debug.Level, "level", config.Debug.Level, "level index used with -skipmenu")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show colliders and probe rays")
	flag.StringVar(&config.Debug.TuningPath, "tuning", config.Debug.TuningPath, "YAML tuning file, reloaded on change")
	flag.Parse()

	loadTuning(config.Debug.TuningPath)
	if config.Debug.TuningPath != "" {
		if err := systems.WatchTuning(config.Debug.TuningPath); err != nil {
			log.Printf("Warning: could not watch tuning file: %v", err)
		}
		defer systems.CloseTuningWatcher()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.BootstrapSettings()

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
