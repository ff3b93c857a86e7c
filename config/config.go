package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = 0

// PhysicsConfig contains the host physics values. Gravity and the collider
// are in world units (y up); PixelsPerUnit converts them into the pixel space
// the collision world uses.
type PhysicsConfig struct {
	FixedTimestep    float64 // seconds per fixed step
	MaxStepsPerFrame int     // cap on fixed steps run in one frame

	Gravity       float64 // units/s², negative pulls down
	PixelsPerUnit float64

	// Player collider in pixels
	ColliderWidth  float64
	ColliderHeight float64
	Mass           float64

	CellSize int // resolv cell size in pixels

	// Falling this many pixels below the level bottom respawns the player
	KillPlaneMargin float64
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	Title             string
	TitleY            float64
	CreditsTitleY     float64 // title moves up while credits show
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// CreditsConfig holds the lines shown when the credits are toggled on.
type CreditsConfig struct {
	Title string
	Lines []string
	Back  string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed (units/s) to update look-ahead
}

// LevelCompleteConfig contains win sign configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Message      string
	LastMessage  string
	ContinueHint string
}

// RenderConfig holds the colors used to draw the level and player.
type RenderConfig struct {
	BackgroundColor color.RGBA
	StoneColor      color.RGBA
	GlassColor      color.RGBA
	FinishColor     color.RGBA
	PlayerColor     color.RGBA
	SlideColor      color.RGBA
	ClingColor      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	Overlay    bool   // Collider outlines and probe rays
	TuningPath string // YAML tuning override, watched for changes when set
	Level      int    // Level index used with SkipMenu
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Menu MenuConfig
var Credits CreditsConfig
var Camera CameraConfig
var LevelComplete LevelCompleteConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Wallkick",
	}

	Physics = PhysicsConfig{
		FixedTimestep:    0.02,
		MaxStepsPerFrame: 5,

		Gravity:       -9.81,
		PixelsPerUnit: 16,

		ColliderWidth:  12,
		ColliderHeight: 24,
		Mass:           1,

		CellSize: 16,

		KillPlaneMargin: 64,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        BrightYellow,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		ButtonColor:       DarkBlue,
		ButtonHoverColor:  LightBlue,
		Title:             "WALLKICK",
		TitleY:            90,
		CreditsTitleY:     50,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Credits = CreditsConfig{
		Title: "Credits",
		Lines: []string{
			"Design and code by the Wallkick team",
			"Built with Ebitengine, donburi and resolv",
		},
		Back: "Go Back",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		HintColor:    White,
		TitleY:       80,
		MessageY:     140,
		HintY:        280,
		Title:        "You Win!",
		Message:      "On to the next one.",
		LastMessage:  "That was the last level. Thanks for playing!",
		ContinueHint: "Press ENTER to continue",
	}

	Render = RenderConfig{
		BackgroundColor: color.RGBA{R: 30, G: 34, B: 48, A: 255},
		StoneColor:      color.RGBA{R: 110, G: 104, B: 96, A: 255},
		GlassColor:      color.RGBA{R: 150, G: 210, B: 235, A: 160},
		FinishColor:     color.RGBA{R: 0, G: 255, B: 60, A: 90},
		PlayerColor:     BrightOrange,
		SlideColor:      color.RGBA{R: 255, G: 120, B: 40, A: 255},
		ClingColor:      Magenta,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadSpeedThreshold: 0.5,
	}
}
