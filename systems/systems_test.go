package systems

import (
	"slices"
	"testing"

	"github.com/automoto/wallkick/components"
	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/automoto/wallkick/systems/factory"
	"github.com/automoto/wallkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func floorLevel() *leveldata.Level {
	l := &leveldata.Level{
		Name:        "floor",
		TileWidth:   16,
		TileHeight:  16,
		MapWidth:    640,
		MapHeight:   320,
		SpawnPoints: []leveldata.SpawnPoint{{X: 48, Y: 256}},
	}
	for x := 0.0; x < 640; x += 16 {
		l.Solids = append(l.Solids, leveldata.SolidRect{X: x, Y: 256, W: 16, H: 16, Surface: "stone"})
	}
	return l
}

func newScene(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	level := factory.CreateLevelAtIndex(e, []*leveldata.Level{floorLevel()}, 0)
	factory.CreateCamera(e)
	spawn := components.Level.Get(level).CurrentLevel.Spawn()
	factory.CreatePlayer(e, spawn.X, spawn.Y, 1)
	return e
}

func hold(e *ecs.ECS, id cfg.ActionID, down bool) {
	entry, _ := components.Input.First(e.World)
	in := components.Input.Get(entry)
	in.Previous = in.Current
	in.Current[id] = down
}

func TestStepPhysicsRunsFixedSteps(t *testing.T) {
	e := newScene(t)
	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	startX := components.Body.Get(player).Object.X

	hold(e, cfg.ActionMoveRight, true)
	for range 60 {
		stepPhysics(e, 1.0/60)
	}

	world := factory.MustWorld(e)
	if world.Steps < 49 || world.Steps > 50 {
		t.Errorf("steps after one second = %d, want 50", world.Steps)
	}
	if x := components.Body.Get(player).Object.X; x <= startX+8 {
		t.Errorf("x = %v, want well right of %v", x, startX)
	}
	last := components.Movement.Get(player).Last
	if !last.Grounded {
		t.Error("not grounded on the floor")
	}
	if last.FacingLeft {
		t.Error("facing left while running right")
	}
}

func TestStepPhysicsQueuesJumpSound(t *testing.T) {
	e := newScene(t)
	for range 10 {
		stepPhysics(e, 1.0/60)
	}

	hold(e, cfg.ActionJump, true)
	stepPhysics(e, 1.0/60)
	hold(e, cfg.ActionJump, true)
	for range 5 {
		stepPhysics(e, 1.0/60)
	}

	audio := GetOrCreateAudio(e)
	if !slices.Contains(audio.PendingSFX, cfg.SoundJump) {
		t.Errorf("pending sounds %v, want a jump", audio.PendingSFX)
	}
}

func TestRespawnReplacesPlayer(t *testing.T) {
	e := newScene(t)
	hold(e, cfg.ActionMoveRight, true)
	for range 30 {
		stepPhysics(e, 1.0/60)
	}

	Respawn(e)

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player after respawn")
	}
	n := 0
	tags.Player.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("%d players, want 1", n)
	}
	p := components.Player.Get(player)
	if p.Spawns != 2 {
		t.Errorf("spawns = %d, want 2", p.Spawns)
	}
	obj := components.Body.Get(player).Object
	if obj.X != p.SpawnX-cfg.Physics.ColliderWidth/2 {
		t.Errorf("x = %v, want back at spawn", obj.X)
	}
	if n := len(factory.MustWorld(e).Space.Objects()); n != len(floorLevel().Solids)+1 {
		t.Errorf("%d objects in space, old body not removed", n)
	}
}

func TestMovementSounds(t *testing.T) {
	before := controller.Stats{Jumps: 1}
	after := controller.Stats{Jumps: 2, WallJumps: 1, Slides: 1}
	got := movementSounds(before, after)
	want := []cfg.SoundID{cfg.SoundJump, cfg.SoundWallJump, cfg.SoundSlide}
	if !slices.Equal(got, want) {
		t.Errorf("movementSounds = %v, want %v", got, want)
	}
	if got := movementSounds(after, after); len(got) != 0 {
		t.Errorf("no change gave %v", got)
	}
}

func TestNextVolumeStep(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 1}
	cases := []struct{ cur, want float64 }{
		{0, 0.25},
		{0.25, 0.5},
		{0.3, 0.5},
		{1, 0},
	}
	for _, c := range cases {
		if got := nextVolumeStep(c.cur, steps); got != c.want {
			t.Errorf("nextVolumeStep(%v) = %v, want %v", c.cur, got, c.want)
		}
	}
	if got := nextVolumeStep(0.4, nil); got != 0.4 {
		t.Errorf("no steps changed volume to %v", got)
	}
}

func TestClampCamera(t *testing.T) {
	// Level wider than the screen clamps to its edges.
	x, y := clampCamera(10, 10, 640, 360, 1280, 720)
	if x != 320 || y != 180 {
		t.Errorf("top-left clamp = (%v, %v)", x, y)
	}
	x, _ = clampCamera(2000, 10, 640, 360, 1280, 720)
	if x != 960 {
		t.Errorf("right clamp = %v", x)
	}

	// Narrow level is centred.
	x, y = clampCamera(10, 500, 640, 360, 320, 720)
	if x != 160 || y != 500 {
		t.Errorf("narrow level = (%v, %v)", x, y)
	}
}

func TestHUDLines(t *testing.T) {
	st := controller.State{
		Locomotion:     controller.LocomotionIdle,
		WallSide:       controller.WallRight,
		WallSurfaceTag: "glass",
	}
	lines := hudLines("01-basics", 3, st)
	if len(lines) != 4 {
		t.Fatalf("%d lines", len(lines))
	}
	if lines[0] != "01-basics  spawn #3" {
		t.Errorf("first line %q", lines[0])
	}
	if want := "wall " + controller.WallRight.String() + " (glass)  cling no"; lines[2] != want {
		t.Errorf("wall line %q, want %q", lines[2], want)
	}
}
