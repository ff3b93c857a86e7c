// Package sim runs the movement controller against a rigid-body world
// without a window: a level, a tuning and a scripted input timeline go in, a
// summary of what the character did comes out.
package sim

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/automoto/wallkick/shared/rigidbody"
	"github.com/solarlune/resolv"
)

const (
	tagGround     = "ground"
	tagFinishLine = "finishline"
	tagPlayer     = "Player"
)

// Options are the host physics settings. They mirror the game's defaults.
type Options struct {
	Step           float64 // fixed step in seconds
	Gravity        float64 // units/s²
	PixelsPerUnit  float64
	ColliderWidth  float64 // pixels
	ColliderHeight float64 // pixels
	Mass           float64
	CellSize       int
	Verbose        bool // log every state transition
}

func DefaultOptions() Options {
	return Options{
		Step:           0.02,
		Gravity:        -9.81,
		PixelsPerUnit:  16,
		ColliderWidth:  12,
		ColliderHeight: 24,
		Mass:           1,
		CellSize:       16,
	}
}

// Simulation is one character in one level.
type Simulation struct {
	opts       Options
	level      *leveldata.Level
	script     *Script
	world      *rigidbody.World
	body       *rigidbody.Body
	controller *controller.Controller
	input      *scriptInput
	params     animParams

	steps    int
	finished time.Duration // first finish-line touch, 0 if none
	last     controller.State
	onChange func(t time.Duration, change string)
}

type animParams map[string]bool

func (p animParams) SetBool(name string, v bool) { p[name] = v }

// BuildWorld creates a collision world holding the level's solids and
// finish lines.
func BuildWorld(level *leveldata.Level, opts Options) *rigidbody.World {
	cell := max(opts.CellSize, 1)
	width := max(level.MapWidth, cell)
	height := max(level.MapHeight, cell)
	space := resolv.NewSpace(width, height, cell, cell)
	world := rigidbody.NewWorld(space, opts.PixelsPerUnit, opts.Gravity)

	var surfaces []string
	for _, s := range level.Solids {
		world.AddStatic(s.X, s.Y, s.W, s.H, rigidbody.TagSolid, tagGround, s.Surface)
		if s.Surface != "" && !slices.Contains(surfaces, s.Surface) {
			surfaces = append(surfaces, s.Surface)
		}
	}
	world.SurfaceTags = surfaces

	for _, f := range level.FinishLines {
		world.AddStatic(f.X, f.Y, f.W, f.H, tagFinishLine)
	}
	return world
}

// New places a character at the level's spawn point. The error reports
// tuning corrections; the simulation is usable either way.
func New(level *leveldata.Level, tuning controller.Tuning, script *Script, opts Options) (*Simulation, error) {
	if opts.Step <= 0 {
		opts.Step = DefaultOptions().Step
	}
	s := &Simulation{
		opts:   opts,
		level:  level,
		script: script,
		world:  BuildWorld(level, opts),
		input:  &scriptInput{script: script},
		params: animParams{},
	}

	spawn := level.Spawn()
	s.body = s.world.NewBody(spawn.X-opts.ColliderWidth/2, spawn.Y-opts.ColliderHeight,
		opts.ColliderWidth, opts.ColliderHeight, opts.Mass, tagPlayer)

	ctrl, err := controller.New(tuning, controller.Deps{
		Body:     s.body,
		Prober:   s.world.Prober(s.body),
		Input:    s.input,
		Animator: s.params,
	})
	s.controller = ctrl
	s.last = ctrl.State()
	if opts.Verbose {
		s.onChange = func(t time.Duration, change string) {
			log.Printf("t=%6.2fs %s", t.Seconds(), change)
		}
	}
	return s, err
}

// OnTransition replaces the state transition callback.
func (s *Simulation) OnTransition(fn func(t time.Duration, change string)) {
	s.onChange = fn
}

// Elapsed is the simulated time so far.
func (s *Simulation) Elapsed() time.Duration {
	return s.controller.Elapsed()
}

// Done reports whether the script has run out.
func (s *Simulation) Done() bool {
	return s.Elapsed() >= s.script.Duration
}

// Step runs one fixed step followed by one render step.
func (s *Simulation) Step() {
	s.input.sample(s.Elapsed())
	s.controller.FixedStep(s.opts.Step)
	s.world.Step(s.body, s.opts.Step)
	s.controller.RenderStep()
	s.steps++

	if s.finished == 0 && s.world.Touching(s.body, tagFinishLine) != nil {
		s.finished = s.Elapsed()
		s.report("reached the finish line")
	}
	s.diff(s.controller.State())
}

// Run steps until the script runs out or ctx is cancelled.
func (s *Simulation) Run(ctx context.Context) Summary {
	for !s.Done() {
		if ctx.Err() != nil {
			break
		}
		s.Step()
	}
	s.controller.Teardown()
	return s.Summary()
}

// RunRealtime steps on a wall-clock ticker, one fixed step per tick.
func (s *Simulation) RunRealtime(ctx context.Context) Summary {
	ticker := time.NewTicker(time.Duration(s.opts.Step * float64(time.Second)))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %.0f steps/second", 1/s.opts.Step)
	for !s.Done() {
		select {
		case <-ctx.Done():
			log.Println("Simulation loop stopped")
			s.controller.Teardown()
			return s.Summary()
		case <-ticker.C:
			s.Step()
		}
	}
	s.controller.Teardown()
	return s.Summary()
}

func (s *Simulation) diff(cur controller.State) {
	prev := s.last
	s.last = cur
	if s.onChange == nil {
		return
	}
	if prev.Locomotion != cur.Locomotion {
		s.report(fmt.Sprintf("locomotion %v -> %v", prev.Locomotion, cur.Locomotion))
	}
	if prev.JumpPhase != cur.JumpPhase {
		s.report(fmt.Sprintf("jump %v -> %v", prev.JumpPhase, cur.JumpPhase))
	}
	if prev.Grounded != cur.Grounded {
		s.report(fmt.Sprintf("grounded %v -> %v", prev.Grounded, cur.Grounded))
	}
	if prev.WallSide != cur.WallSide {
		s.report(fmt.Sprintf("wall %v -> %v", prev.WallSide, cur.WallSide))
	}
	if prev.ClingingToWall != cur.ClingingToWall {
		s.report(fmt.Sprintf("clinging %v -> %v", prev.ClingingToWall, cur.ClingingToWall))
	}
	if prev.TouchingCeiling != cur.TouchingCeiling {
		s.report(fmt.Sprintf("ceiling %v -> %v", prev.TouchingCeiling, cur.TouchingCeiling))
	}
	if prev.RestorePending != cur.RestorePending {
		s.report(fmt.Sprintf("restore pending %v -> %v", prev.RestorePending, cur.RestorePending))
	}
}

func (s *Simulation) report(change string) {
	if s.onChange != nil {
		s.onChange(s.Elapsed(), change)
	}
}

// Summary is the outcome of a run.
type Summary struct {
	Level    string
	Elapsed  time.Duration
	Steps    int
	Position controller.Vec2 // feet, world units
	State    controller.State
	Stats    controller.Stats
	Finished time.Duration // time the finish line was first touched, 0 if never
}

func (s *Simulation) Summary() Summary {
	return Summary{
		Level:    s.level.Name,
		Elapsed:  s.Elapsed(),
		Steps:    s.steps,
		Position: s.body.Position(),
		State:    s.controller.State(),
		Stats:    s.controller.Stats(),
		Finished: s.finished,
	}
}

func (sum Summary) String() string {
	var b strings.Builder
	st := sum.State
	fmt.Fprintf(&b, "level %s: %d steps, %.2fs simulated\n", sum.Level, sum.Steps, sum.Elapsed.Seconds())
	fmt.Fprintf(&b, "  position  (%.3f, %.3f)\n", sum.Position.X, sum.Position.Y)
	fmt.Fprintf(&b, "  velocity  (%.3f, %.3f)\n", st.Velocity.X, st.Velocity.Y)
	fmt.Fprintf(&b, "  state     %v, jump %v, wall %v\n", st.Locomotion, st.JumpPhase, st.WallSide)
	fmt.Fprintf(&b, "  flags     grounded=%t sliding=%t clinging=%t ceiling=%t restore-pending=%t\n",
		st.Grounded, st.Sliding, st.ClingingToWall, st.TouchingCeiling, st.RestorePending)
	fmt.Fprintf(&b, "  counts    jumps=%d slides=%d wall-jumps=%d forced-restores=%d\n",
		sum.Stats.Jumps, sum.Stats.Slides, sum.Stats.WallJumps, sum.Stats.ForcedRestores)
	if sum.Finished > 0 {
		fmt.Fprintf(&b, "  finished  at %.2fs\n", sum.Finished.Seconds())
	} else {
		b.WriteString("  finished  no\n")
	}
	return b.String()
}
