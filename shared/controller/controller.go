// Package controller resolves one platformer character's movement. Once per
// fixed step it reads ground, wall and ceiling probes plus input and writes
// the character's velocity and collider; once per render step it reacts to
// jump key edges and exports animation flags.
//
// The package has no engine dependencies. The host supplies a Body, a Prober,
// an Input and an Animator.
package controller

import (
	"errors"
	"log"
	"math"
	"time"
)

// Deps are the collaborators a Controller steers and reads.
type Deps struct {
	Body     Body
	Prober   Prober
	Input    Input
	Animator Animator
}

// Controller resolves the movement of one character.
type Controller struct {
	tuning Tuning

	body     Body
	prober   Prober
	input    Input
	animator Animator

	state movementState
	stats Stats

	now  time.Duration
	torn bool
}

// New builds a controller for one character and samples its default
// collider height. The returned controller is always usable: missing
// collaborators degrade to no-ops and are reported in the error together
// with any tuning corrections.
func New(t Tuning, d Deps) (*Controller, error) {
	t, tuningErr := t.Validate()

	var missingErrs []error
	c := &Controller{
		tuning:   t,
		body:     d.Body,
		prober:   d.Prober,
		input:    d.Input,
		animator: d.Animator,
	}
	if c.body == nil {
		missingErrs = append(missingErrs, missing("rigid body"))
	} else {
		h := c.body.Collider().Height
		if h <= 0 {
			missingErrs = append(missingErrs, missing("collider"))
		}
		c.state.defaultHeight = h
	}
	if c.prober == nil {
		missingErrs = append(missingErrs, missing("environment prober"))
		c.prober = noProbe{}
	}
	if c.input == nil {
		missingErrs = append(missingErrs, missing("input source"))
		c.input = noInput{}
	}
	if c.animator == nil {
		missingErrs = append(missingErrs, missing("animation consumer"))
	}

	if len(missingErrs) > 0 {
		log.Printf("Warning: controller running degraded: %v", errors.Join(missingErrs...))
	}
	return c, errors.Join(append(missingErrs, tuningErr)...)
}

// Tuning returns the validated tuning in effect.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// FixedStep advances the controller by dt seconds of simulated time.
// It must run at a constant dt.
func (c *Controller) FixedStep(dt float64) {
	if c.torn || dt <= 0 {
		return
	}
	c.now += time.Duration(math.Round(dt * float64(time.Second)))
	if !c.hasBody() {
		return
	}

	c.applyLocomotion(dt)
	c.trackWalls()
	c.trackCeiling()
	c.resolveJump()
	c.resolveSlide()
	c.resolveWallCling()
}

// RenderStep handles the edge-triggered behaviours and exports the
// animation flags. Call it once per rendered frame, after that frame's
// fixed steps.
func (c *Controller) RenderStep() {
	if c.torn {
		return
	}
	c.state.wallJumping = false
	if c.hasBody() {
		c.truncateJump()
		c.resolveWallJump()
	}
	c.state.launched = false
	c.exportAnimation()
}

// Teardown cancels any pending collider restore and stops the controller.
// The body is not touched afterwards.
func (c *Controller) Teardown() {
	if c.state.slide == slideRestorePending {
		c.state.slide = slideIdle
		c.state.restoreTries = 0
	}
	c.torn = true
}

// Elapsed is the simulated time seen by the controller.
func (c *Controller) Elapsed() time.Duration {
	return c.now
}

// Stats returns the event counters since New.
func (c *Controller) Stats() Stats {
	return c.stats
}

// State returns a snapshot of the movement state.
func (c *Controller) State() State {
	s := c.state
	out := State{
		FacingLeft:            s.facingLeft,
		Grounded:              s.grounded,
		Jumping:               s.jump != JumpNone,
		Sliding:               s.slide == slideActive,
		TouchingWall:          s.wallSide != WallNone,
		TouchingLeftWall:      s.wallSide == WallLeft,
		TouchingRightWall:     s.wallSide == WallRight,
		TouchingCeiling:       s.ceiling,
		ClingingToWall:        s.clinging,
		WallJumping:           s.wallJumping,
		WallSurfaceTag:        s.wallTag,
		RestorePending:        s.slide == slideRestorePending,
		DefaultColliderHeight: s.defaultHeight,
		Locomotion:            s.locomotion(),
		JumpPhase:             s.jump,
		WallSide:              s.wallSide,
	}
	if c.body != nil {
		out.Velocity = c.body.Velocity()
		out.Collider = c.body.Collider()
	}
	return out
}

func (c *Controller) hasBody() bool {
	return c.body != nil && c.state.defaultHeight > 0
}

func (c *Controller) mass() float64 {
	if m := c.body.Mass(); m > 0 {
		return m
	}
	return 1
}

type noProbe struct{}

func (noProbe) Raycast(Vec2, Direction, float64, string) Hit { return Hit{} }

type noInput struct{}

func (noInput) Held(Key) bool     { return false }
func (noInput) DownEdge(Key) bool { return false }
func (noInput) UpEdge(Key) bool   { return false }
