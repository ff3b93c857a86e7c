package controller

import "github.com/automoto/wallkick/shared/gamemath"

// neutral input threshold on the squared input magnitude
const idleInputSq = 0.1

// applyLocomotion turns the move keys into a horizontal force, clamps the
// speed and damps it when there is no input. Left wins when both are held.
func (c *Controller) applyLocomotion(dt float64) {
	var in Vec2
	switch {
	case c.input.Held(KeyMoveLeft):
		in.X = -1
	case c.input.Held(KeyMoveRight):
		in.X = 1
	}

	v := c.body.Velocity()
	if in.X != 0 {
		c.state.facingLeft = in.X < 0
		v = v.Add(in.Scale(c.tuning.MoveForce * dt / c.mass()))
	}
	v = gamemath.ClampMagnitude(v, c.tuning.MaxVelocity)
	if in.LenSq() <= idleInputSq {
		v = gamemath.Damp(v, c.tuning.DampingCoefficient)
	}
	c.state.moving = in.X != 0
	c.body.SetVelocity(v)
}
