package controller

// resolveJump refreshes ground contact, then launches when jump is held on
// the ground. A finished jump only resets once grounded with jump released.
func (c *Controller) resolveJump() {
	c.trackGround()
	held := c.input.Held(KeyJump)

	if c.state.grounded && c.state.jump != JumpNone && !held {
		c.state.jump = JumpNone
	}
	if !held || !c.state.grounded || c.state.jump != JumpNone {
		return
	}

	v := c.body.Velocity()
	v.Y = c.tuning.JumpVelocity
	c.body.SetVelocity(v)
	c.state.jump = JumpRising
	c.state.grounded = false
	c.state.launched = true
	c.stats.Jumps++
}

// truncateJump damps a rising jump once when the jump key is released.
func (c *Controller) truncateJump() {
	if c.state.jump != JumpRising || !c.input.UpEdge(KeyJump) {
		return
	}
	v := c.body.Velocity()
	if v.Y <= 0 {
		return
	}
	v.Y *= c.tuning.JumpDampingCoefficient
	c.body.SetVelocity(v)
	c.state.jump = JumpReleased
}
