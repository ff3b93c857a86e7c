package controller

// resolveWallCling drags the fall while the character is airborne, falling,
// and pushing into a clingable wall.
func (c *Controller) resolveWallCling() {
	pushing := false
	switch c.state.wallSide {
	case WallLeft:
		pushing = c.input.Held(KeyMoveLeft)
	case WallRight:
		pushing = c.input.Held(KeyMoveRight)
	}

	v := c.body.Velocity()
	c.state.clinging = pushing &&
		!c.state.grounded &&
		v.Y < 0 &&
		c.clingable(c.state.wallTag)
	if !c.state.clinging {
		return
	}
	v.Y *= c.tuning.WallClingFactor
	c.body.SetVelocity(v)
}

// resolveWallJump launches away from the wall on a jump key press. Facing
// left jumps right and facing right jumps left. A press that already
// launched from the ground this frame is not reused.
func (c *Controller) resolveWallJump() {
	if c.state.grounded || c.state.launched || c.state.wallSide == WallNone || !c.clingable(c.state.wallTag) {
		return
	}
	if !c.input.DownEdge(KeyJump) {
		return
	}

	x := -c.tuning.WallJumpForceX
	if c.state.facingLeft {
		x = c.tuning.WallJumpForceX
	}
	c.body.SetVelocity(Vec2{X: x, Y: c.tuning.WallJumpForceY})
	c.state.wallJumping = true
	c.state.clinging = false
	c.stats.WallJumps++
}
