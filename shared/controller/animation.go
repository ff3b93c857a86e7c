package controller

func (c *Controller) exportAnimation() {
	if c.animator == nil {
		return
	}
	c.animator.SetBool(ParamJumping, c.state.jump != JumpNone)
	c.animator.SetBool(ParamSliding, c.state.slide == slideActive)
	c.animator.SetBool(ParamGrounded, c.state.grounded)
}
