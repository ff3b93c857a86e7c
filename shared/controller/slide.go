package controller

import "log"

// resolveSlide runs the slide state machine. A new slide may start while a
// previous one is still waiting to restore its collider. A slide cancelled by
// a wall needs the slide key released before the next one.
func (c *Controller) resolveSlide() {
	held := c.input.Held(KeySlide)
	if !held {
		c.state.slideLatched = false
	}
	if c.state.slide != slideActive && held && c.state.grounded && !c.state.slideLatched {
		c.startSlide()
		return
	}

	switch c.state.slide {
	case slideActive:
		switch {
		case c.state.wallSide != WallNone:
			c.state.slideLatched = true
			c.endSlide()
		case c.now >= c.state.slideDeadline:
			c.endSlide()
		}
	case slideRestorePending:
		if c.now >= c.state.restoreAt {
			c.attemptRestore()
		}
	}
}

func (c *Controller) startSlide() {
	h := c.state.defaultHeight * c.tuning.SlideSquish
	c.body.SetCollider(Collider{
		Height: h,
		Offset: -(c.state.defaultHeight - h) / 2,
	})

	dir := 1.0
	blocked := c.state.wallSide == WallRight
	if c.state.facingLeft {
		dir = -1
		blocked = c.state.wallSide == WallLeft
	}
	if !blocked {
		v := c.body.Velocity()
		v.X += dir * c.tuning.SlideForce / c.mass()
		c.body.SetVelocity(v)
	}

	c.state.slide = slideActive
	c.state.slideDeadline = c.now + c.tuning.SlideDuration
	c.state.restoreTries = 0
	c.stats.Slides++
}

func (c *Controller) endSlide() {
	c.state.slide = slideRestorePending
	c.state.slideDeadline = 0
	c.state.restoreTries = 0
	c.attemptRestore()
}

// attemptRestore grows the collider back unless a ceiling is overhead, in
// which case it schedules another attempt. After MaxRestoreRetries deferrals
// the restore is forced.
func (c *Controller) attemptRestore() {
	if !c.state.ceiling {
		c.restoreCollider()
		return
	}
	if c.state.restoreTries >= c.tuning.MaxRestoreRetries {
		c.forceRestore()
		return
	}
	c.state.restoreTries++
	c.state.restoreAt = c.now + c.tuning.RestoreRetryDelay
}

func (c *Controller) forceRestore() {
	moved := false
	if rm, ok := c.body.(RoomMaker); ok {
		moved = rm.MakeRoom(c.state.defaultHeight, c.state.facingLeft)
	}
	if !moved {
		log.Printf("Warning: ceiling still blocked after %d restore retries, forcing collider restore", c.state.restoreTries)
	}
	c.stats.ForcedRestores++
	c.restoreCollider()
}

func (c *Controller) restoreCollider() {
	c.body.SetCollider(Collider{Height: c.state.defaultHeight})
	c.state.slide = slideIdle
	c.state.restoreTries = 0
	c.state.restoreAt = 0
}
