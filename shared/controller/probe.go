package controller

// probe casts against the ground layer and only reports hits inside
// maxDistance.
func (c *Controller) probe(origin Vec2, dir Direction, maxDistance float64) Hit {
	h := c.prober.Raycast(origin, dir, maxDistance, c.tuning.GroundLayerFilter)
	if !h.Hit || h.Distance > maxDistance {
		return Hit{}
	}
	return h
}

// trackGround sets grounded from the downward probe. A miss clears it.
func (c *Controller) trackGround() {
	b := c.body.Bounds()
	origin := Vec2{
		X: b.CenterX() + c.tuning.GroundCheckOffset.X,
		Y: b.MinY + c.tuning.GroundCheckOffset.Y,
	}
	h := c.probe(origin, Down, c.tuning.GroundedGraceDistance)
	c.state.grounded = h.Hit && c.body.Velocity().Y <= 0
}

// trackWalls probes left then right from just above the base. Left wins
// when both hit.
func (c *Controller) trackWalls() {
	b := c.body.Bounds()
	y := b.MinY + c.tuning.WallProbeHeight
	reach := c.tuning.WallGraceDistance

	if h := c.probe(Vec2{X: b.MinX, Y: y}, Left, reach); h.Hit {
		c.state.wallSide = WallLeft
		c.state.wallTag = h.SurfaceTag
		return
	}
	if h := c.probe(Vec2{X: b.MaxX, Y: y}, Right, reach); h.Hit {
		c.state.wallSide = WallRight
		c.state.wallTag = h.SurfaceTag
		return
	}
	c.state.wallSide = WallNone
	c.state.wallTag = ""
}

// trackCeiling looks up from the current top far enough to cover the
// height a restored collider would need.
func (c *Controller) trackCeiling() {
	b := c.body.Bounds()
	grow := c.state.defaultHeight - c.body.Collider().Height
	if grow < 0 {
		grow = 0
	}
	origin := Vec2{
		X: b.CenterX() + c.tuning.CeilingCheckOffset.X,
		Y: b.MaxY + c.tuning.CeilingCheckOffset.Y,
	}
	c.state.ceiling = c.probe(origin, Up, grow+c.tuning.CeilingGraceDistance).Hit
}

func (c *Controller) clingable(tag string) bool {
	nc := c.tuning.NonClingableSurfaceTag
	return nc == "" || tag != nc
}
