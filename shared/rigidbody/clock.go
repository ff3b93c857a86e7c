package rigidbody

// Clock turns variable frame times into a whole number of fixed steps.
// Time that does not fill a step carries over to the next frame; time beyond
// MaxSteps is dropped so a long stall does not cause a burst of steps.
type Clock struct {
	Step     float64 // seconds per fixed step
	MaxSteps int     // 0 means no cap

	acc float64
}

func NewClock(step float64, maxSteps int) *Clock {
	return &Clock{Step: step, MaxSteps: maxSteps}
}

// Advance adds frame seconds and returns how many fixed steps to run.
func (c *Clock) Advance(frame float64) int {
	if c.Step <= 0 || frame <= 0 {
		return 0
	}
	c.acc += frame

	// Tolerate float drift so 3 × (1/3 step) still makes a step.
	const slack = 1e-9
	n := int((c.acc + slack) / c.Step)
	if c.MaxSteps > 0 && n > c.MaxSteps {
		n = c.MaxSteps
		c.acc = 0
		return n
	}
	c.acc -= float64(n) * c.Step
	if c.acc < 0 {
		c.acc = 0
	}
	return n
}

// Pending is the carried-over time in seconds.
func (c *Clock) Pending() float64 {
	return c.acc
}

// Reset drops any carried-over time.
func (c *Clock) Reset() {
	c.acc = 0
}
