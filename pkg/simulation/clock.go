package simulation

// Clock is the discrete simulation time. Once halted it never resumes.
type Clock struct {
	now       float64
	step      float64
	available float64
	halted    bool
}

func NewClock(step, available float64) *Clock {
	return &Clock{step: step, available: available}
}

// Now returns the time of the step about to run (or the last one, once halted).
func (c *Clock) Now() float64 {
	return c.now
}

// Halted reports whether the time budget has been used up.
func (c *Clock) Halted() bool {
	return c.halted
}

// Tick closes the current step. It moves time forward while budget remains,
// and halts the clock after the step taken at time >= available.
func (c *Clock) Tick() bool {
	if c.halted {
		return false
	}
	if c.now < c.available {
		c.now += c.step
		return true
	}
	c.halted = true
	return false
}
