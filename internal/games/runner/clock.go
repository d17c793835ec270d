package runner

// SessionClock is the game-time source handed to the track.
// It only moves when the game steps, so pauses and game over freeze it.
type SessionClock struct {
	elapsed float64
	offset  float64 // Head start into the tier schedule
}

// Advance moves the clock forward by dt seconds.
func (c *SessionClock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Reset rewinds the clock and sets the schedule head start.
func (c *SessionClock) Reset(offset float64) {
	c.elapsed = 0
	c.offset = offset
}

// ElapsedSeconds returns schedule time, including the head start.
func (c *SessionClock) ElapsedSeconds() float64 {
	return c.offset + c.elapsed
}

// Session returns the seconds actually played.
func (c *SessionClock) Session() float64 {
	return c.elapsed
}
