package replay

import "time"

// Config holds the timing and gesture constants of the player.
type Config struct {
	TickInterval time.Duration
	ProgressStep float64

	ExitDelay  time.Duration
	EnterDelay time.Duration
	LikeBurst  time.Duration

	DismissDistance float64 // px of finger travel
	DismissVelocity float64 // px/s
	DragResistance  float64
	DragMaxOffset   float64
}

// DefaultConfig plays every story for five seconds: +2 every 100ms.
func DefaultConfig() Config {
	return Config{
		TickInterval:    100 * time.Millisecond,
		ProgressStep:    2,
		ExitDelay:       150 * time.Millisecond,
		EnterDelay:      300 * time.Millisecond,
		LikeBurst:       time.Second,
		DismissDistance: 100,
		DismissVelocity: 500,
		DragResistance:  0.55,
		DragMaxOffset:   200,
	}
}

// StoryDuration is how long an unpaused story stays on screen.
func (c Config) StoryDuration() time.Duration {
	if c.ProgressStep <= 0 {
		return 0
	}
	ticks := int64(100 / c.ProgressStep)
	return time.Duration(ticks) * c.TickInterval
}
