package core

// RuntimeConfig contains configuration passed to a session at start.
// The session uses it to size its viewport and seed terrain generation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in screen units (characters or pixels)
	ScreenH  int   // Viewport height in screen units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Terrain seed, 0 means pick one at start
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
