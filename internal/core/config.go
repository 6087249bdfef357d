package core

// RuntimeConfig contains the runtime parameters handed to a game session
// at construction: viewport size, tick rate and RNG seed.
type RuntimeConfig struct {
	ScreenW   int   // Viewport width in cells
	ScreenH   int   // Viewport height in cells
	FrameRate int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic obstacle generation
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means the platform seeds from the clock
	}
}
