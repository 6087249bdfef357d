// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config bundles every tunable of the game: actor physics, obstacle
// generation, background scroll, pacing and UI text. Speeds are in
// cells per second, accelerations in cells per second squared.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Actor      ActorConfig      `yaml:"actor"`
	Tubes      TubesConfig      `yaml:"tubes"`
	Background BackgroundConfig `yaml:"background"`
	Overlays   OverlayConfig    `yaml:"overlays"`
	ScoreLabel LabelConfig      `yaml:"score_label"`
	Keys       KeysConfig       `yaml:"keys"`
}

// GameConfig defines pacing and progression parameters.
type GameConfig struct {
	FrameRate int `yaml:"frame_rate"` // Simulation ticks per second

	// LevelUpAcceleration is added to the speed of every moving entity
	// (alive and future) each time the level increases.
	LevelUpAcceleration float64 `yaml:"level_up_acceleration"`

	// ScoreStep is the per-level score quota: the level increases when
	// score reaches score_step * (level + 1).
	ScoreStep int `yaml:"score_step"`
}

// ActorConfig defines the controlled entity.
type ActorConfig struct {
	X      float64 `yaml:"x"`      // Start position, left edge
	Y      float64 `yaml:"y"`      // Start position, top edge
	Width  float64 `yaml:"width"`  // Hitbox width in cells
	Height float64 `yaml:"height"` // Hitbox height in cells

	FlapImpulse    float64 `yaml:"flap_impulse"`    // Upward velocity applied per flap
	RotationSpeed  float64 `yaml:"rotation_speed"`  // Velocity at which the pose tilts fully down
	AnimationSpeed float64 `yaml:"animation_speed"` // Wing animation frames per second
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration
	Sprite         string  `yaml:"sprite"`          // Manifest name of the actor sprite
}

// TubesConfig defines obstacle-pair generation and the spacing policy.
type TubesConfig struct {
	Width        float64 `yaml:"width"`         // Horizontal extent of a pair
	Speed        float64 `yaml:"speed"`         // Initial leftward scroll speed
	BorderOffset float64 `yaml:"border_offset"` // Gap keep-out zone at top and bottom
	SpaceMin     float64 `yaml:"space_min"`     // Minimum vertical gap
	SpaceMax     float64 `yaml:"space_max"`     // Maximum vertical gap
	DistanceMin  float64 `yaml:"distance_min"`  // Minimum horizontal distance between pairs
	DistanceMax  float64 `yaml:"distance_max"`  // Maximum horizontal distance between pairs
	Lookahead    float64 `yaml:"lookahead"`     // Spawn horizon beyond the right viewport edge
}

// BackgroundConfig defines the parallax backdrop.
type BackgroundConfig struct {
	Speed  float64 `yaml:"speed"`  // Leftward scroll speed
	Sprite string  `yaml:"sprite"` // Manifest name of the tile sprite
}

// OverlayConfig holds the text shown for each non-playing state.
type OverlayConfig struct {
	Loading  string `yaml:"loading"`
	Idle     string `yaml:"idle"`
	GameOver string `yaml:"game_over"`
}

// LabelConfig positions a HUD label on the screen.
type LabelConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// KeysConfig maps device events to the primary action.
type KeysConfig struct {
	// Primary lists the key names (Bubble Tea key strings) bound to the
	// primary action.
	Primary []string `yaml:"primary"`
}
