package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Used as the last fallback when no YAML file can be read.
func Default() Config {
	return Config{
		Game: GameConfig{
			FrameRate:           60,
			LevelUpAcceleration: 2.0,
			ScoreStep:           10,
		},
		Actor: ActorConfig{
			X:              12,
			Y:              8,
			Width:          3,
			Height:         2,
			FlapImpulse:    16.0,
			RotationSpeed:  24.0,
			AnimationSpeed: 8.0,
			Gravity:        38.0,
			Sprite:         "bird",
		},
		Tubes: TubesConfig{
			Width:        5,
			Speed:        12.0,
			BorderOffset: 2,
			SpaceMin:     7,
			SpaceMax:     11,
			DistanceMin:  18,
			DistanceMax:  30,
			Lookahead:    10,
		},
		Background: BackgroundConfig{
			Speed:  4.0,
			Sprite: "skyline",
		},
		Overlays: OverlayConfig{
			Loading:  "Loading...",
			Idle:     "Press SPACE to start",
			GameOver: "GAME OVER",
		},
		ScoreLabel: LabelConfig{X: 2, Y: 0},
		Keys: KeysConfig{
			Primary: []string{" ", "up", "w", "enter"},
		},
	}
}
