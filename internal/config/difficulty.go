package config

// Preset is a named difficulty level applied on top of the loaded config.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // No speed progression at all
)

// ValidPreset reports whether name is a recognized preset.
func ValidPreset(name string) bool {
	switch Preset(name) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return true
	}
	return false
}

// ApplyPreset scales the pacing parameters for the chosen preset.
// The zero-value preset (empty string) leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Tubes.Speed *= 0.85
		cfg.Game.LevelUpAcceleration *= 0.5
		cfg.Tubes.SpaceMin += 1
		cfg.Tubes.SpaceMax += 1
	case PresetHard:
		cfg.Tubes.Speed *= 1.2
		cfg.Game.LevelUpAcceleration *= 1.5
		cfg.Tubes.DistanceMax -= 4
	case PresetFixed:
		cfg.Game.LevelUpAcceleration = 0
	}
}
