package config

// DifficultyPreset is a named static parameter set. Presets only rescale
// the starting parameters; there is no progression during play.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty strings
// return the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ApplyPreset rescales the combat and pacing parameters for a preset.
// Normal is the config as written; easy halves enemy fire and slows the
// sweep, hard doubles fire and speeds the sweep up.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.FireChance /= 2
		cfg.Pacing.SweepEvery++
	case DifficultyHard:
		cfg.Combat.FireChance *= 2
		if cfg.Combat.FireChance > 1 {
			cfg.Combat.FireChance = 1
		}
		if cfg.Pacing.SweepEvery > 1 {
			cfg.Pacing.SweepEvery--
		}
	}
}
