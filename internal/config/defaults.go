package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/compact.yaml
var defaultCompactYAML []byte

// DefaultClassicConfig returns the classic variant: 60x25 grid, 5x10
// formation, colored rendering.
func DefaultClassicConfig() InvadersConfig {
	return InvadersConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 25,
		},
		Formation: FormationConfig{
			Rows:       5,
			Cols:       10,
			ColSpacing: 5,
			RowSpacing: 3,
			LeftMargin: 5,
			TopMargin:  2,
		},
		Pacing: PacingConfig{
			SimIntervalMS: 100,
			SweepEvery:    5,
		},
		Combat: CombatConfig{
			FireChance: 0.02,
			KillPoints: 10,
		},
		Rules: RulesConfig{
			BottomMargin: 3,
			LossPriority: true,
		},
		Colored: true,
	}
}

// DefaultCompactConfig returns the compact variant: 50x20 grid, 4x8
// formation, monochrome rendering.
func DefaultCompactConfig() InvadersConfig {
	return InvadersConfig{
		Grid: GridConfig{
			Width:  50,
			Height: 20,
		},
		Formation: FormationConfig{
			Rows:       4,
			Cols:       8,
			ColSpacing: 5,
			RowSpacing: 3,
			LeftMargin: 5,
			TopMargin:  2,
		},
		Pacing: PacingConfig{
			SimIntervalMS: 100,
			SweepEvery:    5,
		},
		Combat: CombatConfig{
			FireChance: 0.02,
			KillPoints: 10,
		},
		Rules: RulesConfig{
			BottomMargin: 2,
			LossPriority: true,
		},
		Colored: false,
	}
}

// DefaultConfig returns the hardcoded default for a variant ID.
// Unknown variants fall back to classic.
func DefaultConfig(variant string) InvadersConfig {
	if variant == "invaders_compact" {
		return DefaultCompactConfig()
	}
	return DefaultClassicConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	if variant == "invaders_compact" {
		return defaultCompactYAML
	}
	return defaultClassicYAML
}
