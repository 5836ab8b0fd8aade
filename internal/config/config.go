// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooters platform.
package config

import "fmt"

// InvadersConfig contains all tunable parameters for one game variant.
// The two reference variants (classic and compact) differ only in these
// values, never in logic.
type InvadersConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Formation FormationConfig `yaml:"formation"`
	Pacing    PacingConfig    `yaml:"pacing"`
	Combat    CombatConfig    `yaml:"combat"`
	Rules     RulesConfig     `yaml:"rules"`
	Colored   bool            `yaml:"colored"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FormationConfig defines the initial enemy grid.
type FormationConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	ColSpacing int `yaml:"col_spacing"`
	RowSpacing int `yaml:"row_spacing"`
	LeftMargin int `yaml:"left_margin"`
	TopMargin  int `yaml:"top_margin"`
}

// PacingConfig defines simulation timing.
type PacingConfig struct {
	// SimIntervalMS is the fixed simulation tick interval in milliseconds.
	// The outer loop polls input faster than this; the world only advances
	// at this coarser rate.
	SimIntervalMS int `yaml:"sim_interval_ms"`
	// SweepEvery gates the formation sweep to every Nth simulation tick,
	// keeping the formation visibly slower than bullets.
	SweepEvery int `yaml:"sweep_every"`
}

// CombatConfig defines projectile behavior and scoring.
type CombatConfig struct {
	// FireChance is the per-enemy, per-tick probability of firing.
	FireChance float64 `yaml:"fire_chance"`
	// KillPoints is the score awarded per destroyed enemy.
	KillPoints int `yaml:"kill_points"`
}

// RulesConfig defines terminal-state behavior.
type RulesConfig struct {
	// BottomMargin is the number of rows above the bottom edge that the
	// formation must stay out of; an enemy reaching row Height-BottomMargin
	// ends the game.
	BottomMargin int `yaml:"bottom_margin"`
	// LossPriority controls the tie-break when the formation empties on the
	// same tick it reaches the bottom: true means the loss wins.
	LossPriority bool `yaml:"loss_priority"`
}

// Validate checks that the configuration describes a playable game.
func (c InvadersConfig) Validate() error {
	if c.Grid.Width < 10 || c.Grid.Height < 8 {
		return fmt.Errorf("config: grid %dx%d too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Formation.Rows < 1 || c.Formation.Cols < 1 {
		return fmt.Errorf("config: formation %dx%d is empty", c.Formation.Rows, c.Formation.Cols)
	}
	lastCol := c.Formation.LeftMargin + (c.Formation.Cols-1)*c.Formation.ColSpacing
	if lastCol >= c.Grid.Width {
		return fmt.Errorf("config: formation right edge %d exceeds grid width %d", lastCol, c.Grid.Width)
	}
	lastRow := c.Formation.TopMargin + (c.Formation.Rows-1)*c.Formation.RowSpacing
	if lastRow >= c.Grid.Height-c.Rules.BottomMargin {
		return fmt.Errorf("config: formation bottom row %d inside loss zone", lastRow)
	}
	if c.Combat.FireChance < 0 || c.Combat.FireChance > 1 {
		return fmt.Errorf("config: fire_chance %v outside [0, 1]", c.Combat.FireChance)
	}
	if c.Pacing.SweepEvery < 1 {
		return fmt.Errorf("config: sweep_every must be at least 1, got %d", c.Pacing.SweepEvery)
	}
	if c.Pacing.SimIntervalMS < 1 {
		return fmt.Errorf("config: sim_interval_ms must be positive, got %d", c.Pacing.SimIntervalMS)
	}
	return nil
}
