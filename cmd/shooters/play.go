package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rvbug/space-shooters/internal/core"
	"github.com/rvbug/space-shooters/internal/game/invaders"
	"github.com/rvbug/space-shooters/internal/platform/tui"
	"github.com/rvbug/space-shooters/internal/registry"
	"github.com/rvbug/space-shooters/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: invaders).

Controls:
  Left/A/H   - Move ship left
  Right/D/L  - Move ship right
  Space/Up/W - Fire
  P/Esc      - Pause
  R          - Restart (after the game ends)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Half the enemy fire rate, slower formation
  normal - Play the config as written
  hard   - Double the enemy fire rate, faster formation

Examples:
  shooters play
  shooters play invaders_compact
  shooters play --difficulty hard
  shooters play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := "invaders"
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'shooters list' to see available variants.")
		os.Exit(1)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	final, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Echo the outcome after the alt screen is gone.
	switch {
	case final.Won:
		fmt.Printf("Victory! Final Score: %d\n", final.Score)
	case final.GameOver:
		fmt.Printf("Game Over! Final Score: %d\n", final.Score)
	}
}
