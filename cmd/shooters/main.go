// shooters is a terminal Space Invaders platform.
//
// Usage:
//
//	shooters list              - List available variants
//	shooters play [variant]    - Play a variant (default: invaders)
//	shooters serve             - Start SSH server for remote play
//	shooters scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shooters/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/rvbug/space-shooters/internal/game/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooters",
	Short: "Space Shooters - Play Space Invaders in your terminal",
	Long: `Space Shooters is a terminal-based Space Invaders game.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shooters list
  shooters play
  shooters play invaders_compact --difficulty hard
  shooters serve --ssh :2222
  shooters scores invaders`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooters/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
