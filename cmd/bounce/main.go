// bounce is a terminal bouncing-ball arcade game.
//
// Usage:
//
//	bounce play              - Play a game
//	bounce menu              - Pick a variant interactively, then play
//	bounce variants          - List available rule sets
//	bounce config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom YAML or TOML config
//	--log <path>     - Set log file path (default: ~/.bounce/bounce.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register its variants
	_ "github.com/vovakirdan/bounce/internal/bounce"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - keep the ball in play from your terminal",
	Long: `Bounce is a terminal arcade game. Move the paddle to keep the ball
in the arena, collect bonuses and avoid the spike.

Available commands:
  play      - Start a game directly
  menu      - Pick a variant, play, and come back
  variants  - Show all rule sets
  config    - Print the effective configuration

Examples:
  bounce play
  bounce play --variant arcade
  bounce menu --fps 30
  bounce config --format toml > bounce.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.bounce/bounce.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}
