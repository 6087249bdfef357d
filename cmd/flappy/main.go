// flappy is a side-scrolling arcade game played in the terminal.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the score history
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuigames/flappy/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a side-scrolling arcade game for your terminal",
	Long: `Flappy is a terminal arcade game: steer a bird through gaps between
tubes for as long as you can. One key does everything.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the score history

Examples:
  flappy play
  flappy play --difficulty hard
  flappy serve --ssh :2222
  flappy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig resolves the game configuration from the --config and
// --difficulty flags.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			return config.Config{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, config.Preset(flagDifficulty))
	}

	if flagFPS > 0 {
		cfg.Game.FrameRate = flagFPS
	}

	return cfg, nil
}
