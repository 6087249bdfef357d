package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/flappy/internal/audio"
	"github.com/tuigames/flappy/internal/core"
	"github.com/tuigames/flappy/internal/game"
	"github.com/tuigames/flappy/internal/platform/tui"
	"github.com/tuigames/flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Space/Up/W/Enter - Flap
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider gaps, slower tubes, gentle speed-up
  normal - Default balance
  hard   - Tighter gaps, faster tubes, steeper speed-up
  fixed  - No speed-up on level change

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml
  flappy play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: cfg.Game.FrameRate,
		Seed:      flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without persistence - the game still works
		store = nil
	}

	var scores game.ScoreStore
	if store != nil {
		scores = store.ForGame(tui.GameID)
	}

	// Sound output; remote-safe no-op when muted or the device fails
	var sounds game.SoundPlayer = game.NopSounds{}
	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer()
		if audioErr := player.Init(); audioErr != nil {
			logger.Warn("audio unavailable", "error", audioErr)
			player = nil
		} else {
			sounds = player
		}
	}

	machine := game.NewMachine(cfg, rt, scores, sounds)

	runErr := tui.Run(machine, rt, cfg.Keys.Primary)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
