package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/treyreynolds/super-ball-blaster/internal/blaster"
	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
	"github.com/treyreynolds/super-ball-blaster/internal/core"
	"github.com/treyreynolds/super-ball-blaster/internal/platform/tui"
	"github.com/treyreynolds/super-ball-blaster/internal/registry"
	"github.com/treyreynolds/super-ball-blaster/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  Left/Right  - Aim the launcher
  Space       - Fire the volley
  X           - Recall balls in flight
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More balls, slower balls, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer balls, faster balls, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  blaster play blaster
  blaster play blaster --difficulty easy
  blaster play blaster_endless --seed 42
  blaster play blaster --config ./my-blaster.yaml
  blaster play blaster --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of extra campaign level YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blaster list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	blaster.SetConfigPath(flagConfig)
	blaster.SetDifficultyPreset(flagDifficulty)
	blaster.SetLevelsDir(flagLevels)

	// Fail fast on broken custom level files instead of silently
	// falling back to the built-in campaign.
	if flagLevels != "" {
		if _, lerr := levels.NewLoader(flagLevels).LoadAll(); lerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
			os.Exit(1)
		}
	}

	if gameID == "blaster" {
		// Show mode/level selector
		selection, updatedCfg, selErr := tui.RunBlasterModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		if selection.Mode == tui.BlasterModeEndless {
			gameID = "blaster_endless"
		}
		if selection.Level > 0 {
			blaster.SetStartLevel(selection.Level)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
