package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/treyreynolds/super-ball-blaster/internal/blaster"
	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
	"github.com/treyreynolds/super-ball-blaster/internal/core"
	"github.com/treyreynolds/super-ball-blaster/internal/platform/tui"
	"github.com/treyreynolds/super-ball-blaster/internal/registry"
	"github.com/treyreynolds/super-ball-blaster/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with an interactive picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - View scoreboard
  Q            - Quit

Examples:
  blaster menu
  blaster menu --fps 30
  blaster menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Shares the gameplay flag variables with the play command.
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of extra campaign level YAML files")
}

func runMenu(_ *cobra.Command, _ []string) {
	if flagLevels != "" {
		if _, lerr := levels.NewLoader(flagLevels).LoadAll(); lerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Set config path and difficulty before creation
		blaster.SetConfigPath(flagConfig)
		blaster.SetDifficultyPreset(flagDifficulty)
		blaster.SetLevelsDir(flagLevels)
		blaster.SetStartLevel(0)

		if gameID == "blaster" {
			// Show mode/level selector
			selection, updatedCfg, selErr := tui.RunBlasterModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
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
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
