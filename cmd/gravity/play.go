package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-lanes/internal/games/gravity"
	"github.com/vovakirdan/gravity-lanes/internal/platform/tui"
	"github.com/vovakirdan/gravity-lanes/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing the given level directly, skipping the menu.

Controls:
  Left/Right (h/l, a/d)  - Move
  Space                  - Flip gravity
  R                      - Play again (after the run ends)
  B/Esc                  - Back (after the run ends)
  Q/Ctrl+C               - Quit

Examples:
  gravity play
  gravity play --level 3
  gravity play --level 2 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&flagLevel, "level", "l", 1, "Level to play (1-3)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)
	if !cfg.HasLevel(flagLevel) {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", flagLevel)
		fmt.Fprintln(os.Stderr, "Run 'gravity levels' to see available levels.")
		os.Exit(1)
	}

	checkTerminal(logger, cfg.Playfield.Width, cfg.Playfield.Height)

	game, err := registry.Create(gravity.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	result, err := tui.Run(game, runtimeConfig(cfg, flagLevel), logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	printSummary(result.Records)
}

// printSummary prints the finished runs once the terminal is released.
func printSummary(records []tui.RunRecord) {
	for _, r := range records {
		fmt.Printf("Level %d: %s, %d/%d bonuses in %.1fs\n", r.Level, r.Outcome, r.Score, r.Total, r.Elapsed.Seconds())
	}
}
