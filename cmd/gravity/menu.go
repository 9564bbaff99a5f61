package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-lanes/internal/games/gravity"
	"github.com/vovakirdan/gravity-lanes/internal/platform/tui"
	"github.com/vovakirdan/gravity-lanes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Title screen and level menu",
	Long: `Show the title screen, then the level menu. Finished runs of this
session are listed under the menu.

Controls:
  Up/Down (k/j)  - Navigate
  Enter          - Select
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	checkTerminal(logger, cfg.Playfield.Width, cfg.Playfield.Height)

	quit, err := tui.RunTitle(cfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if quit {
		return
	}

	var history []tui.RunRecord
	for {
		sel, err := tui.RunMenu(cfg, history)
		if err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if sel.Quit {
			break
		}

		game, err := registry.Create(gravity.ID)
		if err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		logger.Debug("level selected", "level", sel.Level)
		result, err := tui.Run(game, runtimeConfig(cfg, sel.Level), logger)
		if err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		history = append(history, result.Records...)

		if result.Quit {
			break
		}
	}

	printSummary(history)
}
