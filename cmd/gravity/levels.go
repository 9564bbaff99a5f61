package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-lanes/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Long:  `Shows the registered game and every level with its lane and bonus counts.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	for _, g := range registry.List() {
		fmt.Printf("%s (%s)\n", g.Title, g.ID)
	}
	fmt.Println()

	fmt.Println("Available levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-14s  %-5s  %-7s\n", "Level", "Name", "Lanes", "Bonuses")
	fmt.Printf("  %-5s  %-14s  %-5s  %-7s\n", "-----", "----", "-----", "-------")

	for _, lv := range cfg.Levels {
		fmt.Printf("  %-5d  %-14s  %-5d  %-7d\n", lv.Number, lv.Name, cfg.LaneCount(lv.Number), cfg.BonusCount(lv.Number))
	}

	fmt.Println()
	fmt.Printf("Playfield %dx%d, %s to collect every bonus.\n", cfg.Playfield.Width, cfg.Playfield.Height, cfg.Timing.TimeLimit)
	fmt.Println("Run 'gravity play --level <n>' to play a level.")
}
