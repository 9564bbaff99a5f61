// gravity is a terminal arcade game: walk the lanes, flip gravity and
// collect every bonus before the clock runs out.
//
// Usage:
//
//	gravity                  - Show the title screen and level menu
//	gravity menu             - Same as running without a command
//	gravity play --level N   - Play level N directly
//	gravity levels           - List the levels
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible levels
//	--log-file <path>  - Write the session log to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
	"github.com/vovakirdan/gravity-lanes/internal/games/gravity"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravity",
	Short: "Gravity Lanes - flip gravity and collect bonuses in your terminal",
	Long: `Gravity Lanes is a terminal arcade game. Walk along randomly generated
lanes, flip gravity to cling to either side of a lane, and collect every
bonus before the 60 second timer runs out. Don't fall off the screen.

Available commands:
  menu     - Title screen and level menu (default)
  play     - Play a level directly
  levels   - Show the available levels

Examples:
  gravity
  gravity play --level 2
  gravity play --level 3 --seed 42
  gravity levels`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// runtimeConfig builds the platform config for one level.
func runtimeConfig(cfg config.GravityConfig, level int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   cfg.Playfield.Width,
		ScreenH:   cfg.Playfield.Height,
		TickDelay: cfg.Timing.TickDelay,
		Seed:      flagSeed,
		Level:     level,
	}
}

// loadConfig returns the embedded game constants and hands them to the
// gravity package. A fallback to the built-in defaults is reported.
func loadConfig(logger *log.Logger) config.GravityConfig {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using built-in defaults", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: using built-in defaults: %v\n", err)
	}
	gravity.SetConfig(cfg)
	return cfg
}
