// t2048 is the sliding-tile puzzle 2048 for the terminal.
//
// Usage:
//
//	t2048 play                 - Play interactively
//	t2048 simulate             - Autoplay random moves headlessly
//	t2048 config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--log-file <path>   - Write logs to a file (the game owns the terminal)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile puzzle 2048.

Tiles slide in the chosen direction, equal neighbours merge into their sum
and a new tile appears after every move. Reach the target tile to win; the
game is lost when no move can change the board.

Available commands:
  play      - Play interactively
  simulate  - Autoplay random moves and print the result
  config    - Print the effective configuration

Examples:
  t2048 play
  t2048 play --dimension 5 --target 4096
  t2048 simulate --seed 42 --moves 500
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadDotEnv()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagDimension, "dimension", 0, "Board size (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTarget, "target", 0, "Winning tile value (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSpawnPolicy, "spawn-policy", "", "Spawn policy: always, on-change (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env: T2048_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
