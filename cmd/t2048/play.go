package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 interactively",
	Long: `Start an interactive game of 2048.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  N/R               - New game
  ?                 - Toggle help
  Q/Esc/Ctrl+C      - Quit

Reaching the target shows a banner but play continues until the board
locks up.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --dimension 3 --target 256
  t2048 play --spawn-policy on-change --log-file ~/.t2048/play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; try 'simulate' instead")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	sess, seed, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting game", "seed", seed)

	if err := tui.Run(sess, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
