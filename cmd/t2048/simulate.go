package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var (
	flagMoves   int
	flagVerbose bool
	flagBoard   string
	flagDirs    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay random moves and print the result",
	Long: `Play a game headlessly by choosing random directions until the game is
lost or the move limit is reached, then print the final board.

The same seed always produces the same game.

Examples:
  t2048 simulate --seed 42
  t2048 simulate --seed 7 --moves 50 --verbose
  t2048 simulate --dimension 3 --target 128
  t2048 simulate --board "2,2,4,4/0,0,0,0/0,0,0,0/0,0,0,0" --moves 10 -v
  t2048 simulate --dirs "left,up,r,d" --moves 40`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 1000, "Maximum number of moves")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
	simulateCmd.Flags().StringVar(&flagBoard, "board", "", "Start from this board: rows separated by '/', cells by ','")
	simulateCmd.Flags().StringVar(&flagDirs, "dirs", "", "Play these directions in a loop instead of random ones, e.g. \"l,u,r,d\"")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	var opts []session.Option
	if flagBoard != "" {
		start, err := parseBoard(flagBoard, cfg.Dimension)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithGrid(start))
	}

	sess, seed, err := newSession(cfg, logger, opts...)
	if err != nil {
		return err
	}

	// Directions come from their own stream so spawns match an interactive
	// game with the same seed and the same key presses.
	next := randomDirections(rand.New(rand.NewSource(seed + 1)))
	if flagDirs != "" {
		script, err := parseDirections(flagDirs)
		if err != nil {
			return err
		}
		next = scriptedDirections(script)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "seed %d\n", seed)
	out := simulate(w, sess, next, flagMoves, flagVerbose)
	printSummary(w, out)
	return nil
}

// randomDirections picks each direction uniformly from src.
func randomDirections(src grid.Source) func() grid.Direction {
	all := grid.Directions()
	return func() grid.Direction {
		return all[src.Intn(len(all))]
	}
}

// scriptedDirections cycles through script forever.
func scriptedDirections(script []grid.Direction) func() grid.Direction {
	i := 0
	return func() grid.Direction {
		dir := script[i%len(script)]
		i++
		return dir
	}
}

// parseDirections reads a comma-separated list such as "left,u,R".
func parseDirections(raw string) ([]grid.Direction, error) {
	var dirs []grid.Direction
	for _, name := range strings.Split(raw, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		dir, err := grid.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no directions in %q", raw)
	}
	return dirs, nil
}

// simulate plays up to moves turns, taking each direction from next, and
// returns the last outcome.
func simulate(w io.Writer, sess *session.Session, next func() grid.Direction, moves int, verbose bool) session.Outcome {
	out := sess.Outcome()

	for i := 0; i < moves && out.Status != session.Lost; i++ {
		dir := next()
		prev := out.Status
		out = sess.ApplyMove(dir)

		if verbose {
			fmt.Fprintf(w, "turn %d: %s (max %d)\n%s\n\n", out.Turn, dir, sess.Max(), tui.RenderPlain(out.Grid))
		}
		if prev == session.InProgress && out.Status == session.Won {
			fmt.Fprintf(w, "reached %d on turn %d\n", sess.Settings().WinningValue, out.Turn)
		}
	}
	return out
}

func printSummary(w io.Writer, out session.Outcome) {
	fmt.Fprintln(w, tui.RenderPlain(out.Grid))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "status: %s\n", out.Status)
	fmt.Fprintf(w, "max:    %d\n", out.Max)
	fmt.Fprintf(w, "turns:  %d\n", out.Turn)
}
