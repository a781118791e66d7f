package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var (
	flagConfig      string
	flagSeed        int64
	flagDimension   int
	flagTarget      int
	flagSpawnPolicy string
	flagLogFile     string
	flagLogLevel    string
)

// loadDotEnv reads ./.env so T2048_* overrides can live next to the binary.
func loadDotEnv() error {
	return config.LoadDotEnv()
}

// loadConfig loads the config file and applies flag overrides on top.
// Validation runs once, after every layer is applied.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("dimension") {
		cfg.Dimension = flagDimension
	}
	if flags.Changed("target") {
		cfg.WinningValue = flagTarget
	}
	if flags.Changed("spawn-policy") {
		cfg.SpawnPolicy = flagSpawnPolicy
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger. The returned closer releases the log file.
func newLogger(cmd *cobra.Command) (*log.Logger, io.Closer, error) {
	levelName := flagLogLevel
	if env := os.Getenv(config.EnvLogLevel); env != "" && !cmd.Flags().Changed("log-level") {
		levelName = env
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closer, nil
}

// parseBoard reads a board given as rows separated by "/" and cells by ",",
// e.g. "2,0,2,2/0,0,0,0/0,0,0,0/0,0,0,0".
func parseBoard(raw string, dimension int) (grid.Grid, error) {
	rows := strings.Split(strings.TrimSpace(raw), "/")
	if len(rows) != dimension {
		return nil, fmt.Errorf("board: got %d rows, want %d", len(rows), dimension)
	}

	g := grid.New(dimension)
	for r, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != dimension {
			return nil, fmt.Errorf("board: row %d has %d cells, want %d", r+1, len(cells), dimension)
		}
		for c, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("board: row %d: %w", r+1, err)
			}
			if !grid.IsTile(v) {
				return nil, fmt.Errorf("board: row %d: %d is not an empty cell or a power of two", r+1, v)
			}
			g[r][c] = v
		}
	}
	return g, nil
}

// newSession creates a session from cfg. A zero seed means time-based.
func newSession(cfg config.Config, logger *log.Logger, opts ...session.Option) (*session.Session, int64, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, 0, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeding", "seed", seed)

	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	return session.New(settings, rand.New(rand.NewSource(seed)), opts...), seed, nil
}
