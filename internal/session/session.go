// Package session runs one game of 2048 on top of the grid engine.
//
// A Session owns the authoritative grid. Each call to ApplyMove slides the
// grid, spawns a tile, recomputes the running maximum and the status, and
// returns an Outcome snapshot for the host to render. Sessions are not safe
// for concurrent use; the host applies one move at a time.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Status is the state of a game.
type Status int

const (
	InProgress Status = iota
	// Won means the winning value was reached. Play may continue.
	Won
	// Lost means no move can change the grid. The session is frozen.
	Lost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is the published result of the latest turn.
type Outcome struct {
	Grid    grid.Grid  // Snapshot; the caller may keep or modify it
	Max     int        // Running maximum tile
	Status  Status     // Status after the turn
	Changed bool       // Whether the slide moved or merged anything
	Spawned *grid.Cell // Cell of the new tile, nil if none spawned
	Turn    int        // Number of moves applied so far
	Reached bool       // Winning value has been reached at some point
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for turn and status records.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithGrid starts the session from a prepared board instead of an empty grid
// with one seed tile. The board dimension must match the settings.
func WithGrid(g grid.Grid) Option {
	return func(s *Session) {
		s.start = grid.FromRows(g)
	}
}

// Session holds one game.
type Session struct {
	settings Settings
	src      grid.Source
	logger   *log.Logger
	start    grid.Grid

	board   grid.Grid
	outcome Outcome
}

// New starts a game. Invalid settings panic; validate user input first.
func New(settings Settings, src grid.Source, opts ...Option) *Session {
	if err := settings.Validate(); err != nil {
		panic(fmt.Sprintf("session: invalid settings: %v", err))
	}
	if src == nil {
		panic("session: nil random source")
	}
	if settings.SpawnPolicy == "" {
		settings.SpawnPolicy = SpawnAlways
	}

	s := &Session{
		settings: settings,
		src:      src,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.start != nil && s.start.Dimension() != settings.Dimension {
		panic(fmt.Sprintf("session: board is %dx%d, settings want %d",
			s.start.Dimension(), s.start.Dimension(), settings.Dimension))
	}

	s.Reset()
	return s
}

// Reset starts a new game with the same settings and random source.
func (s *Session) Reset() {
	var spawned *grid.Cell
	if s.start != nil {
		s.board = s.start.Clone()
	} else {
		var cell grid.Cell
		s.board, cell = grid.Spawn(grid.New(s.settings.Dimension), s.src, s.settings.SpawnValue)
		spawned = &cell
	}

	s.outcome = Outcome{Spawned: spawned}
	s.evaluate()

	s.logger.Info("new game",
		"dimension", s.settings.Dimension,
		"target", s.settings.WinningValue,
		"policy", s.settings.SpawnPolicy,
		"status", s.outcome.Status,
	)
}

// ApplyMove plays one turn in dir and returns the resulting outcome.
// On a lost game it changes nothing and returns the stored outcome.
func (s *Session) ApplyMove(dir grid.Direction) Outcome {
	if s.outcome.Status == Lost {
		return s.Outcome()
	}

	next := grid.ApplyDirection(s.board, dir)
	changed := !next.Equal(s.board)

	var spawned *grid.Cell
	if s.shouldSpawn(changed) && grid.HasEmptyCell(next) {
		var cell grid.Cell
		next, cell = grid.Spawn(next, s.src, s.settings.SpawnValue)
		spawned = &cell
	}

	s.board = next
	prev := s.outcome.Status
	s.outcome.Turn++
	s.outcome.Changed = changed
	s.outcome.Spawned = spawned
	s.evaluate()

	s.logger.Debug("turn",
		"turn", s.outcome.Turn,
		"dir", dir,
		"changed", changed,
		"spawned", spawned != nil,
		"max", s.outcome.Max,
	)
	if s.outcome.Status != prev {
		s.logger.Info("status changed", "from", prev, "to", s.outcome.Status, "max", s.outcome.Max, "turn", s.outcome.Turn)
	}

	return s.Outcome()
}

func (s *Session) shouldSpawn(changed bool) bool {
	return s.settings.SpawnPolicy == SpawnAlways || changed
}

// evaluate recomputes the running maximum and the status from the board.
// A terminal board is lost even after a win, so Won can still become Lost.
func (s *Session) evaluate() {
	s.outcome.Max = grid.MaxValue(s.board)
	if s.outcome.Max >= s.settings.WinningValue {
		s.outcome.Reached = true
	}

	switch {
	case grid.IsTerminal(s.board):
		s.outcome.Status = Lost
	case s.outcome.Reached:
		s.outcome.Status = Won
	default:
		s.outcome.Status = InProgress
	}
}

// Outcome returns a snapshot of the latest outcome.
func (s *Session) Outcome() Outcome {
	out := s.outcome
	out.Grid = s.board.Clone()
	if s.outcome.Spawned != nil {
		cell := *s.outcome.Spawned
		out.Spawned = &cell
	}
	return out
}

// Grid returns a copy of the current board.
func (s *Session) Grid() grid.Grid {
	return s.board.Clone()
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.outcome.Status
}

// Max returns the running maximum tile.
func (s *Session) Max() int {
	return s.outcome.Max
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() Settings {
	return s.settings
}
