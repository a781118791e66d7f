// Package grid implements the 2048 board engine: direction-aware line
// compaction, whole-board moves, tile spawning and terminal detection.
//
// Every function treats its inputs as read-only and returns fresh slices.
// Malformed input (non-square grids, negative tiles, unknown directions) is a
// programmer error and panics.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions returns all four move directions.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name ("up", "DOWN", "l", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// Line is a single row or column of tile values.
type Line []int

// Grid is a square board of tile values indexed as g[row][col]. Zero is empty.
type Grid [][]int

// Cell addresses one square of the grid.
type Cell struct {
	Row int
	Col int
}

// New returns an empty n×n grid.
func New(n int) Grid {
	if n <= 0 {
		panic(fmt.Sprintf("grid: invalid dimension %d", n))
	}
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]int, n)
	}
	return g
}

// FromRows validates rows and returns a deep copy as a Grid.
func FromRows(rows [][]int) Grid {
	g := Grid(rows)
	mustBeValid(g)
	return g.Clone()
}

// Dimension returns the side length of the grid.
func (g Grid) Dimension() int {
	return len(g)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// IsTile reports whether v may sit in a cell: zero or a power of two.
func IsTile(v int) bool {
	return v >= 0 && v&(v-1) == 0
}

// String renders the grid as space-separated rows, one per line.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// mustBeValid panics unless g is a non-empty square grid whose cells are
// zero or a power of two.
func mustBeValid(g Grid) {
	n := len(g)
	if n == 0 {
		panic("grid: empty grid")
	}
	for r, row := range g {
		if len(row) != n {
			panic(fmt.Sprintf("grid: row %d has %d cells, want %d", r, len(row), n))
		}
		for c, v := range row {
			if v < 0 {
				panic(fmt.Sprintf("grid: negative tile %d at (%d,%d)", v, r, c))
			}
			if !IsTile(v) {
				panic(fmt.Sprintf("grid: tile %d at (%d,%d) is not a power of two", v, r, c))
			}
		}
	}
}
