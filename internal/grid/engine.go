package grid

import "fmt"

// ApplyDirection returns the grid after sliding every line toward dir.
// Left and Right transform rows; Up and Down transform columns. Lines are
// independent of each other.
func ApplyDirection(g Grid, dir Direction) Grid {
	mustBeValid(g)

	var compact func(Line) Line
	switch dir {
	case Left, Up:
		compact = CompactTowardStart
	case Right, Down:
		compact = CompactTowardEnd
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", int(dir)))
	}

	n := len(g)
	out := New(n)
	for i := range n {
		if dir == Left || dir == Right {
			copy(out[i], compact(Line(g[i])))
			continue
		}
		col := compact(column(g, i))
		for r := range n {
			out[r][i] = col[r]
		}
	}
	return out
}

// CanMove reports whether moving toward dir would change the grid.
func CanMove(g Grid, dir Direction) bool {
	return !ApplyDirection(g, dir).Equal(g)
}

// column extracts column c as a fresh line.
func column(g Grid, c int) Line {
	col := make(Line, len(g))
	for r := range g {
		col[r] = g[r][c]
	}
	return col
}

// HasEmptyCell reports whether at least one cell is 0.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxValue returns the highest tile, or 0 for an empty grid.
func MaxValue(g Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// CountNonZero returns the number of occupied cells.
func CountNonZero(g Grid) int {
	count := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Sum returns the total of all tile values.
func Sum(g Grid) int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// IsTerminal reports whether no move in any direction can change the grid:
// every cell is filled and no two orthogonal neighbours are equal.
func IsTerminal(g Grid) bool {
	mustBeValid(g)

	n := len(g)
	for r := range n {
		for c := range n {
			v := g[r][c]
			if v == 0 {
				return false
			}
			if c < n-1 && g[r][c+1] == v {
				return false
			}
			if r < n-1 && g[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
