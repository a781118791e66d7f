package grid

// Source supplies the randomness for tile spawning. *math/rand.Rand
// satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Spawn places value in a uniformly chosen empty cell and returns the new grid
// together with the chosen cell. Cells are sampled at random until an empty
// one comes up. The grid must have an empty cell.
func Spawn(g Grid, src Source, value int) (Grid, Cell) {
	mustBeValid(g)
	if value <= 0 {
		panic("grid: spawn value must be positive")
	}
	if !HasEmptyCell(g) {
		panic("grid: spawn on a full grid")
	}

	n := len(g)
	for {
		cell := Cell{Row: src.Intn(n), Col: src.Intn(n)}
		if g[cell.Row][cell.Col] != 0 {
			continue
		}
		out := g.Clone()
		out[cell.Row][cell.Col] = value
		return out, cell
	}
}
