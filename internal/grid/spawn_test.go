package grid

import (
	"math/rand"
	"testing"
)

// scriptedSource replays a fixed sequence of values.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func TestSpawnSkipsOccupiedCells(t *testing.T) {
	board := Grid{
		{2, 4},
		{8, 0},
	}
	// (0,0) is taken, then (1,1) is free.
	src := &scriptedSource{values: []int{0, 0, 1, 1}}

	result, cell := Spawn(board, src, 2)

	if cell != (Cell{Row: 1, Col: 1}) {
		t.Errorf("Spawn cell = %+v, want {1 1}", cell)
	}
	if result[1][1] != 2 {
		t.Errorf("spawned value = %d, want 2", result[1][1])
	}
	if board[1][1] != 0 {
		t.Error("Spawn mutated its input")
	}
}

func TestSpawnAddsExactlyOneTile(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	board := New(4)

	for i := 0; i < 16; i++ {
		before := CountNonZero(board)
		next, cell := Spawn(board, rng, 2)
		if CountNonZero(next) != before+1 {
			t.Fatalf("spawn %d: nonzero %d -> %d", i, before, CountNonZero(next))
		}
		if board[cell.Row][cell.Col] != 0 {
			t.Fatalf("spawn %d: chose occupied cell %+v", i, cell)
		}
		board = next
	}

	if HasEmptyCell(board) {
		t.Error("board should be full after 16 spawns")
	}
}

func TestSpawnIsDeterministicForSeed(t *testing.T) {
	a, cellA := Spawn(New(4), rand.New(rand.NewSource(42)), 2)
	b, cellB := Spawn(New(4), rand.New(rand.NewSource(42)), 2)

	if cellA != cellB || !a.Equal(b) {
		t.Errorf("same seed should spawn in the same cell: %+v vs %+v", cellA, cellB)
	}
}

func TestSpawnOnFullGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Spawn on a full grid should panic")
		}
	}()
	Spawn(Grid{{2, 4}, {4, 2}}, rand.New(rand.NewSource(1)), 2)
}
