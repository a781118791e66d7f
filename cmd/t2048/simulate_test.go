package main

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func TestSimulatePlaysUntilLost(t *testing.T) {
	settings := session.DefaultSettings()
	settings.Dimension = 3
	settings.WinningValue = 1024
	sess := session.New(settings, rand.New(rand.NewSource(1)))

	out := simulate(io.Discard, sess, randomDirections(rand.New(rand.NewSource(2))), 100000, false)

	assert.Equal(t, session.Lost, out.Status)
	assert.True(t, grid.IsTerminal(out.Grid))
	assert.Positive(t, out.Turn)
}

func TestSimulateRespectsMoveLimit(t *testing.T) {
	sess := session.New(session.DefaultSettings(), rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	out := simulate(&buf, sess, randomDirections(rand.New(rand.NewSource(4))), 5, true)

	assert.Equal(t, 5, out.Turn)
	assert.Contains(t, buf.String(), "turn 5:")
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() session.Outcome {
		sess := session.New(session.DefaultSettings(), rand.New(rand.NewSource(42)))
		return simulate(io.Discard, sess, randomDirections(rand.New(rand.NewSource(43))), 200, false)
	}

	a, b := run(), run()
	require.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.Turn, b.Turn)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, session.Outcome{
		Grid:   grid.Grid{{2, 4}, {4, 2}},
		Max:    4,
		Status: session.Lost,
		Turn:   9,
	})

	assert.Contains(t, buf.String(), "status: lost")
	assert.Contains(t, buf.String(), "max:    4")
	assert.Contains(t, buf.String(), "turns:  9")
}

func TestParseBoard(t *testing.T) {
	g, err := parseBoard("2, 0/4,8", 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Grid{{2, 0}, {4, 8}}, g)

	for _, raw := range []string{"2,0", "2,0/4", "2,x/4,8", "2,-2/4,8", "3,3/0,0", "2,6/0,0"} {
		_, err := parseBoard(raw, 2)
		assert.Error(t, err, raw)
	}
}

func TestSimulateFromPreparedBoard(t *testing.T) {
	start, err := parseBoard("8,4/2,4", 2)
	require.NoError(t, err)

	settings := session.DefaultSettings()
	settings.Dimension = 2
	settings.WinningValue = 8
	sess := session.New(settings, rand.New(rand.NewSource(5)), session.WithGrid(start))

	out := simulate(io.Discard, sess, randomDirections(rand.New(rand.NewSource(6))), 1000, false)

	assert.Equal(t, session.Lost, out.Status)
	assert.True(t, out.Reached)
}

func TestParseDirections(t *testing.T) {
	dirs, err := parseDirections("left, U,r,,down")
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.Left, grid.Up, grid.Right, grid.Down}, dirs)

	for _, raw := range []string{"", " , ", "left,sideways"} {
		_, err := parseDirections(raw)
		assert.Error(t, err, raw)
	}
}

func TestSimulateFollowsScript(t *testing.T) {
	next := scriptedDirections([]grid.Direction{grid.Left, grid.Up})
	got := []grid.Direction{next(), next(), next()}
	assert.Equal(t, []grid.Direction{grid.Left, grid.Up, grid.Left}, got)

	settings := session.DefaultSettings()
	settings.SpawnPolicy = session.SpawnOnChange
	start := grid.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	sess := session.New(settings, rand.New(rand.NewSource(8)), session.WithGrid(start))

	var buf bytes.Buffer
	out := simulate(&buf, sess, scriptedDirections([]grid.Direction{grid.Left}), 1, true)

	assert.Equal(t, 4, out.Grid[0][0])
	assert.Equal(t, 4, out.Max)
	assert.Contains(t, buf.String(), "turn 1: left (max 4)")
}
