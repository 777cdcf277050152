package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/pkg/types"
)

const squareLoop = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

const complexLoop = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

const enclosedSample = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const largerSample = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

const junkSample = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

func TestPartOne(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "square loop with junk", input: squareLoop, want: 4},
		{name: "complex loop", input: complexLoop, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PartOne(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartTwo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "enclosed pockets", input: enclosedSample, want: 4},
		{name: "larger", input: largerSample, want: 8},
		{name: "junk pipes", input: junkSample, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PartTwo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartTileInferred(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tile
	}{
		{name: "square loop", input: squareLoop, want: ES},
		{name: "complex loop", input: complexLoop, want: ES},
		{name: "junk pipes", input: junkSample, want: SW},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop, _, err := FindLoop(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loop.StartTile)
		})
	}
}

func TestInteriorDisjointFromLoop(t *testing.T) {
	for _, input := range []string{enclosedSample, largerSample, junkSample} {
		loop, g, err := FindLoop(input)
		require.NoError(t, err)
		onLoop := make(map[grid.Pos]bool)
		for _, p := range loop.Path {
			onLoop[p] = true
		}
		for _, p := range loop.Interior(g.Rows(), g.Cols()) {
			assert.False(t, onLoop[p], "interior cell %s is on the loop", p)
		}
	}
}

func TestTileExit(t *testing.T) {
	assert.Equal(t, grid.South, NS.Exit(grid.North))
	assert.Equal(t, grid.East, NE.Exit(grid.North))
	assert.Equal(t, grid.North, NE.Exit(grid.East))
	assert.Equal(t, grid.West, SW.Exit(grid.South))
	assert.False(t, Start.Connects(grid.North))
	assert.False(t, Empty.Connects(grid.North))
}

func TestLogicViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no start", input: ".F7\n.LJ\n"},
		{name: "isolated start", input: "...\n.S.\n...\n"},
		{name: "dead end", input: ".....\n.S-7.\n.|...\n.....\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartOne(tt.input)
			assert.ErrorIs(t, err, types.ErrLogicViolation)
		})
	}
}

func TestUnknownPipe(t *testing.T) {
	_, err := PartOne("S7\nLX\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
