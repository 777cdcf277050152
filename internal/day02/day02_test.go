package day02

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestPartOne(t *testing.T) {
	got, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestParseGames(t *testing.T) {
	games, err := ParseGames("Game 12: 3 blue, 4 red; 2 green\n")
	require.NoError(t, err)
	want := []Game{{ID: 12, Samples: []Cubes{{Red: 4, Blue: 3}, {Green: 2}}}}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Errorf("ParseGames() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing colon", input: "Game 1 3 blue"},
		{name: "unknown colour", input: "Game 1: 3 purple"},
		{name: "bad count", input: "Game 1: x blue"},
		{name: "bad label", input: "Round 1: 3 blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartOne(tt.input)
			assert.ErrorIs(t, err, types.ErrMalformedInput)
		})
	}
}
