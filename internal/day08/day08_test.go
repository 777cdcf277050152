package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const linearSample = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const loopingSample = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const ghostSample = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestPartOne(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "linear", input: linearSample, want: 2},
		{name: "looping", input: loopingSample, want: 6},
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
	got, err := PartTwo(ghostSample)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

// Walks whose Z visits are not evenly spaced fall back to simulation.
func TestPartTwoSimulationFallback(t *testing.T) {
	// 11A hits Z at steps 1, 3, 5, ... so its first hit is not its period.
	input := `L

11A = (11Z, 11Z)
11Z = (11B, 11B)
11B = (11Z, 11Z)
22A = (22B, 22B)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
`
	got, err := PartTwo(input)
	require.NoError(t, err)
	// 11A is on Z at odd steps; 22A at steps 3, 6, 9, ...
	assert.Equal(t, 3, got)
}

// A walk that hits Z at t and 2t on different nodes is not periodic.
func TestPartTwoUnevenCycle(t *testing.T) {
	// 11A hits 11Z at 2, 22Z at 4, then parks on 33Z from step 9.
	input := `L

11A = (11B, 11B)
11B = (11Z, 11Z)
11Z = (11C, 11C)
11C = (22Z, 22Z)
22Z = (11D, 11D)
11D = (11E, 11E)
11E = (11F, 11F)
11F = (11G, 11G)
11G = (33Z, 33Z)
33Z = (33Z, 33Z)
44A = (44B, 44B)
44B = (44C, 44C)
44C = (44Z, 44Z)
44Z = (44D, 44D)
44D = (44E, 44E)
44E = (44Z, 44Z)
`
	got, err := PartTwo(input)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestParseInternsNodes(t *testing.T) {
	n, err := Parse(loopingSample)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB", "ZZZ"}, n.Names)
	assert.Equal(t, []int{1, 0, 2}, n.Left)
	assert.Equal(t, []int{1, 2, 2}, n.Right)
}

func TestUnreachableGoal(t *testing.T) {
	_, err := PartOne("L\n\nAAA = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n")
	assert.ErrorIs(t, err, types.ErrLogicViolation)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bad instruction", input: "LX\n\nAAA = (AAA, AAA)\n"},
		{name: "undefined target", input: "L\n\nAAA = (BBB, AAA)\n"},
		{name: "duplicate node", input: "L\n\nAAA = (AAA, AAA)\nAAA = (AAA, AAA)\n"},
		{name: "missing nodes", input: "L\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartOne(tt.input)
			assert.ErrorIs(t, err, types.ErrMalformedInput)
		})
	}
}
