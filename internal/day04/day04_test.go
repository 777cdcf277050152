package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestPartOne(t *testing.T) {
	got, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestMatches(t *testing.T) {
	cards, err := ParseCards(sample)
	require.NoError(t, err)
	want := []int{4, 2, 2, 1, 0, 0}
	for i, c := range cards {
		assert.Equal(t, want[i], c.Matches(), "card %d", i+1)
	}
}

func TestWinsPastLastCardAreClamped(t *testing.T) {
	got, err := PartTwo("Card 1: 1 2 | 1 2\n")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestMissingSeparator(t *testing.T) {
	_, err := PartOne("Card 1: 1 2 3 4\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
