package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestPartOne(t *testing.T) {
	got, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		name       string
		seq        []int
		prev, next int
	}{
		{name: "arithmetic", seq: []int{0, 3, 6, 9, 12, 15}, prev: -3, next: 18},
		{name: "triangular", seq: []int{1, 3, 6, 10, 15, 21}, prev: 0, next: 28},
		{name: "cubic", seq: []int{10, 13, 16, 21, 30, 45}, prev: 5, next: 68},
		{name: "constant", seq: []int{7, 7, 7}, prev: 7, next: 7},
		{name: "zeros", seq: []int{0, 0}, prev: 0, next: 0},
		{name: "negative", seq: []int{-1, -2, -3}, prev: 0, next: -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := Extrapolate(tt.seq)
			assert.Equal(t, tt.prev, prev)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestExtrapolateDoesNotModifyInput(t *testing.T) {
	seq := []int{1, 3, 6, 10}
	Extrapolate(seq)
	assert.Equal(t, []int{1, 3, 6, 10}, seq)
}

func TestMalformed(t *testing.T) {
	_, err := PartOne("1 2 x\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
