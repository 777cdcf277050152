package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const sampleOne = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sampleTwo = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPartOne(t *testing.T) {
	got, err := PartOne(sampleOne)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sampleTwo)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestOverlappingWords(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{line: "oneight", want: 18},
		{line: "twone", want: 21},
		{line: "eighthree", want: 83},
		{line: "7", want: 77},
		{line: "sevenine", want: 79},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := PartTwo(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrailingNewlineInvariance(t *testing.T) {
	a, err := PartTwo(sampleTwo)
	require.NoError(t, err)
	b, err := PartTwo(sampleTwo + "\n\n")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNoDigitIsMalformed(t *testing.T) {
	_, err := PartOne("abc\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)

	_, err = PartTwo("xyz\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
