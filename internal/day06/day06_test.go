package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestPartOne(t *testing.T) {
	got, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(288), got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(71503), got)
}

func bruteForce(r Race) uint64 {
	var n uint64
	for t := uint64(0); t <= r.Time; t++ {
		if t*(r.Time-t) > r.Record {
			n++
		}
	}
	return n
}

func TestWaysMatchesBruteForce(t *testing.T) {
	for T := uint64(0); T <= 40; T++ {
		for D := uint64(0); D <= 420; D += 7 {
			r := Race{Time: T, Record: D}
			assert.Equal(t, bruteForce(r), r.Ways(), "T=%d D=%d", T, D)
		}
	}
}

func TestWaysAtSixtyFourBits(t *testing.T) {
	// Every t except the two endpoints beats a zero record.
	r := Race{Time: 1<<64 - 1, Record: 0}
	assert.Equal(t, uint64(1<<64-2), r.Ways())

	// The best hold time covers 2^62, which cannot beat 2^63.
	r = Race{Time: 1 << 32, Record: 1 << 63}
	assert.Equal(t, uint64(0), r.Ways())
}

func TestMismatchedColumns(t *testing.T) {
	_, err := PartOne("Time: 1 2\nDistance: 3\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
