// Package day06 counts the ways to win boat races.
package day06

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Race is a time limit and the record distance to beat.
type Race struct {
	Time, Record uint64
}

// Ways counts hold times t in [0, Time] with t*(Time-t) > Record.
//
// The distance is symmetric about Time/2 and increasing below it, so the
// smallest winning t is found by binary search and the count follows. The
// product is taken at 128 bits so any 64-bit Time is exact.
func (r Race) Ways() uint64 {
	half := r.Time / 2
	if !r.beats(half) {
		return 0
	}
	lo, hi := uint64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if r.beats(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return r.Time - 2*lo + 1
}

func (r Race) beats(t uint64) bool {
	hi, lo := bits.Mul64(t, r.Time-t)
	return hi > 0 || lo > r.Record
}

// ParseRaces reads the "Time:" and "Distance:" lines as separate races.
func ParseRaces(input string) ([]Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return nil, err
	}
	t, err := parse.Uint64s(times)
	if err != nil {
		return nil, err
	}
	d, err := parse.Uint64s(dists)
	if err != nil {
		return nil, err
	}
	if len(t) != len(d) {
		return nil, fmt.Errorf("%w: %d times but %d distances", types.ErrMalformedInput, len(t), len(d))
	}
	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Record: d[i]}
	}
	return races, nil
}

// ParseSingleRace reads both lines as one race, ignoring the spaces between
// digits.
func ParseSingleRace(input string) (Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return Race{}, err
	}
	v, err := parse.Uint64s(strings.Join(strings.Fields(times), "") + " " + strings.Join(strings.Fields(dists), ""))
	if err != nil {
		return Race{}, err
	}
	if len(v) != 2 {
		return Race{}, fmt.Errorf("%w: missing time or distance", types.ErrMalformedInput)
	}
	return Race{Time: v[0], Record: v[1]}, nil
}

func fields(input string) (times, dists string, err error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want 2 lines, got %d", types.ErrMalformedInput, len(lines))
	}
	label, times, err := parse.CutLabel(lines[0], ":")
	if err != nil {
		return "", "", err
	}
	if label != "Time" {
		return "", "", fmt.Errorf("%w: expected Time line, got %q", types.ErrMalformedInput, label)
	}
	label, dists, err = parse.CutLabel(lines[1], ":")
	if err != nil {
		return "", "", err
	}
	if label != "Distance" {
		return "", "", fmt.Errorf("%w: expected Distance line, got %q", types.ErrMalformedInput, label)
	}
	return times, dists, nil
}

// PartOne multiplies the number of ways to win each race.
func PartOne(input string) (uint64, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	product := uint64(1)
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

// PartTwo counts the ways to win the single long race.
func PartTwo(input string) (uint64, error) {
	r, err := ParseSingleRace(input)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
