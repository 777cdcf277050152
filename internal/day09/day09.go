// Package day09 extrapolates sensor histories by repeated differencing.
package day09

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Extrapolate returns the values just before and just after seq.
//
// The next value is the sum of the last element of every difference level;
// the previous value is the alternating sum of the first elements.
func Extrapolate(seq []int) (prev, next int) {
	level := append([]int(nil), seq...)
	sign := 1
	for len(level) > 0 && !allZero(level) {
		next += level[len(level)-1]
		prev += sign * level[0]
		sign = -sign
		for i := 0; i+1 < len(level); i++ {
			level[i] = level[i+1] - level[i]
		}
		level = level[:len(level)-1]
	}
	return prev, next
}

func allZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

func histories(input string) ([][]int, error) {
	var out [][]int
	for i, line := range parse.Lines(input) {
		seq, err := parse.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(seq) == 0 {
			return nil, fmt.Errorf("line %d: %w: empty history", i+1, types.ErrMalformedInput)
		}
		out = append(out, seq)
	}
	return out, nil
}

// PartOne sums the next value of every history.
func PartOne(input string) (int, error) {
	hs, err := histories(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, h := range hs {
		_, next := Extrapolate(h)
		total += next
	}
	return total, nil
}

// PartTwo sums the previous value of every history.
func PartTwo(input string) (int, error) {
	hs, err := histories(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, h := range hs {
		prev, _ := Extrapolate(h)
		total += prev
	}
	return total, nil
}
