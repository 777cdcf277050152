// Package day11 sums galaxy distances in an expanding universe.
package day11

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Expansion values: each empty row or column gains this many extra copies.
const (
	PartOneExpansion = 1
	PartTwoExpansion = 999_999
)

// Galaxies returns the galaxy positions after every empty row and column
// has been widened by extra.
func Galaxies(input string, extra int64) ([][2]int64, error) {
	g, err := grid.Bytes(input, ".#")
	if err != nil {
		return nil, err
	}
	rowUsed := make([]bool, g.Rows())
	colUsed := make([]bool, g.Cols())
	var raw []grid.Pos
	g.Each(func(p grid.Pos, b byte) {
		if b == '#' {
			raw = append(raw, p)
			rowUsed[p.Row] = true
			colUsed[p.Col] = true
		}
	})
	rowShift := prefixEmpty(rowUsed, extra)
	colShift := prefixEmpty(colUsed, extra)

	out := make([][2]int64, len(raw))
	for i, p := range raw {
		out[i] = [2]int64{int64(p.Row) + rowShift[p.Row], int64(p.Col) + colShift[p.Col]}
	}
	return out, nil
}

// prefixEmpty returns, for each index, extra times the number of unused
// indices before it.
func prefixEmpty(used []bool, extra int64) []int64 {
	shift := make([]int64, len(used))
	var acc int64
	for i, u := range used {
		shift[i] = acc
		if !u {
			acc += extra
		}
	}
	return shift
}

// Distances returns the sum of Manhattan distances over every unordered pair
// of galaxies, with empty rows and columns widened by extra.
//
// Coordinates are sorted per axis so the pairwise sum is a single pass:
// the i-th smallest coordinate contributes x*(2i - n + 1).
func Distances(input string, extra int64) (*big.Int, error) {
	if extra < 0 {
		return nil, fmt.Errorf("%w: negative expansion %d", types.ErrMalformedInput, extra)
	}
	gal, err := Galaxies(input, extra)
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	for axis := 0; axis < 2; axis++ {
		coords := make([]int64, len(gal))
		for i, p := range gal {
			coords[i] = p[axis]
		}
		slices.Sort(coords)
		n := int64(len(coords))
		term := new(big.Int)
		for i, x := range coords {
			term.SetInt64(x)
			term.Mul(term, big.NewInt(2*int64(i)-n+1))
			total.Add(total, term)
		}
	}
	return total, nil
}

// PartOne sums distances with empty lines doubled.
func PartOne(input string) (int, error) {
	d, err := Distances(input, PartOneExpansion)
	if err != nil {
		return 0, err
	}
	if !d.IsInt64() {
		return 0, fmt.Errorf("%w: distance sum %s overflows", types.ErrLogicViolation, d)
	}
	return int(d.Int64()), nil
}

// PartTwo sums distances with empty lines a million times wider.
func PartTwo(input string) (*big.Int, error) {
	return Distances(input, PartTwoExpansion)
}
