// Package day05 follows seeds through the almanac's chain of range mappers.
package day05

import (
	"fmt"
	"math"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Range translates [Src, Src+Len) to [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len uint64
}

// Mapper is an ordered list of disjoint ranges. Values outside every range
// pass through unchanged.
type Mapper struct {
	Name   string
	Ranges []Range
}

// Interval is the half-open span [Lo, Hi).
type Interval struct {
	Lo, Hi uint64
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds   []uint64
	Mappers []Mapper
}

// Map translates v with the first range containing it.
func (m Mapper) Map(v uint64) uint64 {
	for _, r := range m.Ranges {
		if v >= r.Src && v-r.Src < r.Len {
			return r.Dst + (v - r.Src)
		}
	}
	return v
}

// MapIntervals translates a set of intervals, splitting each at range
// boundaries. The result covers exactly the images of the inputs.
func (m Mapper) MapIntervals(in []Interval) []Interval {
	var out []Interval
	pending := in
	for _, r := range m.Ranges {
		srcHi := r.Src + r.Len
		var rest []Interval
		for _, iv := range pending {
			lo, hi := max(iv.Lo, r.Src), min(iv.Hi, srcHi)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			out = append(out, Interval{r.Dst + (lo - r.Src), r.Dst + (hi - r.Src)})
			if iv.Lo < lo {
				rest = append(rest, Interval{iv.Lo, lo})
			}
			if hi < iv.Hi {
				rest = append(rest, Interval{hi, iv.Hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Location runs v through every mapper.
func (a *Almanac) Location(v uint64) uint64 {
	for _, m := range a.Mappers {
		v = m.Map(v)
	}
	return v
}

// Locations runs a set of intervals through every mapper.
func (a *Almanac) Locations(in []Interval) []Interval {
	for _, m := range a.Mappers {
		in = m.MapIntervals(in)
	}
	return in
}

// Parse reads the seeds line and the mapper blocks.
func Parse(input string) (*Almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty almanac", types.ErrMalformedInput)
	}
	label, rest, err := parse.CutLabel(blocks[0][0], ":")
	if err != nil {
		return nil, err
	}
	if label != "seeds" {
		return nil, fmt.Errorf("%w: expected seeds line, got %q", types.ErrMalformedInput, label)
	}
	a := &Almanac{}
	if a.Seeds, err = parse.Uint64s(rest); err != nil {
		return nil, err
	}
	for _, block := range blocks[1:] {
		name, ok := strings.CutSuffix(block[0], " map:")
		if !ok {
			return nil, fmt.Errorf("%w: expected map header, got %q", types.ErrMalformedInput, block[0])
		}
		m := Mapper{Name: name}
		for _, line := range block[1:] {
			nums, err := parse.Uint64s(line)
			if err != nil {
				return nil, err
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("%w: %s: range needs 3 values, got %q", types.ErrMalformedInput, name, line)
			}
			if nums[2] > math.MaxUint64-max(nums[0], nums[1]) {
				return nil, fmt.Errorf("%w: %s: range %q runs past 64 bits", types.ErrMalformedInput, name, line)
			}
			m.Ranges = append(m.Ranges, Range{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
		a.Mappers = append(a.Mappers, m)
	}
	return a, nil
}

// PartOne returns the lowest location of any listed seed.
func PartOne(input string) (uint64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", types.ErrMalformedInput)
	}
	lowest := uint64(math.MaxUint64)
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Location(s))
	}
	return lowest, nil
}

// PartTwo reads the seeds as (start, length) pairs and returns the lowest
// location over every seed in those ranges.
func PartTwo(input string) (uint64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: seeds must come in (start, length) pairs", types.ErrMalformedInput)
	}
	var seeds []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if length > math.MaxUint64-start {
			return 0, fmt.Errorf("%w: seed range %d+%d runs past 64 bits", types.ErrMalformedInput, start, length)
		}
		if length > 0 {
			seeds = append(seeds, Interval{start, start + length})
		}
	}
	locations := a.Locations(seeds)
	if len(locations) == 0 {
		return 0, fmt.Errorf("%w: every seed range is empty", types.ErrMalformedInput)
	}
	lowest := uint64(math.MaxUint64)
	for _, iv := range locations {
		lowest = min(lowest, iv.Lo)
	}
	return lowest, nil
}
