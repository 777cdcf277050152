// Package day14 tilts the reflector dish platform and measures the load on
// its north support beams.
package day14

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Cells of the platform.
const (
	Round byte = 'O'
	Cube  byte = '#'
	Empty byte = '.'
)

// Spins is the number of spin cycles PartTwo runs.
const Spins = 1_000_000_000

// SpinOrder is the tilt sequence of one spin cycle.
var SpinOrder = [4]grid.Direction{grid.North, grid.West, grid.South, grid.East}

// Platform is a rectangular field of rocks. Cubes never move.
type Platform struct {
	g *grid.Grid[byte]
}

// Parse reads the platform.
func Parse(input string) (*Platform, error) {
	g, err := grid.Bytes(input, "O#.")
	if err != nil {
		return nil, err
	}
	return &Platform{g: g}, nil
}

// Clone returns an independent copy.
func (p *Platform) Clone() *Platform {
	return &Platform{g: p.g.Clone()}
}

// Snapshot returns the board as a compact string usable as a map key.
func (p *Platform) Snapshot() string {
	return string(p.g.Cells())
}

// String renders the board one row per line.
func (p *Platform) String() string {
	var b strings.Builder
	cells := p.g.Cells()
	for r := 0; r < p.g.Rows(); r++ {
		b.Write(cells[r*p.g.Cols() : (r+1)*p.g.Cols()])
		b.WriteByte('\n')
	}
	return b.String()
}

// scan returns the number of scan lines for a tilt toward d, their length,
// and the cell at step k of line l counted from the pinning edge.
func (p *Platform) scan(d grid.Direction) (lines, length int, at func(l, k int) grid.Pos) {
	rows, cols := p.g.Rows(), p.g.Cols()
	switch d {
	case grid.North:
		return cols, rows, func(l, k int) grid.Pos { return grid.Pos{Row: k, Col: l} }
	case grid.South:
		return cols, rows, func(l, k int) grid.Pos { return grid.Pos{Row: rows - 1 - k, Col: l} }
	case grid.West:
		return rows, cols, func(l, k int) grid.Pos { return grid.Pos{Row: l, Col: k} }
	default:
		return rows, cols, func(l, k int) grid.Pos { return grid.Pos{Row: l, Col: cols - 1 - k} }
	}
}

// Tilt slides every round rock toward d. Along each scan line the segments
// between cube rocks are packed: their round rocks are counted and rewritten
// contiguously against the segment's pinning edge.
func (p *Platform) Tilt(d grid.Direction) {
	lines, length, at := p.scan(d)
	for l := 0; l < lines; l++ {
		start, rounds := 0, 0
		for k := 0; k <= length; k++ {
			if k < length {
				switch p.g.At(at(l, k)) {
				case Round:
					rounds++
					continue
				case Empty:
					continue
				}
			}
			// Cube or end of line closes the segment [start, k).
			for i := start; i < k; i++ {
				if i-start < rounds {
					p.g.Set(at(l, i), Round)
				} else {
					p.g.Set(at(l, i), Empty)
				}
			}
			start, rounds = k+1, 0
		}
	}
}

// Spin runs one cycle: tilt north, west, south, then east.
func (p *Platform) Spin() {
	for _, d := range SpinOrder {
		p.Tilt(d)
	}
}

// Load sums, over round rocks, the number of rows from the rock to the
// south edge inclusive.
func (p *Platform) Load() int {
	return loadOf(p.g.Cells(), p.g.Rows(), p.g.Cols())
}

func loadOf(cells []byte, rows, cols int) int {
	total := 0
	for i, c := range cells {
		if c == Round {
			total += rows - i/cols
		}
	}
	return total
}

// Cycle describes the repeating tail of a spin sequence: the board after
// Start spins equals the board after Start+Period spins.
type Cycle struct {
	Start, Period int
	history       []string
}

// FindCycle spins a copy of p until a board repeats, giving up after limit
// spins. Boards are compared by snapshot through a map from state to the
// first spin count it was seen at.
func (p *Platform) FindCycle(limit int) (Cycle, error) {
	q := p.Clone()
	history := []string{q.Snapshot()}
	seen := map[string]int{history[0]: 0}
	for i := 1; i <= limit; i++ {
		q.Spin()
		snap := q.Snapshot()
		if s, ok := seen[snap]; ok {
			return Cycle{Start: s, Period: i - s, history: history}, nil
		}
		seen[snap] = i
		history = append(history, snap)
	}
	return Cycle{}, fmt.Errorf("%w: no repeated board within %d spins", types.ErrLogicViolation, limit)
}

// At returns the snapshot after n spins.
func (c Cycle) At(n int) string {
	if n < c.Start {
		return c.history[n]
	}
	return c.history[c.Start+(n-c.Start)%c.Period]
}

// cycleLimit bounds FindCycle. Every board repeats within the number of
// distinct rock layouts, but real inputs settle within a few hundred spins.
const cycleLimit = 100_000

// PartOne tilts north once and returns the load.
func PartOne(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	p.Tilt(grid.North)
	return p.Load(), nil
}

// PartTwo returns the load after Spins spin cycles.
func PartTwo(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	c, err := p.FindCycle(min(cycleLimit, Spins))
	if err != nil {
		return 0, err
	}
	return loadOf([]byte(c.At(Spins)), p.g.Rows(), p.g.Cols()), nil
}
