// Package day16 traces light beams through a contraption of mirrors and
// splitters.
package day16

import (
	"github.com/mesh-intelligence/advent/internal/grid"
)

// Contraption cells.
const (
	Space     byte = '.'
	SplitterV byte = '|'
	SplitterH byte = '-'
	MirrorF   byte = '/'
	MirrorB   byte = '\\'
)

// Contraption is the parsed layout.
type Contraption struct {
	g *grid.Grid[byte]
}

// Parse reads the layout.
func Parse(input string) (*Contraption, error) {
	g, err := grid.Bytes(input, `.|-/\`)
	if err != nil {
		return nil, err
	}
	return &Contraption{g: g}, nil
}

// next returns the headings a beam leaves a cell with after entering it
// moving d. Splitters hit side-on produce two beams.
func next(cell byte, d grid.Direction) []grid.Direction {
	switch cell {
	case SplitterH:
		if d == grid.North || d == grid.South {
			return []grid.Direction{grid.East, grid.West}
		}
	case SplitterV:
		if d == grid.East || d == grid.West {
			return []grid.Direction{grid.North, grid.South}
		}
	case MirrorF:
		switch d {
		case grid.North:
			return []grid.Direction{grid.East}
		case grid.East:
			return []grid.Direction{grid.North}
		case grid.South:
			return []grid.Direction{grid.West}
		case grid.West:
			return []grid.Direction{grid.South}
		}
	case MirrorB:
		switch d {
		case grid.North:
			return []grid.Direction{grid.West}
		case grid.West:
			return []grid.Direction{grid.North}
		case grid.South:
			return []grid.Direction{grid.East}
		case grid.East:
			return []grid.Direction{grid.South}
		}
	}
	return []grid.Direction{d}
}

// Energize returns the number of cells visited by a beam entering the grid
// at start. The walk keeps an explicit stack of beams and a per-cell bitmask
// of headings already processed there; a beam arriving with a known heading
// is dropped, so the walk always terminates.
func (c *Contraption) Energize(start grid.Beam) int {
	seen := make([]uint8, len(c.g.Cells()))
	stack := []grid.Beam{start}
	energized := 0
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !c.g.In(b.Pos) {
			continue
		}
		i := c.g.Index(b.Pos)
		if seen[i]&b.Dir.Bit() != 0 {
			continue
		}
		if seen[i] == 0 {
			energized++
		}
		seen[i] |= b.Dir.Bit()
		for _, d := range next(c.g.At(b.Pos), b.Dir) {
			stack = append(stack, grid.Beam{Pos: b.Pos.Step(d), Dir: d})
		}
	}
	return energized
}

// PartOne energizes from the top-left corner heading east.
func PartOne(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return c.Energize(grid.Beam{Pos: grid.Pos{}, Dir: grid.East}), nil
}

// PartTwo returns the best energized count over every edge entry.
func PartTwo(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, b := range c.g.EdgeEntries() {
		best = max(best, c.Energize(b))
	}
	return best, nil
}
