// Package day03 reads part numbers and gear ratios off an engine schematic.
package day03

import (
	"github.com/mesh-intelligence/advent/internal/grid"
)

// Number is a maximal horizontal run of digits.
type Number struct {
	Value int
	Row   int
	Start int // first column
	End   int // one past the last column
}

// Schematic is a parsed engine schematic. owner maps each digit cell to the
// index of the Number covering it, or -1.
type Schematic struct {
	cells   *grid.Grid[byte]
	Numbers []Number
	owner   []int
}

// Parse reads the schematic grid and locates its numbers.
func Parse(input string) (*Schematic, error) {
	g, err := grid.Bytes(input, "")
	if err != nil {
		return nil, err
	}
	s := &Schematic{cells: g, owner: make([]int, g.Rows()*g.Cols())}
	for i := range s.owner {
		s.owner[i] = -1
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); {
			if !isDigit(g.At(grid.Pos{Row: r, Col: c})) {
				c++
				continue
			}
			n := Number{Row: r, Start: c}
			for ; c < g.Cols(); c++ {
				b := g.At(grid.Pos{Row: r, Col: c})
				if !isDigit(b) {
					break
				}
				n.Value = n.Value*10 + int(b-'0')
				s.owner[g.Index(grid.Pos{Row: r, Col: c})] = len(s.Numbers)
			}
			n.End = c
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s, nil
}

// PartOne sums every number adjacent to a symbol.
func PartOne(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range s.Numbers {
		if s.touchesSymbol(n) {
			total += n.Value
		}
	}
	return total, nil
}

// PartTwo sums the gear ratios: for every '*' adjacent to exactly two
// distinct numbers, the product of those numbers.
func PartTwo(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	s.cells.Each(func(p grid.Pos, b byte) {
		if b != '*' {
			return
		}
		adjacent := s.adjacentNumbers(p)
		if len(adjacent) == 2 {
			total += s.Numbers[adjacent[0]].Value * s.Numbers[adjacent[1]].Value
		}
	})
	return total, nil
}

func (s *Schematic) touchesSymbol(n Number) bool {
	for c := n.Start; c < n.End; c++ {
		for _, q := range s.cells.Neighbors8(grid.Pos{Row: n.Row, Col: c}) {
			if isSymbol(s.cells.At(q)) {
				return true
			}
		}
	}
	return false
}

// adjacentNumbers returns the distinct numbers touching p, counting a run
// once even when several of its cells touch.
func (s *Schematic) adjacentNumbers(p grid.Pos) []int {
	var out []int
	for _, q := range s.cells.Neighbors8(p) {
		idx := s.owner[s.cells.Index(q)]
		if idx < 0 {
			continue
		}
		seen := false
		for _, o := range out {
			if o == idx {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, idx)
		}
	}
	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }
