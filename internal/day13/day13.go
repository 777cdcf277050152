// Package day13 finds the lines of reflection in mirror-valley patterns.
package day13

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Pattern is one block of '.' and '#'.
type Pattern struct {
	rows []string
}

// ParsePatterns splits input on blank lines, accepting LF or CRLF endings.
func ParsePatterns(input string) ([]Pattern, error) {
	var out []Pattern
	for i, block := range parse.Blocks(input) {
		for _, line := range block {
			if len(line) != len(block[0]) {
				return nil, fmt.Errorf("%w: pattern %d is not rectangular", types.ErrMalformedInput, i+1)
			}
			for j := 0; j < len(line); j++ {
				if line[j] != '.' && line[j] != '#' {
					return nil, fmt.Errorf("%w: pattern %d: unexpected %q", types.ErrMalformedInput, i+1, line[j])
				}
			}
		}
		out = append(out, Pattern{rows: block})
	}
	return out, nil
}

func (p Pattern) height() int { return len(p.rows) }
func (p Pattern) width() int  { return len(p.rows[0]) }

// rowMismatches counts differing cells across every mirrored row pair for a
// horizontal line above row r.
func (p Pattern) rowMismatches(r int) int {
	n := 0
	for i := max(0, 2*r-p.height()); i < r; i++ {
		a, b := p.rows[i], p.rows[2*r-1-i]
		for c := 0; c < p.width(); c++ {
			if a[c] != b[c] {
				n++
			}
		}
	}
	return n
}

// colMismatches is rowMismatches for a vertical line left of column c.
func (p Pattern) colMismatches(c int) int {
	n := 0
	for j := max(0, 2*c-p.width()); j < c; j++ {
		k := 2*c - 1 - j
		for _, row := range p.rows {
			if row[j] != row[k] {
				n++
			}
		}
	}
	return n
}

// Summary returns 100 times the rows above a horizontal reflection, or the
// columns left of a vertical one, where the reflection has exactly smudges
// mismatched cells. Horizontal lines are tried first.
func (p Pattern) Summary(smudges int) (int, error) {
	for r := 1; r < p.height(); r++ {
		if p.rowMismatches(r) == smudges {
			return 100 * r, nil
		}
	}
	for c := 1; c < p.width(); c++ {
		if p.colMismatches(c) == smudges {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: no reflection with %d smudges", types.ErrMalformedInput, smudges)
}

func total(input string, smudges int) (int, error) {
	patterns, err := ParsePatterns(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, p := range patterns {
		v, err := p.Summary(smudges)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// PartOne summarises the perfect reflections.
func PartOne(input string) (int, error) {
	return total(input, 0)
}

// PartTwo summarises the reflections that need exactly one smudge fixed.
func PartTwo(input string) (int, error) {
	return total(input, 1)
}
