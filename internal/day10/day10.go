// Package day10 traces the pipe loop through S and counts the tiles it
// encloses.
package day10

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Tile is a pipe shape, stored as the set of directions it connects.
type Tile uint8

const (
	Empty Tile = 0
	NS         = Tile(1<<grid.North | 1<<grid.South)
	EW         = Tile(1<<grid.East | 1<<grid.West)
	NE         = Tile(1<<grid.North | 1<<grid.East)
	NW         = Tile(1<<grid.North | 1<<grid.West)
	ES         = Tile(1<<grid.East | 1<<grid.South)
	SW         = Tile(1<<grid.South | 1<<grid.West)
	Start      = Tile(1 << 7)
)

// Connects reports whether t has an opening toward d.
func (t Tile) Connects(d grid.Direction) bool {
	return t != Start && t&Tile(d.Bit()) != 0
}

// Exit returns the opening of t other than in. t must connect in.
func (t Tile) Exit(in grid.Direction) grid.Direction {
	for _, d := range grid.Cardinals {
		if d != in && t.Connects(d) {
			return d
		}
	}
	return in
}

func parseTile(b byte) (Tile, error) {
	switch b {
	case '|':
		return NS, nil
	case '-':
		return EW, nil
	case 'L':
		return NE, nil
	case 'J':
		return NW, nil
	case '7':
		return SW, nil
	case 'F':
		return ES, nil
	case '.':
		return Empty, nil
	case 'S':
		return Start, nil
	}
	return Empty, fmt.Errorf("%w: unexpected pipe %q", types.ErrMalformedInput, b)
}

// Loop is the closed path through S.
type Loop struct {
	Start grid.Pos
	// Path lists the loop's cells in walking order, beginning with Start.
	Path []grid.Pos
	// Corners are the polygon vertices in walking order: every tile where
	// the walk turns, including Start when its inferred shape is a bend.
	Corners []grid.Pos
	// StartTile is the pipe shape hidden under S.
	StartTile Tile
}

// FindLoop parses the grid and walks the loop. Candidate exits from S are
// tried in N, E, S, W order; the first that closes back on S is used.
func FindLoop(input string) (*Loop, *grid.Grid[Tile], error) {
	g, err := grid.Parse(input, parseTile)
	if err != nil {
		return nil, nil, err
	}
	start, ok := g.Find(func(t Tile) bool { return t == Start })
	if !ok {
		return nil, nil, fmt.Errorf("%w: no start tile", types.ErrLogicViolation)
	}
	for _, d := range grid.Cardinals {
		next, ok := g.AtOk(start.Step(d))
		if !ok || !next.Connects(d.Opposite()) {
			continue
		}
		if loop, ok := walk(g, start, d); ok {
			return loop, g, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: no closed loop through start %s", types.ErrLogicViolation, start)
}

// walk follows pipes from start leaving in direction first. It reports false
// if the path leaves the grid or runs into a pipe that does not connect back.
func walk(g *grid.Grid[Tile], start grid.Pos, first grid.Direction) (*Loop, bool) {
	loop := &Loop{Start: start, Path: []grid.Pos{start}}
	pos, heading := start.Step(first), first
	for pos != start {
		t, ok := g.AtOk(pos)
		if !ok || !t.Connects(heading.Opposite()) {
			return nil, false
		}
		exit := t.Exit(heading.Opposite())
		if exit != heading {
			loop.Corners = append(loop.Corners, pos)
		}
		loop.Path = append(loop.Path, pos)
		pos, heading = pos.Step(exit), exit
	}
	// heading is now the direction the walk re-entered S with.
	loop.StartTile = Tile(first.Bit() | heading.Opposite().Bit())
	if first != heading {
		loop.Corners = append([]grid.Pos{start}, loop.Corners...)
	}
	return loop, true
}

// Contains reports whether p is strictly inside the loop polygon, using
// W. R. Franklin's PNPOLY crossing test. Loop edges are axis-aligned, so the
// integer intersection is exact. Points on the loop itself are not
// meaningful here; callers exclude them.
func (l *Loop) Contains(p grid.Pos) bool {
	inside := false
	v := l.Corners
	for i, j := 0, len(v)-1; i < len(v); j, i = i, i+1 {
		if (v[i].Col > p.Col) != (v[j].Col > p.Col) &&
			p.Row < (v[j].Row-v[i].Row)*(p.Col-v[i].Col)/(v[j].Col-v[i].Col)+v[i].Row {
			inside = !inside
		}
	}
	return inside
}

// Interior returns every non-loop cell inside the loop.
func (l *Loop) Interior(rows, cols int) []grid.Pos {
	onLoop := make(map[grid.Pos]bool, len(l.Path))
	for _, p := range l.Path {
		onLoop[p] = true
	}
	var out []grid.Pos
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := grid.Pos{Row: r, Col: c}
			if !onLoop[p] && l.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// PartOne returns the distance to the point of the loop farthest from S.
func PartOne(input string) (int, error) {
	loop, _, err := FindLoop(input)
	if err != nil {
		return 0, err
	}
	return len(loop.Path) / 2, nil
}

// PartTwo counts the tiles enclosed by the loop.
func PartTwo(input string) (int, error) {
	loop, g, err := FindLoop(input)
	if err != nil {
		return 0, err
	}
	return len(loop.Interior(g.Rows(), g.Cols())), nil
}
