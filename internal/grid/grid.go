// Package grid provides a row-major rectangular grid, positions on it, and the
// four cardinal directions.
package grid

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Pos is a (row, column) coordinate.
type Pos struct {
	Row int
	Col int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.Row + d.Row, p.Col + d.Col}
}

// Step returns the neighbour of p in direction d.
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Offset())
}

func (p Pos) String() string {
	return fmt.Sprintf("(r%d, c%d)", p.Row, p.Col)
}

// Grid is a rectangular row-major array of cells. All rows have equal length.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New returns a rows×cols grid of zero cells.
func New[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// Parse builds a grid from text, converting each byte with cell. Ragged rows
// or a conversion failure return an error wrapping types.ErrMalformedInput.
func Parse[T any](input string, cell func(b byte) (T, error)) (*Grid[T], error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty grid", types.ErrMalformedInput)
	}
	g := New[T](len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", types.ErrMalformedInput, r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			v, err := cell(line[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			g.cells[r*g.cols+c] = v
		}
	}
	return g, nil
}

// Bytes builds a grid of raw bytes, accepting only bytes in allowed. An empty
// allowed set accepts everything.
func Bytes(input, allowed string) (*Grid[byte], error) {
	var ok [256]bool
	for i := 0; i < len(allowed); i++ {
		ok[allowed[i]] = true
	}
	return Parse(input, func(b byte) (byte, error) {
		if allowed != "" && !ok[b] {
			return 0, fmt.Errorf("%w: unexpected %q", types.ErrMalformedInput, b)
		}
		return b, nil
	})
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// In reports whether p lies inside the grid.
func (g *Grid[T]) In(p Pos) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.rows && p.Col < g.cols
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid[T]) At(p Pos) T {
	return g.cells[p.Row*g.cols+p.Col]
}

// AtOk returns the cell at p and whether p is inside the grid.
func (g *Grid[T]) AtOk(p Pos) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.At(p), true
}

// Set stores v at p. p must be inside the grid.
func (g *Grid[T]) Set(p Pos, v T) {
	g.cells[p.Row*g.cols+p.Col] = v
}

// Index returns the flat row-major index of p.
func (g *Grid[T]) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// Cells exposes the row-major backing slice. Writes are visible in the grid.
func (g *Grid[T]) Cells() []T { return g.cells }

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{rows: g.rows, cols: g.cols, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Find returns the first position, in row-major order, whose cell satisfies
// match.
func (g *Grid[T]) Find(match func(T) bool) (Pos, bool) {
	for i, v := range g.cells {
		if match(v) {
			return Pos{i / g.cols, i % g.cols}, true
		}
	}
	return Pos{}, false
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Pos, v T)) {
	for i, v := range g.cells {
		fn(Pos{i / g.cols, i % g.cols}, v)
	}
}

// Neighbors8 returns the in-grid Moore neighbourhood of p.
func (g *Grid[T]) Neighbors8(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q := Pos{p.Row + dr, p.Col + dc}
			if g.In(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

// EdgeEntries returns every border cell paired with the direction that
// points into the grid from it. Corner cells appear once per side.
func (g *Grid[T]) EdgeEntries() []Beam {
	var out []Beam
	for c := 0; c < g.cols; c++ {
		out = append(out,
			Beam{Pos: Pos{0, c}, Dir: South},
			Beam{Pos: Pos{g.rows - 1, c}, Dir: North})
	}
	for r := 0; r < g.rows; r++ {
		out = append(out,
			Beam{Pos: Pos{r, 0}, Dir: East},
			Beam{Pos: Pos{r, g.cols - 1}, Dir: West})
	}
	return out
}

// Beam is a position paired with a heading.
type Beam struct {
	Pos Pos
	Dir Direction
}
