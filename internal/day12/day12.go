// Package day12 counts the spring arrangements consistent with each row's
// damaged-group record.
package day12

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/advent/internal/numeric"
	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Condition is the state of one spring.
type Condition byte

const (
	Operational Condition = '.'
	Damaged     Condition = '#'
	Unknown     Condition = '?'
)

// Folds is how many copies of each row PartTwo unfolds.
const Folds = 5

// Row is one line of the condition record.
type Row struct {
	Conditions []Condition
	Groups     []int
}

// ParseRow reads a line such as "???.### 1,1,3".
func ParseRow(line string) (Row, error) {
	springs, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Row{}, fmt.Errorf("%w: missing group list in %q", types.ErrMalformedInput, line)
	}
	var r Row
	for i := 0; i < len(springs); i++ {
		switch c := Condition(springs[i]); c {
		case Operational, Damaged, Unknown:
			r.Conditions = append(r.Conditions, c)
		default:
			return Row{}, fmt.Errorf("%w: unexpected spring %q in %q", types.ErrMalformedInput, springs[i], line)
		}
	}
	g, err := parse.CommaInts(groups)
	if err != nil {
		return Row{}, err
	}
	for _, n := range g {
		if n <= 0 {
			return Row{}, fmt.Errorf("%w: group sizes must be positive, got %d", types.ErrMalformedInput, n)
		}
	}
	r.Groups = g
	return r, nil
}

// ParseRows reads every line of the record.
func ParseRows(input string) ([]Row, error) {
	var rows []Row
	for i, line := range parse.Lines(input) {
		r, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// Unfold returns n copies of the row: conditions joined by single Unknowns
// and the group list repeated.
func (r Row) Unfold(n int) Row {
	if n <= 1 {
		return r
	}
	out := Row{
		Conditions: make([]Condition, 0, n*len(r.Conditions)+n-1),
		Groups:     make([]int, 0, n*len(r.Groups)),
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			out.Conditions = append(out.Conditions, Unknown)
		}
		out.Conditions = append(out.Conditions, r.Conditions...)
		out.Groups = append(out.Groups, r.Groups...)
	}
	return out
}

// Arrangements counts the assignments of Unknown springs whose damaged runs
// equal Groups exactly.
func (r Row) Arrangements() int {
	maxGroup := 0
	for _, g := range r.Groups {
		maxGroup = max(maxGroup, g)
	}
	c := &counter{
		row:   r,
		runs:  maxGroup + 1,
		gsize: len(r.Groups) + 1,
	}
	c.memo = make([]int, (len(r.Conditions)+1)*c.gsize*c.runs)
	for i := range c.memo {
		c.memo[i] = -1
	}
	return c.count(0, 0, 0)
}

// counter memoises count on (position, group index, length of the damaged
// run in progress).
type counter struct {
	row         Row
	runs, gsize int
	memo        []int
}

func (c *counter) count(pos, g, run int) int {
	key := (pos*c.gsize+g)*c.runs + run
	if v := c.memo[key]; v >= 0 {
		return v
	}
	var n int
	if pos == len(c.row.Conditions) {
		n = c.accept(g, run)
	} else {
		switch c.row.Conditions[pos] {
		case Operational:
			n = c.operational(pos, g, run)
		case Damaged:
			n = c.damaged(pos, g, run)
		case Unknown:
			n = c.operational(pos, g, run) + c.damaged(pos, g, run)
		}
	}
	c.memo[key] = n
	return n
}

func (c *counter) accept(g, run int) int {
	groups := c.row.Groups
	if (g == len(groups) && run == 0) || (g == len(groups)-1 && run == groups[g]) {
		return 1
	}
	return 0
}

// operational ends the run in progress, which must be empty or exactly
// complete the current group.
func (c *counter) operational(pos, g, run int) int {
	if run == 0 {
		return c.count(pos+1, g, 0)
	}
	if g < len(c.row.Groups) && run == c.row.Groups[g] {
		return c.count(pos+1, g+1, 0)
	}
	return 0
}

// damaged extends the run in progress, which must not outgrow its group.
func (c *counter) damaged(pos, g, run int) int {
	if g >= len(c.row.Groups) || run+1 > c.row.Groups[g] {
		return 0
	}
	return c.count(pos+1, g, run+1)
}

// Sum counts arrangements for every row, each unfolded folds times, and adds
// them. Rows are independent and are spread over at most workers goroutines;
// workers <= 0 means GOMAXPROCS.
func Sum(ctx context.Context, rows []Row, folds, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	counts := make([]int, len(rows))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, r := range rows {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			counts[i] = r.Unfold(folds).Arrangements()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return numeric.Sum(counts), nil
}

// Solve parses input and sums arrangements with the given fold count.
func Solve(ctx context.Context, input string, folds, workers int) (int, error) {
	rows, err := ParseRows(input)
	if err != nil {
		return 0, err
	}
	return Sum(ctx, rows, folds, workers)
}

// PartOne sums arrangements for the rows as written.
func PartOne(input string) (int, error) {
	return Solve(context.Background(), input, 1, 1)
}

// PartTwo sums arrangements for the rows unfolded five times.
func PartTwo(input string) (int, error) {
	return Solve(context.Background(), input, Folds, 0)
}
