// Package solvers adapts the per-day packages to types.Solver and keeps
// them in a registry keyed by day.
package solvers

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/mesh-intelligence/advent/internal/day01"
	"github.com/mesh-intelligence/advent/internal/day02"
	"github.com/mesh-intelligence/advent/internal/day03"
	"github.com/mesh-intelligence/advent/internal/day04"
	"github.com/mesh-intelligence/advent/internal/day05"
	"github.com/mesh-intelligence/advent/internal/day06"
	"github.com/mesh-intelligence/advent/internal/day07"
	"github.com/mesh-intelligence/advent/internal/day08"
	"github.com/mesh-intelligence/advent/internal/day09"
	"github.com/mesh-intelligence/advent/internal/day10"
	"github.com/mesh-intelligence/advent/internal/day11"
	"github.com/mesh-intelligence/advent/internal/day12"
	"github.com/mesh-intelligence/advent/internal/day13"
	"github.com/mesh-intelligence/advent/internal/day14"
	"github.com/mesh-intelligence/advent/internal/day15"
	"github.com/mesh-intelligence/advent/internal/day16"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Part computes one answer.
type Part func(ctx context.Context, input string) (types.Answer, error)

// Integer lifts a context-free integer kernel into a Part.
func Integer[T constraints.Integer](f func(string) (T, error)) Part {
	return func(ctx context.Context, input string) (types.Answer, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := f(input)
		if err != nil {
			return "", err
		}
		return types.IntAnswer(v), nil
	}
}

// Big lifts a context-free arbitrary-precision kernel into a Part.
func Big(f func(string) (*big.Int, error)) Part {
	return func(ctx context.Context, input string) (types.Answer, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := f(input)
		if err != nil {
			return "", err
		}
		return types.BigAnswer(v), nil
	}
}

// daySolver implements types.Solver over two Parts.
type daySolver struct {
	day      int
	one, two Part
}

func (s daySolver) Day() int { return s.day }

func (s daySolver) PartOne(ctx context.Context, input string) (types.Answer, error) {
	return s.one(ctx, input)
}

func (s daySolver) PartTwo(ctx context.Context, input string) (types.Answer, error) {
	return s.two(ctx, input)
}

// NewSolver builds a types.Solver from two Parts.
func NewSolver(day int, one, two Part) types.Solver {
	return daySolver{day: day, one: one, two: two}
}

// Registry maps days to solvers.
type Registry struct {
	days map[int]types.Solver
}

// New returns a registry holding every implemented day. cfg.Workers bounds
// the day 12 fan-out; zero means GOMAXPROCS.
func New(cfg types.Config) *Registry {
	r := &Registry{days: make(map[int]types.Solver)}

	r.Register(NewSolver(1, Integer(day01.PartOne), Integer(day01.PartTwo)))
	r.Register(NewSolver(2, Integer(day02.PartOne), Integer(day02.PartTwo)))
	r.Register(NewSolver(3, Integer(day03.PartOne), Integer(day03.PartTwo)))
	r.Register(NewSolver(4, Integer(day04.PartOne), Integer(day04.PartTwo)))
	r.Register(NewSolver(5, Integer(day05.PartOne), Integer(day05.PartTwo)))
	r.Register(NewSolver(6, Integer(day06.PartOne), Integer(day06.PartTwo)))
	r.Register(NewSolver(7, Integer(day07.PartOne), Integer(day07.PartTwo)))
	r.Register(NewSolver(8, Integer(day08.PartOne), Integer(day08.PartTwo)))
	r.Register(NewSolver(9, Integer(day09.PartOne), Integer(day09.PartTwo)))
	r.Register(NewSolver(10, Integer(day10.PartOne), Integer(day10.PartTwo)))
	r.Register(NewSolver(11, Integer(day11.PartOne), Big(day11.PartTwo)))
	r.Register(NewSolver(12, springs(1, cfg.Workers), springs(day12.Folds, cfg.Workers)))
	r.Register(NewSolver(13, Integer(day13.PartOne), Integer(day13.PartTwo)))
	r.Register(NewSolver(14, Integer(day14.PartOne), Integer(day14.PartTwo)))
	r.Register(NewSolver(15, Integer(day15.PartOne), Integer(day15.PartTwo)))
	r.Register(NewSolver(16, Integer(day16.PartOne), Integer(day16.PartTwo)))

	return r
}

// springs runs day 12 through its context-aware parallel path.
func springs(folds, workers int) Part {
	return func(ctx context.Context, input string) (types.Answer, error) {
		n, err := day12.Solve(ctx, input, folds, workers)
		if err != nil {
			return "", err
		}
		return types.IntAnswer(n), nil
	}
}

// Register adds s, replacing any solver already held for its day.
func (r *Registry) Register(s types.Solver) {
	r.days[s.Day()] = s
}

// Get returns the solver for day or an error wrapping types.ErrUnknownDay.
func (r *Registry) Get(day int) (types.Solver, error) {
	s, ok := r.days[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.days))
	for d := range r.days {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
