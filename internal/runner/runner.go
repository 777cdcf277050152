// Package runner executes both parts of a solver, timing them and logging
// the outcome under a per-run id.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// Runner runs solvers. The zero value is not usable; call New.
type Runner struct {
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

// New returns a Runner that logs to logger. A nil logger discards logs.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger: logger,
		newID:  generateRunID,
		now:    time.Now,
	}
}

// generateRunID returns a UUID v7, falling back to v4.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Run computes part one then part two of s on input. Both parts see the
// same input text. The first error stops the run and is returned wrapped
// with the failing part.
func (r *Runner) Run(ctx context.Context, s types.Solver, input string) (types.Result, error) {
	res := types.Result{RunID: r.newID(), Day: s.Day()}
	log := r.logger.With(zap.String("run_id", res.RunID), zap.Int("day", res.Day))

	log.Debug("solve started", zap.Int("input_bytes", len(input)))
	start := r.now()

	one, err := r.part(ctx, log, res.Day, "one", s.PartOne, input)
	if err != nil {
		return res, err
	}
	res.PartOne = one

	two, err := r.part(ctx, log, res.Day, "two", s.PartTwo, input)
	if err != nil {
		return res, err
	}
	res.PartTwo = two

	res.Elapsed = r.now().Sub(start)
	log.Info("solve finished", zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (r *Runner) part(
	ctx context.Context,
	log *zap.Logger,
	day int,
	name string,
	fn func(context.Context, string) (types.Answer, error),
	input string,
) (types.Answer, error) {
	start := r.now()
	a, err := fn(ctx, input)
	elapsed := r.now().Sub(start)
	if err != nil {
		log.Error("part failed", zap.String("part", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return "", fmt.Errorf("day %d part %s: %w", day, name, err)
	}
	log.Debug("part solved", zap.String("part", name), zap.Duration("elapsed", elapsed))
	return a, nil
}
