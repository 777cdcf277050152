package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/advent/internal/solvers"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func fixed(a types.Answer, err error) solvers.Part {
	return func(context.Context, string) (types.Answer, error) { return a, err }
}

// newTestRunner returns a Runner with a fixed id and a clock that advances
// one millisecond per reading.
func newTestRunner(t *testing.T) (*Runner, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r := New(zap.New(core))
	r.newID = func() string { return "run-1" }
	clock := time.Unix(0, 0)
	r.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return r, logs
}

func TestRun(t *testing.T) {
	r, logs := newTestRunner(t)

	res, err := r.Run(context.Background(), solvers.NewSolver(4, fixed("13", nil), fixed("30", nil)), "input")
	require.NoError(t, err)

	assert.Equal(t, types.Result{
		RunID:   "run-1",
		Day:     4,
		PartOne: "13",
		PartTwo: "30",
		Elapsed: 5 * time.Millisecond,
	}, res)

	finished := logs.FilterMessage("solve finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, int64(4), fields["day"])

	assert.Equal(t, 2, logs.FilterMessage("part solved").Len())
}

func TestRunPartOneError(t *testing.T) {
	r, logs := newTestRunner(t)
	called := false
	two := func(context.Context, string) (types.Answer, error) {
		called = true
		return "x", nil
	}

	_, err := r.Run(context.Background(), solvers.NewSolver(9, fixed("", types.ErrMalformedInput), two), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedInput))
	assert.Contains(t, err.Error(), "day 9 part one")
	assert.False(t, called, "part two must not run after part one fails")

	failed := logs.FilterMessage("part failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "one", failed[0].ContextMap()["part"])
}

func TestRunPartTwoError(t *testing.T) {
	r, _ := newTestRunner(t)

	res, err := r.Run(context.Background(), solvers.NewSolver(10, fixed("8", nil), fixed("", types.ErrLogicViolation)), "")
	require.ErrorIs(t, err, types.ErrLogicViolation)
	assert.Equal(t, types.Answer("8"), res.PartOne)
	assert.Empty(t, res.PartTwo)
}

func TestRunRealSolver(t *testing.T) {
	s, err := solvers.New(types.Config{}).Get(9)
	require.NoError(t, err)

	res, err := New(nil).Run(context.Background(), s, "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n")
	require.NoError(t, err)
	assert.Equal(t, types.Answer("114"), res.PartOne)
	assert.Equal(t, types.Answer("2"), res.PartTwo)
	assert.NotEmpty(t, res.RunID)
}

func TestGenerateRunIDUnique(t *testing.T) {
	a, b := generateRunID(), generateRunID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
