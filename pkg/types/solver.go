package types

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/exp/constraints"
)

// Answer is the decimal rendering of one part's result. Keeping the text
// form lets results wider than 64 bits print exactly.
type Answer string

// IntAnswer renders an integer result.
func IntAnswer[T constraints.Integer](v T) Answer {
	return Answer(fmt.Sprint(v))
}

// BigAnswer renders an arbitrary-precision result. A nil value renders as 0.
func BigAnswer(v *big.Int) Answer {
	if v == nil {
		return "0"
	}
	return Answer(v.String())
}

// String implements fmt.Stringer.
func (a Answer) String() string { return string(a) }

// Solver computes both answers for one day.
type Solver interface {
	// Day returns the puzzle day, 1 through 25.
	Day() int

	// PartOne computes the first answer from the full input text.
	PartOne(ctx context.Context, input string) (Answer, error)

	// PartTwo computes the second answer from the full input text.
	PartTwo(ctx context.Context, input string) (Answer, error)
}

// Result is the outcome of one solve run.
type Result struct {
	RunID   string        `json:"run_id"`
	Day     int           `json:"day"`
	PartOne Answer        `json:"part_one"`
	PartTwo Answer        `json:"part_two"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
