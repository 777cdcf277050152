package types

import "errors"

// Standard solver errors. Day packages wrap these with context; callers
// test with errors.Is.
var (
	// ErrMalformedInput reports an unexpected character or structure in a
	// puzzle input.
	ErrMalformedInput = errors.New("malformed input")

	// ErrLogicViolation reports input that parses but cannot satisfy the
	// puzzle's assumptions, such as a pipe loop with no start.
	ErrLogicViolation = errors.New("logic violation")

	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("unknown day")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)
