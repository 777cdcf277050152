// Package day01 recovers calibration values from lines of text.
package day01

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// PartOne sums the two-digit values formed from the first and last numeric
// character of every line.
func PartOne(input string) (int, error) {
	return sum(input, false)
}

// PartTwo is PartOne with spelled digits "one" through "nine" also counted.
func PartTwo(input string) (int, error) {
	return sum(input, true)
}

func sum(input string, words bool) (int, error) {
	total := 0
	for i, line := range parse.Lines(input) {
		first, ok := firstDigit(line, words)
		if !ok {
			return 0, fmt.Errorf("line %d: %w: no digit in %q", i+1, types.ErrMalformedInput, line)
		}
		last, _ := lastDigit(line, words)
		total += first*10 + last
	}
	return total, nil
}

// firstDigit scans forward and, at each index, accepts a numeric character
// or a spelled digit starting there.
func firstDigit(line string, words bool) (int, bool) {
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
		if !words {
			continue
		}
		for n, w := range spelled {
			if strings.HasPrefix(line[i:], w) {
				return n + 1, true
			}
		}
	}
	return 0, false
}

// lastDigit scans backward and, at each index, accepts a numeric character
// or a spelled digit ending there.
func lastDigit(line string, words bool) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if c := line[i]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
		if !words {
			continue
		}
		for n, w := range spelled {
			if strings.HasSuffix(line[:i+1], w) {
				return n + 1, true
			}
		}
	}
	return 0, false
}
