// Package parse splits puzzle inputs into lines, blank-line separated blocks,
// and integer fields. Both LF and CRLF line endings are accepted everywhere.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// Normalize converts CRLF line endings to LF and drops trailing newlines.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}

// Lines returns the lines of input with line endings removed. A trailing
// newline does not produce an empty final line. Interior empty lines are kept.
func Lines(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines and returns each block's lines.
// Runs of several blank lines are treated as one separator.
func Blocks(input string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints parses every whitespace-separated field of s as a base-10 int.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", types.ErrMalformedInput, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Uint64s parses every whitespace-separated field of s as a base-10 uint64.
func Uint64s(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an unsigned integer", types.ErrMalformedInput, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// CommaInts parses a comma-separated list such as "1,1,3".
func CommaInts(s string) ([]int, error) {
	return Ints(strings.ReplaceAll(s, ",", " "))
}

// CutLabel splits "label: rest" and returns the trimmed rest. It fails if the
// separator is missing.
func CutLabel(line, sep string) (label, rest string, err error) {
	label, rest, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", fmt.Errorf("%w: missing %q in %q", types.ErrMalformedInput, sep, line)
	}
	return strings.TrimSpace(label), strings.TrimSpace(rest), nil
}
