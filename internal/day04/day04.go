// Package day04 scores scratchcards.
package day04

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Card holds the winning numbers and the numbers the player has.
type Card struct {
	Winning []int
	Have    []int
}

// Matches returns how many of the player's numbers are winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}
	count := 0
	for _, n := range c.Have {
		if winning[n] {
			count++
			// Count each distinct number once.
			delete(winning, n)
		}
	}
	return count
}

// ParseCards reads lines of the form "Card 1: 41 48 | 83 86 6".
func ParseCards(input string) ([]Card, error) {
	var cards []Card
	for _, line := range parse.Lines(input) {
		_, rest, err := parse.CutLabel(line, ":")
		if err != nil {
			return nil, err
		}
		left, right, ok := strings.Cut(rest, "|")
		if !ok {
			return nil, fmt.Errorf("%w: missing '|' in %q", types.ErrMalformedInput, line)
		}
		var c Card
		if c.Winning, err = parse.Ints(left); err != nil {
			return nil, err
		}
		if c.Have, err = parse.Ints(right); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// PartOne sums the card scores, 2^(w-1) for w > 0 matches.
func PartOne(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		if w := c.Matches(); w > 0 {
			total += 1 << (w - 1)
		}
	}
	return total, nil
}

// PartTwo counts the cards held once every win has granted copies of the
// following cards.
func PartTwo(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
