// Package day07 ranks Camel Cards hands, with and without jokers.
package day07

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Category is a hand type. Higher values are stronger.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return "invalid"
}

// Card orders, weakest first.
const (
	standardOrder = "23456789TJQKA"
	jokerOrder    = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// rules selects the card order and whether J is wild.
type rules struct {
	order string
	wild  bool
}

var (
	standard = rules{order: standardOrder}
	jokers   = rules{order: jokerOrder, wild: true}
)

// Classify returns the hand's category. With wild set, jokers join the
// largest group of another card.
func Classify(cards string, wild bool) Category {
	counts := make(map[rune]int, 5)
	jokerCount := 0
	for _, c := range cards {
		if wild && c == 'J' {
			jokerCount++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		// All jokers.
		return FiveOfAKind
	}
	groups[0] += jokerCount

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// compare orders hands by category, then card by card.
func (r rules) compare(a, b Hand) int {
	ca, cb := Classify(a.Cards, r.wild), Classify(b.Cards, r.wild)
	if ca != cb {
		return int(ca) - int(cb)
	}
	for i := 0; i < len(a.Cards); i++ {
		va := strings.IndexByte(r.order, a.Cards[i])
		vb := strings.IndexByte(r.order, b.Cards[i])
		if va != vb {
			return va - vb
		}
	}
	return 0
}

// ParseHands reads lines of the form "32T3K 765".
func ParseHands(input string) ([]Hand, error) {
	var hands []Hand
	for _, line := range parse.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 5 {
			return nil, fmt.Errorf("%w: bad hand %q", types.ErrMalformedInput, line)
		}
		for i := 0; i < 5; i++ {
			if !strings.ContainsRune(standardOrder, rune(fields[0][i])) {
				return nil, fmt.Errorf("%w: unknown card %q in %q", types.ErrMalformedInput, fields[0][i], line)
			}
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad bid %q", types.ErrMalformedInput, fields[1])
		}
		hands = append(hands, Hand{Cards: fields[0], Bid: bid})
	}
	return hands, nil
}

// Winnings sorts hands weakest first and sums rank times bid.
func winnings(hands []Hand, r rules) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, r.compare)
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

// PartOne ranks hands with J as a jack.
func PartOne(input string) (int, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return 0, err
	}
	return winnings(hands, standard), nil
}

// PartTwo ranks hands with J as a joker: wild for the category but the
// weakest card in tiebreaks.
func PartTwo(input string) (int, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return 0, err
	}
	return winnings(hands, jokers), nil
}
