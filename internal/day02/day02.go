// Package day02 validates cube draws against bag limits.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int
}

// Limits is the bag content part one checks against.
var Limits = Cubes{Red: 12, Green: 13, Blue: 14}

// Game is one line of input.
type Game struct {
	ID      int
	Samples []Cubes
}

// Within reports whether every colour of c is at most the same colour of limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Minimum returns the per-colour maximum over all samples, the smallest bag
// that makes the game possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, s := range g.Samples {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// PartOne sums the IDs of games possible with Limits.
func PartOne(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		if g.Minimum().Within(Limits) {
			total += g.ID
		}
	}
	return total, nil
}

// PartTwo sums the power of every game's minimum bag.
func PartTwo(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return total, nil
}

// ParseGames reads lines of the form "Game N: 3 blue, 4 red; 1 red, 2 green".
func ParseGames(input string) ([]Game, error) {
	var games []Game
	for _, line := range parse.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	label, rest, err := parse.CutLabel(line, ":")
	if err != nil {
		return Game{}, err
	}
	idText, ok := strings.CutPrefix(label, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: bad game label %q", types.ErrMalformedInput, label)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad game id %q", types.ErrMalformedInput, idText)
	}

	g := Game{ID: id}
	for sample := range strings.SplitSeq(rest, ";") {
		var c Cubes
		for draw := range strings.SplitSeq(sample, ",") {
			fields := strings.Fields(draw)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("%w: game %d: bad draw %q", types.ErrMalformedInput, id, draw)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("%w: game %d: bad count %q", types.ErrMalformedInput, id, fields[0])
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("%w: game %d: unknown colour %q", types.ErrMalformedInput, id, fields[1])
			}
		}
		g.Samples = append(g.Samples, c)
	}
	return g, nil
}
