// Package day08 walks the desert network by its left/right instructions.
package day08

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/advent/internal/numeric"
	"github.com/mesh-intelligence/advent/internal/parse"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// SimulationLimit bounds the lockstep fallback in PartTwo.
const SimulationLimit = 100_000_000

// Network stores nodes by interned index. Left and Right are edge tables
// indexed by node.
type Network struct {
	Instructions string
	Names        []string
	Left, Right  []int
	index        map[string]int
}

// Parse reads the instruction line and the "AAA = (BBB, CCC)" node lines.
func Parse(input string) (*Network, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want an instruction line and a node block", types.ErrMalformedInput)
	}
	n := &Network{Instructions: strings.TrimSpace(blocks[0][0]), index: make(map[string]int)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, fmt.Errorf("%w: bad instructions %q", types.ErrMalformedInput, n.Instructions)
	}

	type edge struct{ from, left, right string }
	edges := make([]edge, 0, len(blocks[1]))
	for _, line := range blocks[1] {
		name, rest, err := parse.CutLabel(line, "=")
		if err != nil {
			return nil, err
		}
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		left, right, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("%w: bad node %q", types.ErrMalformedInput, line)
		}
		if _, dup := n.index[name]; dup {
			return nil, fmt.Errorf("%w: node %s defined twice", types.ErrMalformedInput, name)
		}
		n.intern(name)
		edges = append(edges, edge{name, strings.TrimSpace(left), strings.TrimSpace(right)})
	}

	n.Left = make([]int, len(n.Names))
	n.Right = make([]int, len(n.Names))
	for _, e := range edges {
		l, ok := n.index[e.left]
		if !ok {
			return nil, fmt.Errorf("%w: node %s points to undefined %s", types.ErrMalformedInput, e.from, e.left)
		}
		r, ok := n.index[e.right]
		if !ok {
			return nil, fmt.Errorf("%w: node %s points to undefined %s", types.ErrMalformedInput, e.from, e.right)
		}
		n.Left[n.index[e.from]] = l
		n.Right[n.index[e.from]] = r
	}
	return n, nil
}

func (n *Network) intern(name string) int {
	id := len(n.Names)
	n.index[name] = id
	n.Names = append(n.Names, name)
	return id
}

// Step follows the instruction for step number s from node.
func (n *Network) Step(node, s int) int {
	if n.Instructions[s%len(n.Instructions)] == 'L' {
		return n.Left[node]
	}
	return n.Right[node]
}

// StepsTo counts steps from the named node until done reports true. The walk
// gives up once every (node, instruction) state has been seen.
func (n *Network) StepsTo(from string, done func(name string) bool) (int, error) {
	node, ok := n.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: no node %s", types.ErrMalformedInput, from)
	}
	limit := len(n.Names) * len(n.Instructions)
	for s := 0; s <= limit; s++ {
		if done(n.Names[node]) {
			return s, nil
		}
		node = n.Step(node, s)
	}
	return 0, fmt.Errorf("%w: %s never reaches its goal", types.ErrLogicViolation, from)
}

// PartOne counts steps from AAA to ZZZ.
func PartOne(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return n.StepsTo("AAA", func(name string) bool { return name == "ZZZ" })
}

// PartTwo counts lockstep steps until every walk that started on a node
// ending in A stands on a node ending in Z.
//
// When each walk first reaches a Z node after t steps and then returns to a Z
// node every t steps, the answer is the LCM of those periods. Otherwise the
// walks are simulated up to SimulationLimit steps.
func PartTwo(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var starts []int
	for id, name := range n.Names {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, id)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no node ends in A", types.ErrMalformedInput)
	}

	periods := make([]int, 0, len(starts))
	for _, s := range starts {
		p, ok, err := n.period(s)
		if err != nil {
			return 0, err
		}
		if !ok {
			return n.simulate(starts)
		}
		periods = append(periods, p)
	}
	return numeric.LCM(periods...), nil
}

// period returns t when the walk from start first hits a Z node at step t
// and is back in the same state (node, instruction index) at step 2t, so it
// hits Z at every multiple of t. ok is false for any other shape.
func (n *Network) period(start int) (int, bool, error) {
	limit := len(n.Names) * len(n.Instructions)
	isZ := func(id int) bool { return strings.HasSuffix(n.Names[id], "Z") }

	node, first, firstNode := start, 0, -1
	for s := 0; ; s++ {
		if first == 0 && s > limit {
			return 0, false, fmt.Errorf("%w: %s never reaches a Z node", types.ErrLogicViolation, n.Names[start])
		}
		if s > first+limit {
			return 0, false, nil
		}
		if s > 0 && isZ(node) {
			if first == 0 {
				first, firstNode = s, node
			} else {
				ok := s == 2*first && node == firstNode && first%len(n.Instructions) == 0
				return first, ok, nil
			}
		}
		node = n.Step(node, s)
	}
}

func (n *Network) simulate(starts []int) (int, error) {
	nodes := append([]int(nil), starts...)
	for s := 0; s <= SimulationLimit; s++ {
		all := true
		for _, id := range nodes {
			if !strings.HasSuffix(n.Names[id], "Z") {
				all = false
				break
			}
		}
		if all {
			return s, nil
		}
		for i, id := range nodes {
			nodes[i] = n.Step(id, s)
		}
	}
	return 0, fmt.Errorf("%w: walks did not align within %d steps", types.ErrLogicViolation, SimulationLimit)
}
