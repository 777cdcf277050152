// Package day15 runs the HASHMAP lens initialisation sequence.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// Boxes is the number of lens boxes, one per hash value.
const Boxes = 256

// Hash is the 8-bit rolling fold h = ((h + c) * 17) mod 256 over s.
func Hash(s string) uint8 {
	return HashFrom(0, s)
}

// HashFrom continues the fold from h, so that
// Hash(a+b) == HashFrom(Hash(a), b).
func HashFrom(h uint8, s string) uint8 {
	for i := 0; i < len(s); i++ {
		h = (h + s[i]) * 17
	}
	return h
}

// steps splits the sequence on commas with newlines removed.
func steps(input string) []string {
	input = strings.NewReplacer("\r", "", "\n", "").Replace(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, ",")
}

// Lens is a labelled lens in a box slot.
type Lens struct {
	Label string
	Focal int
}

// Library is the row of boxes. Labels are unique within a box and slot
// order is insertion order.
type Library [Boxes][]Lens

// Apply runs one step: "label-" removes the lens, "label=f" replaces its
// focal length in place or appends a new lens.
func (lib *Library) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &lib[Hash(label)]
		for i, l := range *box {
			if l.Label == label {
				*box = append((*box)[:i], (*box)[i+1:]...)
				break
			}
		}
		return nil
	}
	label, focalText, ok := strings.Cut(step, "=")
	if !ok || label == "" {
		return fmt.Errorf("%w: bad step %q", types.ErrMalformedInput, step)
	}
	focal, err := strconv.Atoi(focalText)
	if err != nil || focal < 1 || focal > 9 {
		return fmt.Errorf("%w: bad focal length in %q", types.ErrMalformedInput, step)
	}
	box := &lib[Hash(label)]
	for i := range *box {
		if (*box)[i].Label == label {
			(*box)[i].Focal = focal
			return nil
		}
	}
	*box = append(*box, Lens{Label: label, Focal: focal})
	return nil
}

// FocusingPower sums (box+1) * slot * focal over every lens, slots from 1.
func (lib *Library) FocusingPower() int {
	total := 0
	for b, box := range lib {
		for s, l := range box {
			total += (b + 1) * (s + 1) * l.Focal
		}
	}
	return total
}

// PartOne sums the hash of every step.
func PartOne(input string) (int, error) {
	total := 0
	for _, s := range steps(input) {
		total += int(Hash(s))
	}
	return total, nil
}

// PartTwo runs the sequence and returns the focusing power.
func PartTwo(input string) (int, error) {
	var lib Library
	for _, s := range steps(input) {
		if err := lib.Apply(s); err != nil {
			return 0, err
		}
	}
	return lib.FocusingPower(), nil
}
