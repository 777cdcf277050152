package grid

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Cardinals lists the directions in clockwise order starting at North.
var Cardinals = [4]Direction{North, East, South, West}

var offsets = [4]Pos{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Pos { return offsets[d] }

// Opposite returns the reverse heading. Opposite is an involution.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Bit returns a one-hot mask for d, for per-cell direction sets.
func (d Direction) Bit() uint8 { return 1 << d }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "invalid"
}
