package voltorb

import "strings"

// Size is the board edge length. Voltorb Flip is always played on a
// 5x5 grid.
const Size = 5

// Cell is the content of a single square. A flipped square shows a
// multiplier of x1..x3 or a Voltorb (a bomb, worth 0 and ending the
// game). Unknown marks a square that has not been flipped yet.
type Cell int8

const (
	Unknown Cell = -1
	Bomb    Cell = 0
	One     Cell = 1
	Two     Cell = 2
	Three   Cell = 3
)

// Valid reports whether c is a flippable value, i.e. anything a real
// square may hold once revealed.
func (c Cell) Valid() bool {
	return Bomb <= c && c <= Three
}

// Points is the coin value of the cell. Bombs are worth nothing.
func (c Cell) Points() int {
	if c <= Bomb {
		return 0
	}
	return int(c)
}

func (c Cell) String() string {
	switch c {
	case Bomb:
		return "V"
	case One, Two, Three:
		return string(rune('0' + c))
	default:
		return "·"
	}
}

// Coord addresses a square by row and column, both in [0, Size).
type Coord struct {
	R int `json:"row"`
	C int `json:"col"`
}

// Before orders coordinates row-major. Used as the final tie-break so
// that recommendations are reproducible.
func (p Coord) Before(q Coord) bool {
	return p.R < q.R || (p.R == q.R && p.C < q.C)
}

func ValidCoord(r, c int) bool {
	return 0 <= r && r < Size && 0 <= c && c < Size
}

// Grid is the full board, indexed r*Size+c. The zero value of Cell is
// Bomb, so grids must be created with NewGrid (or copied from one) to
// start all-Unknown.
type Grid [Size * Size]Cell

func NewGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = Unknown
	}
	return g
}

func (g Grid) At(r, c int) Cell {
	return g[r*Size+c]
}

func (g *Grid) Set(r, c int, v Cell) {
	g[r*Size+c] = v
}

// Revealed counts the squares already flipped.
func (g Grid) Revealed() int {
	n := 0
	for _, v := range g {
		if v != Unknown {
			n++
		}
	}
	return n
}

func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.At(r, c).String())
		}
	}
	return sb.String()
}
