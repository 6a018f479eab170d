package othello

import "fmt"

// Direction is one of the eight compass rays a capture line can follow.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Directions lists every ray in a fixed order. Capture resolution and
// flip flattening iterate it, which keeps results deterministic.
var Directions = [8]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var directionNames = [...]string{
	"up", "down", "left", "right",
	"up-left", "up-right", "down-left", "down-right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// vector returns the (row, col) delta of one step along d.
func (d Direction) vector() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpLeft:
		return -1, -1
	case UpRight:
		return -1, 1
	case DownLeft:
		return 1, -1
	case DownRight:
		return 1, 1
	}
	return 0, 0
}

// Step returns the index one square along d from index on a size×size
// board, and whether that square is on the board. The step is taken in
// (row, col) space and both components are checked, so rays stop at the
// board edge instead of wrapping into a neighboring row.
func Step(index, size int, d Direction) (int, bool) {
	dr, dc := d.vector()
	r := index/size + dr
	c := index%size + dc
	if r < 0 || r >= size || c < 0 || c >= size {
		return 0, false
	}
	return r*size + c, true
}

// Neighbors returns the on-board squares adjacent to index, keyed by
// the direction that reaches them. Edge and corner squares yield fewer
// than eight entries.
func Neighbors(index, size int) map[Direction]int {
	n := make(map[Direction]int, len(Directions))
	for _, d := range Directions {
		if next, ok := Step(index, size, d); ok {
			n[d] = next
		}
	}
	return n
}
