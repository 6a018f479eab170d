package othello

import "fmt"

// Color is the state of a board square and, for Black and White, a
// player. Squares only ever move from Empty to a player color, or flip
// between the two player colors; they never empty again.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

var colorNames = [...]string{"Empty", "Black", "White"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Opponent returns the other player. Empty has no opponent and maps to
// itself.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}
