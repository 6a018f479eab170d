// Package othello implements the rules of Othello: board state with
// atomic batch mutation, eight-direction capture resolution and a
// two-player turn machine that skips blocked players and detects the
// end of the game.
package othello

import "fmt"

// Square is one cell of the board: its linear row-major index and the
// disc occupying it, if any.
type Square struct {
	Index  int
	Status Color
}

// Board is a size×size Othello grid. The edge length is fixed at
// creation, even and at least 4. The zero value is unusable; construct
// with NewBoard.
type Board struct {
	size    int
	squares []Color
}

// NewBoard returns a size×size board holding the standard central
// two-by-two starting block and empty squares everywhere else.
func NewBoard(size int) (*Board, error) {
	if size < 4 || size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	b := &Board{
		size:    size,
		squares: make([]Color, size*size),
	}
	// Top-left square of the central block. The fixed placement order
	// below is what pairs the starting discs diagonally.
	center := (size/2 - 1) * (size + 1)
	targets := []int{center, center + 1, center + size, center + size + 1}
	colors := []Color{White, Black, Black, White}
	for i, index := range targets {
		b.squares[index] = colors[i]
	}
	return b, nil
}

// Size returns the board's edge length.
func (b *Board) Size() int { return b.size }

// At returns the square at index.
func (b *Board) At(index int) (Square, error) {
	if index < 0 || index >= len(b.squares) {
		return Square{}, fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, index, b.size)
	}
	return Square{Index: index, Status: b.squares[index]}, nil
}

// status returns the color at a known-valid index.
func (b *Board) status(index int) Color { return b.squares[index] }

// Replace applies every status change in changes as one step, so a
// placement and the captures it closes commit together. All indexes
// are validated first; on any out-of-range index nothing is applied.
func (b *Board) Replace(changes map[int]Color) error {
	for index := range changes {
		if index < 0 || index >= len(b.squares) {
			return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, index, b.size)
		}
	}
	for index, c := range changes {
		b.squares[index] = c
	}
	return nil
}

// Count returns the number of squares holding c.
func (b *Board) Count(c Color) int {
	n := 0
	for _, s := range b.squares {
		if s == c {
			n++
		}
	}
	return n
}

// Full reports whether no empty squares remain.
func (b *Board) Full() bool { return b.Count(Empty) == 0 }

// Grid returns the position as rows of color values, a snapshot the
// display layer can hold without aliasing the board.
func (b *Board) Grid() [][]int {
	g := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		row := make([]int, b.size)
		for c := 0; c < b.size; c++ {
			row[c] = int(b.squares[r*b.size+c])
		}
		g[r] = row
	}
	return g
}
