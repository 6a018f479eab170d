package othello

import "fmt"

// Move is a resolved placement: the target square, the player placing
// a disc there, and every capture line the placement closes, keyed by
// direction with captured squares ordered closest-first.
type Move struct {
	Target int
	Player Color
	Lines  map[Direction][]int
}

// Flips returns every captured index flattened in a fixed order:
// Directions order first, then distance from the target. Rays radiate
// from a single square, so no index appears twice.
func (m *Move) Flips() []int {
	var flips []int
	for _, d := range Directions {
		flips = append(flips, m.Lines[d]...)
	}
	return flips
}

// FlipCount returns the number of discs the move captures.
func (m *Move) FlipCount() int {
	n := 0
	for _, line := range m.Lines {
		n += len(line)
	}
	return n
}

// Resolve decides whether player may place a disc on target and, if it
// may, returns the move with its full capture set. A line captures only
// if it holds at least one opponent disc and is closed by one of the
// player's own discs before the board edge or an empty square. The
// board is never mutated, so resolving the same position twice yields
// the same captures.
func Resolve(b *Board, player Color, target int) (*Move, error) {
	sq, err := b.At(target)
	if err != nil {
		return nil, err
	}
	if sq.Status != Empty {
		return nil, fmt.Errorf("%w: %s", ErrOccupiedSquare, FormatIndex(target, b.size))
	}
	opponent := player.Opponent()
	move := &Move{Target: target, Player: player, Lines: make(map[Direction][]int)}
	for _, d := range Directions {
		var line []int
		index := target
		for {
			next, ok := Step(index, b.size, d)
			if !ok {
				line = nil // ray ran off the board before closing
				break
			}
			status := b.status(next)
			if status == opponent {
				line = append(line, next)
				index = next
				continue
			}
			if status != player {
				line = nil // ray hit an empty square
			}
			break
		}
		if len(line) > 0 {
			move.Lines[d] = line
		}
	}
	if len(move.Lines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCaptures, FormatIndex(target, b.size))
	}
	return move, nil
}

// LegalMoves returns every index where player may place a disc, in
// ascending order.
func LegalMoves(b *Board, player Color) []int {
	var moves []int
	for index := 0; index < b.size*b.size; index++ {
		if b.status(index) != Empty {
			continue
		}
		if _, err := Resolve(b, player, index); err == nil {
			moves = append(moves, index)
		}
	}
	return moves
}

// HasLegalMove reports whether player has at least one legal placement.
func HasLegalMove(b *Board, player Color) bool {
	for index := 0; index < b.size*b.size; index++ {
		if b.status(index) != Empty {
			continue
		}
		if _, err := Resolve(b, player, index); err == nil {
			return true
		}
	}
	return false
}
