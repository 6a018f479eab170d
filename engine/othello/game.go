package othello

import "fmt"

// EndReason records why a game stopped accepting moves.
type EndReason uint8

const (
	NotEnded EndReason = iota
	Quit
	NoLegalMoves
	BoardFull
)

var endReasonNames = [...]string{"in progress", "quit", "no legal moves", "board full"}

func (r EndReason) String() string {
	if int(r) < len(endReasonNames) {
		return endReasonNames[r]
	}
	return fmt.Sprintf("EndReason(%d)", uint8(r))
}

// Game drives one Othello match. It owns the board, alternates the
// active player, skips a player with no legal placement and detects
// the end of the game. Black always moves first.
type Game struct {
	board  *Board
	active Color
	turn   int
	reason EndReason
}

// NewGame starts a size×size game from the standard opening position.
func NewGame(size int) (*Game, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{board: b, active: Black}, nil
}

// Play places the active player's disc on target. On success the board
// mutates exactly once, with the placement and every capture applied
// together, and the turn passes to the opponent unless the opponent
// has no reply. A rejected move leaves the game untouched and the same
// player to act.
func (g *Game) Play(target int) (*Move, error) {
	if g.reason != NotEnded {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.reason)
	}
	move, err := Resolve(g.board, g.active, target)
	if err != nil {
		return nil, err
	}
	changes := map[int]Color{target: g.active}
	for _, index := range move.Flips() {
		changes[index] = g.active
	}
	if err := g.board.Replace(changes); err != nil {
		return nil, err
	}
	g.turn++
	g.advance()
	return move, nil
}

// advance hands the turn over, skipping an opponent with no reply and
// ending the game when the board is full or neither player can move.
// Callers detect a skip by the active player not changing.
func (g *Game) advance() {
	if g.board.Full() {
		g.reason = BoardFull
		return
	}
	opponent := g.active.Opponent()
	if HasLegalMove(g.board, opponent) {
		g.active = opponent
		return
	}
	if HasLegalMove(g.board, g.active) {
		return // opponent skipped, the mover goes again
	}
	g.reason = NoLegalMoves
}

// Quit ends the game at the operator's request. Quitting a finished
// game changes nothing.
func (g *Game) Quit() {
	if g.reason == NotEnded {
		g.reason = Quit
	}
}

// Active returns the player whose placement the game expects next. The
// value is meaningless once the game has ended.
func (g *Game) Active() Color { return g.active }

// Turn returns the number of placements applied so far.
func (g *Game) Turn() int { return g.turn }

// Ended reports whether the game has stopped accepting moves.
func (g *Game) Ended() bool { return g.reason != NotEnded }

// Reason returns why the game ended, or NotEnded.
func (g *Game) Reason() EndReason { return g.reason }

// Size returns the board's edge length.
func (g *Game) Size() int { return g.board.Size() }

// Score returns the current disc counts for both players.
func (g *Game) Score() (black, white int) {
	return g.board.Count(Black), g.board.Count(White)
}

// Winner returns the player holding more discs, or Empty on a draw.
// The answer is only final once the game has ended.
func (g *Game) Winner() Color {
	black, white := g.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}

// LegalMoves returns every index where the active player may place a
// disc, or nil once the game has ended.
func (g *Game) LegalMoves() []int {
	if g.reason != NotEnded {
		return nil
	}
	return LegalMoves(g.board, g.active)
}

// Snapshot returns the position as rows of color values.
func (g *Game) Snapshot() [][]int { return g.board.Grid() }
