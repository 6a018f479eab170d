// Package engine defines the interface the UI drives a game through.
package engine

import "termello/types"

// GameEngine is the seam between the interface layers and a running
// Othello game.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns a copy of the current board state.
	GetBoardState() *types.BoardState

	// PlayMove places a disc for the active player at the given
	// 0-based coordinates. Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// LegalMoves returns every square the active player may choose.
	LegalMoves() []types.BoardPos

	// ActivePlayer returns the player expected to move (1=black, 2=white).
	ActivePlayer() int

	// IsMyTurn reports whether the engine accepts a move right now.
	// Both seats share one keyboard, so this holds until the game ends.
	IsMyTurn() bool

	// OnMove registers a callback fired after every applied placement
	// and after every forced skip. x, y are -1, -1 for a skip.
	// boardState is a copy, safe to hold across turns.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// OnGameEnd registers a callback fired once when the game ends
	// during play.
	OnGameEnd(func(outcome string))

	// Close ends the game if it is still running and releases the
	// engine's resources.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize   int    // even, at least 4
	PlayerBlack string // display name for the black seat
	PlayerWhite string // display name for the white seat
	ShowHints   bool   // mark the active player's legal squares
	RecordDir   string // where game records are written; empty disables them
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   8,
		PlayerBlack: "Black",
		PlayerWhite: "White",
		ShowHints:   true,
	}
}
