package othello

import "errors"

// Errors reported by board construction, move resolution and the game
// state machine. Callers branch on these with errors.Is; wrapped forms
// carry the offending square or input text.
var (
	ErrInvalidSize    = errors.New("board size must be even and at least 4")
	ErrOutOfRange     = errors.New("square index out of range")
	ErrOccupiedSquare = errors.New("square is occupied")
	ErrNoCaptures     = errors.New("move captures no discs")
	ErrInvalidInput   = errors.New("invalid input")
	ErrGameOver       = errors.New("game is over")
)
