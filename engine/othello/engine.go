package othello

import (
	"fmt"
	"log"
	"os"
	"sync"

	"termello/engine"
	"termello/sgf"
	"termello/types"
)

var debugLog *log.Logger

func init() {
	f, _ := os.Create("/tmp/termello-debug.log")
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)
}

// LocalEngine implements the GameEngine interface over a Game played
// by two people at one keyboard. All access is serialized behind one
// mutex; callbacks receive copies and run outside the lock so handlers
// can call back into the engine.
type LocalEngine struct {
	config engine.GameConfig
	game   *Game
	record *sgf.GameRecord

	boardState *types.BoardState

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

// NewLocalEngine creates a local engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{
		config:     cfg,
		boardState: types.NewBoardState(cfg.BoardSize),
	}
}

// Connect builds the game and, when recording is enabled, opens the
// record file.
func (e *LocalEngine) Connect() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	game, err := NewGame(e.config.BoardSize)
	if err != nil {
		return err
	}
	e.game = game
	e.syncBoardState()

	if e.config.RecordDir != "" {
		record, err := sgf.NewGameRecord(e.config.RecordDir, e.config.BoardSize,
			e.config.PlayerBlack, e.config.PlayerWhite)
		if err != nil {
			// The game goes on without a record rather than failing.
			debugLog.Printf("Connect: game record disabled: %v", err)
		} else {
			e.record = record
		}
	}
	return nil
}

// GetBoardState returns a copy of the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyBoardState()
}

// PlayMove places a disc for the active player. Coordinates outside
// the board are rejected before they reach the rules.
func (e *LocalEngine) PlayMove(x, y int) error {
	debugLog.Printf("PlayMove: x=%d y=%d", x, y)
	e.mu.Lock()

	if e.game == nil || e.game.Ended() {
		e.mu.Unlock()
		return fmt.Errorf("%w: no move accepted", ErrGameOver)
	}
	size := e.game.Size()
	if x < 0 || x >= size || y < 0 || y >= size {
		e.mu.Unlock()
		return fmt.Errorf("%w: position (%d, %d)", ErrInvalidInput, x, y)
	}

	mover := e.game.Active()
	mv, err := e.game.Play(y*size + x)
	if err != nil {
		e.mu.Unlock()
		debugLog.Printf("PlayMove: rejected: %v", err)
		return err
	}
	debugLog.Printf("PlayMove: %s plays %s flipping %d", mover, FormatIndex(mv.Target, size), mv.FlipCount())

	// The opponent was skipped if the turn came straight back.
	skipped := Empty
	if !e.game.Ended() && e.game.Active() == mover {
		skipped = mover.Opponent()
		debugLog.Printf("PlayMove: %s has no reply and is skipped", skipped)
	}

	e.boardState.LastMove.X = x
	e.boardState.LastMove.Y = y
	e.syncBoardState()

	if e.record != nil {
		if err := e.record.AddMove(x, y, int(mover)); err != nil {
			debugLog.Printf("PlayMove: record: %v", err)
		}
		if skipped != Empty {
			if err := e.record.AddMove(-1, -1, int(skipped)); err != nil {
				debugLog.Printf("PlayMove: record: %v", err)
			}
		}
	}

	ended := e.game.Ended()
	var outcome string
	if ended {
		outcome = e.boardState.Outcome
		if e.record != nil {
			if err := e.record.SetResult(outcome); err != nil {
				debugLog.Printf("PlayMove: record: %v", err)
			}
		}
	}

	stateCopy := e.copyBoardState()
	e.mu.Unlock()

	// Notify callbacks outside the lock to prevent deadlock.
	if e.moveCallback != nil {
		e.moveCallback(x, y, int(mover), stateCopy)
		if skipped != Empty {
			e.moveCallback(-1, -1, int(skipped), stateCopy)
		}
	}
	if ended && e.endCallback != nil {
		e.endCallback(outcome)
	}
	return nil
}

// LegalMoves returns the squares the active player may choose, for the
// board's hint marks.
func (e *LocalEngine) LegalMoves() []types.BoardPos {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return nil
	}
	size := e.game.Size()
	indexes := e.game.LegalMoves()
	moves := make([]types.BoardPos, 0, len(indexes))
	for _, index := range indexes {
		moves = append(moves, types.BoardPos{X: index % size, Y: index / size})
	}
	return moves
}

// ActivePlayer returns the player expected to move (1=black, 2=white).
func (e *LocalEngine) ActivePlayer() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return int(Black)
	}
	return int(e.game.Active())
}

// IsMyTurn reports whether the engine accepts a move. Both seats share
// one keyboard, so any move is "mine" until the game ends.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game != nil && !e.game.Ended()
}

// OnMove registers a callback for when a placement or skip happens.
func (e *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends during play.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.endCallback = callback
}

// Close ends the game at the operator's request and finalizes the
// record. Leaving mid-game counts as the active player resigning; no
// end callback fires since the operator is already walking away.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	quit := false
	if e.game != nil && !e.game.Ended() {
		e.game.Quit()
		e.syncBoardState()
		quit = true
	}
	if e.record != nil {
		if quit {
			if err := e.record.SetResult(e.boardState.Outcome); err != nil {
				debugLog.Printf("Close: record: %v", err)
			}
		}
		if err := e.record.Close(); err != nil {
			debugLog.Printf("Close: record: %v", err)
		}
		e.record = nil
	}
}

// syncBoardState rebuilds the published snapshot from the game.
// Must be called while holding the lock.
func (e *LocalEngine) syncBoardState() {
	e.boardState.Board = e.game.Snapshot()
	e.boardState.MoveNumber = e.game.Turn()
	e.boardState.PlayerToMove = int(e.game.Active())
	black, white := e.game.Score()
	e.boardState.BlackCount = black
	e.boardState.WhiteCount = white
	if e.game.Ended() {
		e.boardState.Phase = "finished"
		e.boardState.Outcome = e.outcome()
	}
}

// outcome renders the finished game as one line, e.g. "Black wins
// 40-24". Must be called while holding the lock.
func (e *LocalEngine) outcome() string {
	black, white := e.game.Score()
	if e.game.Reason() == Quit {
		// The player on turn walked away.
		return fmt.Sprintf("%s wins by resignation", e.game.Active().Opponent())
	}
	switch e.game.Winner() {
	case Black:
		return fmt.Sprintf("Black wins %d-%d", black, white)
	case White:
		return fmt.Sprintf("White wins %d-%d", white, black)
	}
	return fmt.Sprintf("Draw %d-%d", black, white)
}

// copyBoardState creates a deep copy of the current board state.
// Must be called while holding the lock.
func (e *LocalEngine) copyBoardState() *types.BoardState {
	boardCopy := make([][]int, len(e.boardState.Board))
	for i := range boardCopy {
		boardCopy[i] = make([]int, len(e.boardState.Board[i]))
		copy(boardCopy[i], e.boardState.Board[i])
	}
	return &types.BoardState{
		MoveNumber:   e.boardState.MoveNumber,
		PlayerToMove: e.boardState.PlayerToMove,
		Phase:        e.boardState.Phase,
		Board:        boardCopy,
		BlackCount:   e.boardState.BlackCount,
		WhiteCount:   e.boardState.WhiteCount,
		Outcome:      e.boardState.Outcome,
		LastMove:     e.boardState.LastMove,
	}
}
