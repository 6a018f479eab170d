package sgf

// Replay is a read-only cursor over a finished game record. The board
// for a cursor position is rebuilt by reapplying moves from the start,
// which is cheap at Othello sizes. The cursor opens at the end of the
// record, where a browser preview wants it.
type Replay struct {
	info  *GameInfo
	moves [][3]int // color, x, y; x, y == -1 for a skipped turn
	pos   int      // moves applied so far, 0..len(moves)
}

// NewReplay loads a record for move-by-move playback.
func NewReplay(filePath string) (*Replay, error) {
	info, err := ParseHeader(filePath)
	if err != nil {
		return nil, err
	}
	moves, err := parseMoves(filePath)
	if err != nil {
		return nil, err
	}
	return &Replay{info: info, moves: moves, pos: len(moves)}, nil
}

// Info returns the record's header metadata.
func (r *Replay) Info() *GameInfo { return r.info }

// MoveCount returns the number of recorded moves, skipped turns included.
func (r *Replay) MoveCount() int { return len(r.moves) }

// Position returns the move cursor, 0 meaning the starting position.
func (r *Replay) Position() int { return r.pos }

// Back rewinds one move. Returns false at the starting position.
func (r *Replay) Back() bool {
	if r.pos == 0 {
		return false
	}
	r.pos--
	return true
}

// Forward advances one move. Returns false at the end of the record.
func (r *Replay) Forward() bool {
	if r.pos >= len(r.moves) {
		return false
	}
	r.pos++
	return true
}

// Seek jumps the cursor to n moves into the game, clamped to the
// record's bounds.
func (r *Replay) Seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.pos = n
}

// CurrentMove returns the move the cursor last applied, or ok=false at
// the starting position.
func (r *Replay) CurrentMove() (color, x, y int, ok bool) {
	if r.pos == 0 {
		return 0, 0, 0, false
	}
	m := r.moves[r.pos-1]
	return m[0], m[1], m[2], true
}

// Board returns the position at the cursor (board[y][x], 0=empty,
// 1=black, 2=white).
func (r *Replay) Board() [][]int {
	size := r.info.BoardSize
	board := startingPosition(size)
	for i := 0; i < r.pos; i++ {
		color, x, y := r.moves[i][0], r.moves[i][1], r.moves[i][2]
		if x == -1 && y == -1 {
			continue // skipped turn
		}
		if x < 0 || x >= size || y < 0 || y >= size {
			continue
		}
		board[y][x] = color
		applyFlips(board, size, x, y, color)
	}
	return board
}

// startingPosition returns a board holding the four center discs.
func startingPosition(size int) [][]int {
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	if size >= 2 {
		r, c := size/2-1, size/2-1
		board[r][c] = 2
		board[r][c+1] = 1
		board[r+1][c] = 1
		board[r+1][c+1] = 2
	}
	return board
}

// applyFlips flips every line the disc just placed at (x, y) closes.
// The record is trusted, so a move that closes nothing flips nothing.
func applyFlips(board [][]int, size, x, y, color int) {
	opponent := 1
	if color == 1 {
		opponent = 2
	}
	for _, d := range [][2]int{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	} {
		nx, ny := x+d[0], y+d[1]
		var line [][2]int
		for nx >= 0 && nx < size && ny >= 0 && ny < size && board[ny][nx] == opponent {
			line = append(line, [2]int{nx, ny})
			nx += d[0]
			ny += d[1]
		}
		if len(line) == 0 || nx < 0 || nx >= size || ny < 0 || ny >= size || board[ny][nx] != color {
			continue
		}
		for _, p := range line {
			board[p[1]][p[0]] = color
		}
	}
}
