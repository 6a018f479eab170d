package othello

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewGameSizeValidation(t *testing.T) {
	for _, size := range []int{2, 7} {
		if _, err := NewGame(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGame(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestOpeningMove(t *testing.T) {
	g, err := NewGame(8)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if got, want := g.LegalMoves(), []int{19, 26, 37, 44}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LegalMoves() = %v, want %v", got, want)
	}

	x, y, err := ParseSquare("c4", g.Size())
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	mv, err := g.Play(y*g.Size() + x)
	if err != nil {
		t.Fatalf("Play(c4): %v", err)
	}
	if got, want := mv.Flips(), []int{27}; !reflect.DeepEqual(got, want) {
		t.Errorf("Flips() = %v, want %v", got, want)
	}
	black, white := g.Score()
	if black != 4 || white != 1 {
		t.Errorf("Score() = %d, %d, want 4, 1", black, white)
	}
	if got := g.Active(); got != White {
		t.Errorf("Active() = %v, want White", got)
	}
	if got := g.Turn(); got != 1 {
		t.Errorf("Turn() = %d, want 1", got)
	}
}

func TestRejectedMovesChangeNothing(t *testing.T) {
	g, err := NewGame(8)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	before := g.Snapshot()
	if _, err := g.Play(27); !errors.Is(err, ErrOccupiedSquare) {
		t.Errorf("Play on an occupied square error = %v, want ErrOccupiedSquare", err)
	}
	if _, err := g.Play(0); !errors.Is(err, ErrNoCaptures) {
		t.Errorf("Play with no captures error = %v, want ErrNoCaptures", err)
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Errorf("rejected moves mutated the board")
	}
	if got := g.Active(); got != Black {
		t.Errorf("Active() = %v, want Black", got)
	}
	if got := g.Turn(); got != 0 {
		t.Errorf("Turn() = %d, want 0", got)
	}
}

func TestSevenMoveGame(t *testing.T) {
	g, err := NewGame(8)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for _, square := range []string{"d3", "c5", "d6", "e3", "f3", "e2", "f5"} {
		x, y, err := ParseSquare(square, g.Size())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", square, err)
		}
		if _, err := g.Play(y*g.Size() + x); err != nil {
			t.Fatalf("Play(%s): %v", square, err)
		}
	}
	if got := g.Turn(); got != 7 {
		t.Errorf("Turn() = %d, want 7", got)
	}
	if got := g.Active(); got != White {
		t.Errorf("Active() = %v, want White", got)
	}
	black, white := g.Score()
	if black != 7 || white != 4 {
		t.Errorf("Score() = %d, %d, want 7, 4", black, white)
	}

	wantBlack := []int{19, 21, 28, 35, 36, 37, 43} // d3 f3 e4 d5 e5 f5 d6
	wantWhite := []int{12, 20, 27, 34}             // e2 e3 d4 c5
	want := make(map[int]Color, len(wantBlack)+len(wantWhite))
	for _, index := range wantBlack {
		want[index] = Black
	}
	for _, index := range wantWhite {
		want[index] = White
	}
	grid := g.Snapshot()
	for index := 0; index < g.Size()*g.Size(); index++ {
		got := Color(grid[index/g.Size()][index%g.Size()])
		if got != want[index] {
			t.Errorf("square %s = %v, want %v", FormatIndex(index, g.Size()), got, want[index])
		}
	}
}

func TestSkipKeepsMoverActive(t *testing.T) {
	// Crafted 4×4 position: once Black closes the top row, White owns a
	// single disc at d3 with no legal reply anywhere on the board,
	// while Black can still capture it from d2. The turn must stay with
	// Black instead of passing.
	b := newTestBoard(t, 4, map[int]Color{
		0: Black, 1: White, 3: Black,
		5: Empty, 6: Empty, 9: Empty, 10: Empty,
		11: White, 15: Black,
	})
	g := &Game{board: b, active: Black}

	mv, err := g.Play(2)
	if err != nil {
		t.Fatalf("Play(2): %v", err)
	}
	if got, want := mv.Flips(), []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Flips() = %v, want %v", got, want)
	}
	if g.Ended() {
		t.Fatalf("game ended early: %v", g.Reason())
	}
	if got := g.Active(); got != Black {
		t.Errorf("Active() after the skip = %v, want Black", got)
	}

	// Black's follow-up captures the last white disc; with nothing left
	// to flip for either side the game ends on the spot.
	if _, err := g.Play(7); err != nil {
		t.Fatalf("Play(7): %v", err)
	}
	if !g.Ended() || g.Reason() != NoLegalMoves {
		t.Fatalf("Reason() = %v, want NoLegalMoves", g.Reason())
	}
	if got := g.Winner(); got != Black {
		t.Errorf("Winner() = %v, want Black", got)
	}
	black, white := g.Score()
	if black != 7 || white != 0 {
		t.Errorf("Score() = %d, %d, want 7, 0", black, white)
	}

	g.Quit()
	if got := g.Reason(); got != NoLegalMoves {
		t.Errorf("Quit on a finished game changed Reason() to %v", got)
	}
	if _, err := g.Play(4); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after the end error = %v, want ErrGameOver", err)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	changes := make(map[int]Color, 15)
	for index := 0; index < 14; index++ {
		changes[index] = Black
	}
	changes[14] = White
	b := newTestBoard(t, 4, changes)
	g := &Game{board: b, active: Black}

	if _, err := g.Play(15); err != nil {
		t.Fatalf("Play(15): %v", err)
	}
	if got := g.Reason(); got != BoardFull {
		t.Errorf("Reason() = %v, want BoardFull", got)
	}
	black, white := g.Score()
	if black != 16 || white != 0 {
		t.Errorf("Score() = %d, %d, want 16, 0", black, white)
	}
	if _, err := g.Play(0); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after BoardFull error = %v, want ErrGameOver", err)
	}
}

func TestQuit(t *testing.T) {
	g, err := NewGame(8)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Quit()
	if !g.Ended() || g.Reason() != Quit {
		t.Fatalf("after Quit: Ended() = %v, Reason() = %v", g.Ended(), g.Reason())
	}
	if _, err := g.Play(19); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after Quit error = %v, want ErrGameOver", err)
	}
	if got := g.LegalMoves(); got != nil {
		t.Errorf("LegalMoves() after Quit = %v, want nil", got)
	}
}

func TestWinnerOnDraw(t *testing.T) {
	changes := make(map[int]Color, 16)
	for index := 0; index < 16; index++ {
		c := Black
		if index >= 8 {
			c = White
		}
		changes[index] = c
	}
	b := newTestBoard(t, 4, changes)
	g := &Game{board: b, reason: BoardFull}
	if got := g.Winner(); got != Empty {
		t.Errorf("Winner() = %v, want Empty for a draw", got)
	}
}
