package othello

import (
	"errors"
	"reflect"
	"testing"
)

// newTestBoard builds a board and applies a position on top of the
// standard start.
func newTestBoard(t *testing.T, size int, changes map[int]Color) *Board {
	t.Helper()
	b, err := NewBoard(size)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", size, err)
	}
	if len(changes) > 0 {
		if err := b.Replace(changes); err != nil {
			t.Fatalf("Replace: %v", err)
		}
	}
	return b
}

func TestNewBoardStartPosition(t *testing.T) {
	for _, size := range []int{4, 6, 8, 10} {
		b, err := NewBoard(size)
		if err != nil {
			t.Fatalf("NewBoard(%d): %v", size, err)
		}
		center := (size/2 - 1) * (size + 1)
		want := map[int]Color{
			center:            White,
			center + 1:        Black,
			center + size:     Black,
			center + size + 1: White,
		}
		for index, c := range want {
			sq, err := b.At(index)
			if err != nil {
				t.Fatalf("size %d: At(%d): %v", size, index, err)
			}
			if sq.Status != c {
				t.Errorf("size %d: square %d = %v, want %v", size, index, sq.Status, c)
			}
		}
		if got := b.Count(Black); got != 2 {
			t.Errorf("size %d: Count(Black) = %d, want 2", size, got)
		}
		if got := b.Count(White); got != 2 {
			t.Errorf("size %d: Count(White) = %d, want 2", size, got)
		}
		if got := b.Count(Empty); got != size*size-4 {
			t.Errorf("size %d: Count(Empty) = %d, want %d", size, got, size*size-4)
		}
	}
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	for _, size := range []int{-8, 0, 1, 2, 3, 5, 7, 9} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestAt(t *testing.T) {
	b := newTestBoard(t, 4, nil)
	sq, err := b.At(5)
	if err != nil {
		t.Fatalf("At(5): %v", err)
	}
	if sq.Index != 5 || sq.Status != White {
		t.Errorf("At(5) = %+v, want index 5 holding White", sq)
	}
	for _, index := range []int{-1, 16, 100} {
		if _, err := b.At(index); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", index, err)
		}
	}
}

func TestReplaceAllOrNothing(t *testing.T) {
	b := newTestBoard(t, 4, nil)
	before := b.Grid()

	err := b.Replace(map[int]Color{0: Black, 99: White})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Replace with a bad index error = %v, want ErrOutOfRange", err)
	}
	if !reflect.DeepEqual(b.Grid(), before) {
		t.Errorf("board changed after a rejected Replace")
	}

	if err := b.Replace(map[int]Color{0: Black, 15: White}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if sq, _ := b.At(0); sq.Status != Black {
		t.Errorf("square 0 = %v, want Black", sq.Status)
	}
	if sq, _ := b.At(15); sq.Status != White {
		t.Errorf("square 15 = %v, want White", sq.Status)
	}
}

func TestGridIsACopy(t *testing.T) {
	b := newTestBoard(t, 4, nil)
	grid := b.Grid()
	grid[0][0] = int(Black)
	if sq, _ := b.At(0); sq.Status != Empty {
		t.Errorf("mutating a snapshot changed the board")
	}
}

func TestFull(t *testing.T) {
	b := newTestBoard(t, 4, nil)
	if b.Full() {
		t.Fatalf("fresh board reported full")
	}
	changes := make(map[int]Color, 16)
	for index := 0; index < 16; index++ {
		changes[index] = Black
	}
	if err := b.Replace(changes); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !b.Full() {
		t.Errorf("board with every square occupied reported not full")
	}
}
