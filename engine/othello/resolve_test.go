package othello

import (
	"errors"
	"reflect"
	"testing"
)

func TestLegalOpeningMoves(t *testing.T) {
	b := newTestBoard(t, 8, nil)
	got := LegalMoves(b, Black)
	want := []int{19, 26, 37, 44} // d3, c4, f5, e6
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LegalMoves(Black) = %v, want %v", got, want)
	}
	if !HasLegalMove(b, White) {
		t.Errorf("HasLegalMove(White) = false from the start position")
	}
}

func TestResolveSingleCapture(t *testing.T) {
	b := newTestBoard(t, 8, nil)
	mv, err := Resolve(b, Black, 26) // c4
	if err != nil {
		t.Fatalf("Resolve(c4): %v", err)
	}
	wantLines := map[Direction][]int{Right: {27}}
	if !reflect.DeepEqual(mv.Lines, wantLines) {
		t.Errorf("Lines = %v, want %v", mv.Lines, wantLines)
	}
	if got := mv.FlipCount(); got != 1 {
		t.Errorf("FlipCount() = %d, want 1", got)
	}
	if got := mv.Flips(); !reflect.DeepEqual(got, []int{27}) {
		t.Errorf("Flips() = %v, want [27]", got)
	}
}

func TestResolveRejections(t *testing.T) {
	b := newTestBoard(t, 8, nil)
	if _, err := Resolve(b, Black, 27); !errors.Is(err, ErrOccupiedSquare) {
		t.Errorf("Resolve on an occupied square error = %v, want ErrOccupiedSquare", err)
	}
	if _, err := Resolve(b, Black, 0); !errors.Is(err, ErrNoCaptures) {
		t.Errorf("Resolve with no captures error = %v, want ErrNoCaptures", err)
	}
	if _, err := Resolve(b, Black, 64); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Resolve off the board error = %v, want ErrOutOfRange", err)
	}
}

func TestResolveIsPure(t *testing.T) {
	b := newTestBoard(t, 8, nil)
	before := b.Grid()
	first, err := Resolve(b, Black, 26)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := Resolve(b, Black, 26)
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if !reflect.DeepEqual(first.Lines, second.Lines) {
		t.Errorf("resolving the same position twice gave %v then %v", first.Lines, second.Lines)
	}
	if !reflect.DeepEqual(b.Grid(), before) {
		t.Errorf("Resolve mutated the board")
	}
}

func TestResolveMultipleDirections(t *testing.T) {
	// Black on a1 closes three rays of a 4×4 position: right across
	// b1, c1 to the black disc on d1, down across a2 to a3, and the
	// diagonal across b2 to c3.
	b := newTestBoard(t, 4, map[int]Color{
		1: White, 2: White, 3: Black,
		4: White, 8: Black,
		5: White, 10: Black,
	})
	mv, err := Resolve(b, Black, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	wantLines := map[Direction][]int{
		Right:     {1, 2},
		Down:      {4},
		DownRight: {5},
	}
	if !reflect.DeepEqual(mv.Lines, wantLines) {
		t.Errorf("Lines = %v, want %v", mv.Lines, wantLines)
	}
	if got, want := mv.Flips(), []int{4, 1, 2, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Flips() = %v, want %v (fixed direction order, closest first)", got, want)
	}
	if got := mv.FlipCount(); got != 4 {
		t.Errorf("FlipCount() = %d, want 4", got)
	}
}
