package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Othello notation names a square by column letter and 1-based row
// number counted from the top, so "a1" is the top-left corner and the
// standard 8×8 opening reply for Black includes "c4". The rules types
// never parse text themselves; these helpers serve flags, the move
// list and game records.

// ParseSquare converts notation such as "c4" into 0-based board
// coordinates. Letters are accepted in either case.
func ParseSquare(s string, size int) (x, y int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: square %q", ErrInvalidInput, s)
	}
	col := int(s[0]) - 'a'
	if col < 0 || col >= size {
		return 0, 0, fmt.Errorf("%w: column %q", ErrInvalidInput, s[:1])
	}
	row, convErr := strconv.Atoi(s[1:])
	if convErr != nil || row < 1 || row > size {
		return 0, 0, fmt.Errorf("%w: row %q", ErrInvalidInput, s[1:])
	}
	return col, row - 1, nil
}

// FormatSquare converts 0-based board coordinates into notation.
func FormatSquare(x, y int) string {
	return fmt.Sprintf("%c%d", 'a'+x, y+1)
}

// FormatIndex converts a linear index into notation on a board of the
// given edge length.
func FormatIndex(index, size int) string {
	return FormatSquare(index%size, index/size)
}
