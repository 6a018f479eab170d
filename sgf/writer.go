// Package sgf implements SGF FF[4] writing and reading for Othello
// game records (game type GM[2]).
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// GameRecord tracks a game in progress and writes it as SGF.
type GameRecord struct {
	FilePath    string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[dc]", ";W[ce]", ...
	file        *os.File
}

// NewGameRecord creates a new SGF file in dir and writes the initial header.
func NewGameRecord(dir string, boardSize int, playerBlack, playerWhite string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s_%dx%d.sgf", now.Format("2006-01-02_150405"), boardSize, boardSize)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	if playerBlack == "" {
		playerBlack = "Black"
	}
	if playerWhite == "" {
		playerWhite = "White"
	}

	rec := &GameRecord{
		FilePath:    path,
		BoardSize:   boardSize,
		PlayerBlack: playerBlack,
		PlayerWhite: playerWhite,
		Date:        now.Format("2006-01-02"),
		Result:      "?",
		file:        f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// sgfCoord converts 0-indexed board coordinates to an SGF letter pair.
// (0,0) -> "aa", (3,2) -> "dc".
func sgfCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// AddMove appends a move to the record and flushes, so a crash never
// loses play. A skipped turn is indicated by x==-1 && y==-1.
func (r *GameRecord) AddMove(x, y, color int) error {
	colorChar := "B"
	if color == 2 {
		colorChar = "W"
	}

	var node string
	if x == -1 && y == -1 {
		node = fmt.Sprintf(";%s[]", colorChar)
	} else {
		node = fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(x, y))
	}

	r.moves = append(r.moves, node)
	return r.flush()
}

// SetResult parses a game outcome string and sets the SGF RE property.
// Accepts engine output like "Black wins 40-24", "Draw 32-32" or
// "White wins by resignation" as well as already-formatted SGF like
// "B+16" or "W+R".
func (r *GameRecord) SetResult(outcome string) error {
	r.Result = parseResult(outcome)
	return r.flush()
}

// Close performs a final flush and closes the file handle. Closing an
// already-closed record does nothing.
func (r *GameRecord) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	r.file = nil
	return err
}

// flush rewrites the complete SGF file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder

	// Root node. GM[2] is the SGF game type for Othello; the starting
	// four discs follow from SZ, so no setup properties are written.
	b.WriteString("(;GM[2]FF[4]CA[UTF-8]")
	b.WriteString("AP[termello:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("PB[%s]", r.PlayerBlack))
	b.WriteString(fmt.Sprintf("PW[%s]", r.PlayerWhite))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")

	// Rewrite file from start
	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}

// parseResult converts an outcome line to an SGF RE[] value.
func parseResult(outcome string) string {
	o := strings.TrimSpace(outcome)

	// Already in SGF format
	if isValidSGFResult(o) {
		return o
	}

	low := strings.ToLower(o)

	if strings.HasPrefix(low, "draw") {
		return "0"
	}

	var winner string
	switch {
	case strings.HasPrefix(low, "white wins"):
		winner = "W"
		low = strings.TrimPrefix(low, "white wins")
	case strings.HasPrefix(low, "black wins"):
		winner = "B"
		low = strings.TrimPrefix(low, "black wins")
	default:
		return "?"
	}
	rest := strings.TrimSpace(low)

	if strings.HasPrefix(rest, "by resign") {
		return winner + "+R"
	}

	// "40-24" disc counts; the SGF result carries the margin.
	if dash := strings.Index(rest, "-"); dash != -1 {
		win, werr := strconv.Atoi(strings.TrimSpace(rest[:dash]))
		lose, lerr := strconv.Atoi(strings.TrimSpace(rest[dash+1:]))
		if werr == nil && lerr == nil && win >= lose {
			return fmt.Sprintf("%s+%d", winner, win-lose)
		}
	}

	return winner + "+?"
}

// isValidSGFResult checks if a string is already a valid SGF result.
func isValidSGFResult(s string) bool {
	if s == "?" || s == "Jigo" || s == "Void" || s == "0" {
		return true
	}
	if len(s) < 3 {
		return false
	}
	if (s[0] != 'B' && s[0] != 'W') || s[1] != '+' {
		return false
	}
	rest := s[2:]
	if rest == "R" || rest == "T" || rest == "F" || rest == "?" {
		return true
	}
	// Check for numeric score
	dotSeen := false
	for _, ch := range rest {
		if ch == '.' {
			if dotSeen {
				return false
			}
			dotSeen = true
		} else if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(rest) > 0
}
