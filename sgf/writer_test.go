package sgf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "aa"},
		{3, 2, "dc"}, // d3, the classic opening
		{2, 4, "ce"},
		{7, 7, "hh"},
	}
	for _, tt := range tests {
		got := sgfCoord(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Already SGF format
		{"B+16", "B+16"},
		{"W+R", "W+R"},
		{"?", "?"},
		{"0", "0"},

		// Engine outcome lines
		{"Black wins 40-24", "B+16"},
		{"White wins 33-31", "W+2"},
		{"Black wins by resignation", "B+R"},
		{"White wins by resignation", "W+R"},
		{"Draw 32-32", "0"},

		// Edge cases
		{"Black wins", "B+?"},
		{"something else", "?"},
		{"", "?"},
	}
	for _, tt := range tests {
		got := parseResult(tt.input)
		if got != tt.want {
			t.Errorf("parseResult(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	// File should exist
	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("SGF file not created")
	}

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	for _, prop := range []string{"GM[2]", "FF[4]", "SZ[8]", "PB[Alice]", "PW[Bob]", "RE[?]"} {
		if !strings.Contains(s, prop) {
			t.Errorf("SGF missing property %s in:\n%s", prop, s)
		}
	}

	if !strings.HasPrefix(s, "(;") {
		t.Error("SGF should start with '(;'")
	}
	if !strings.Contains(s, ")") {
		t.Error("SGF should contain closing ')'")
	}
}

func TestNewGameRecordDefaultNames(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "", "")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	if !strings.Contains(s, "PB[Black]") {
		t.Error("Empty black name should fall back to PB[Black]")
	}
	if !strings.Contains(s, "PW[White]") {
		t.Error("Empty white name should fall back to PW[White]")
	}
}

func TestAddMove(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(3, 2, 1) // B[dc]
	rec.AddMove(2, 4, 2) // W[ce]
	rec.AddMove(3, 5, 1) // B[df]

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	for _, move := range []string{";B[dc]", ";W[ce]", ";B[df]"} {
		if !strings.Contains(s, move) {
			t.Errorf("SGF missing move %s in:\n%s", move, s)
		}
	}
}

func TestAddMoveSkip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 4, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(0, 1, 1)   // B[ab]
	rec.AddMove(-1, -1, 2) // W[] skipped turn
	rec.AddMove(3, 2, 1)   // B[dc]

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	if !strings.Contains(s, ";B[ab]") {
		t.Error("Missing first move")
	}
	if strings.Count(s, ";W[]") != 1 {
		t.Error("Should have exactly one white skip")
	}
	if strings.Contains(s, ";B[]") {
		t.Error("Should have no black skip")
	}
}

func TestSetResult(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(3, 2, 1)
	rec.SetResult("Black wins 40-24")

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	if !strings.Contains(s, "RE[B+16]") {
		t.Errorf("Expected RE[B+16] in:\n%s", s)
	}
}

func TestFullGameRoundtrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	// A real opening: d3 c5 d6 e3 f3 e2 f5.
	moves := [][3]int{
		{3, 2, 1},
		{2, 4, 2},
		{3, 5, 1},
		{4, 2, 2},
		{5, 2, 1},
		{4, 1, 2},
		{5, 4, 1},
	}
	for _, m := range moves {
		if err := rec.AddMove(m[0], m[1], m[2]); err != nil {
			t.Fatalf("AddMove(%d,%d,%d): %v", m[0], m[1], m[2], err)
		}
	}

	rec.SetResult("White wins by resignation")
	rec.Close()

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	if !strings.HasPrefix(s, "(;GM[2]") {
		t.Error("Should start with an Othello SGF header")
	}
	if !strings.HasSuffix(strings.TrimSpace(s), ")") {
		t.Error("Should end with closing paren")
	}

	expected := []string{";B[dc]", ";W[ce]", ";B[df]", ";W[ec]", ";B[fc]", ";W[eb]", ";B[fe]"}
	for _, m := range expected {
		if !strings.Contains(s, m) {
			t.Errorf("Missing move %s in:\n%s", m, s)
		}
	}

	if !strings.Contains(s, "RE[W+R]") {
		t.Errorf("Missing result RE[W+R] in:\n%s", s)
	}
}

func TestFilenameFormat(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 6, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	base := filepath.Base(rec.FilePath)
	if !strings.HasSuffix(base, "_6x6.sgf") {
		t.Errorf("Filename should end with _6x6.sgf, got %s", base)
	}
	if !strings.HasPrefix(base, "20") {
		t.Errorf("Filename should start with year, got %s", base)
	}
}

func TestCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestCrashSafety(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	// Add moves without closing
	rec.AddMove(3, 2, 1)
	rec.AddMove(2, 4, 2)

	// The file must be complete valid SGF after every flush
	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	if !strings.HasPrefix(s, "(;") {
		t.Error("File should be valid SGF even without Close()")
	}
	if !strings.Contains(s, ")") {
		t.Error("File should have closing paren even without Close()")
	}
	if !strings.Contains(s, ";B[dc]") {
		t.Error("File should contain moves even without Close()")
	}

	rec.Close()
}
