package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// GameInfo holds metadata parsed from an SGF file header.
type GameInfo struct {
	FilePath    string
	FileName    string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	MoveCount   int
}

// ParseHeader reads an SGF file and extracts metadata from the root node.
func ParseHeader(filePath string) (*GameInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	props := parseProperties(content)

	boardSize := 8
	if v, ok := props["SZ"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			boardSize = n
		}
	}

	info := &GameInfo{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		BoardSize:   boardSize,
		PlayerBlack: props["PB"],
		PlayerWhite: props["PW"],
		Date:        props["DT"],
		Result:      props["RE"],
		MoveCount:   countMoves(content),
	}

	return info, nil
}

// ReplayToEnd parses an SGF file and replays all moves to produce the
// final position. Returns the board (board[y][x], 0=empty, 1=black,
// 2=white) and the move count, skipped turns included.
func ReplayToEnd(filePath string) ([][]int, int, error) {
	r, err := NewReplay(filePath)
	if err != nil {
		return nil, 0, err
	}
	return r.Board(), r.MoveCount(), nil
}

// parseMoves returns all moves in an SGF file as (color, x, y) triples,
// with x, y == -1 for a skipped turn.
func parseMoves(filePath string) ([][3]int, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	nodes := parseNodes(string(data))
	var moves [][3]int
	for _, node := range nodes {
		color, x, y, ok := parseMoveNode(node)
		if !ok {
			continue
		}
		moves = append(moves, [3]int{color, x, y})
	}
	return moves, nil
}

// parseProperties extracts KEY[value] pairs from the root node of an SGF string.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	// Find the root node: starts after "(;"
	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2 // skip "(;"

	// Root node ends at the next ";" or ")"
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	root := content[start:end]
	extractProps(root, props)
	return props
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		// Skip whitespace
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		// Read property identifier (uppercase letters)
		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		// Read all property values (e.g., PB[Alice])
		for i < len(node) && node[i] == '[' {
			i++ // skip '['
			valStart := i
			for i < len(node) && node[i] != ']' {
				if node[i] == '\\' && i+1 < len(node) {
					i++ // skip escaped char
				}
				i++
			}
			val := node[valStart:i]
			if i < len(node) {
				i++ // skip ']'
			}
			props[key] = val // last value wins for simple props
		}
	}
}

// countMoves counts the number of move nodes (;B[...] or ;W[...]) in the SGF.
func countMoves(content string) int {
	count := 0
	i := 0
	for i < len(content) {
		if content[i] == ';' && i+1 < len(content) {
			next := content[i+1]
			if (next == 'B' || next == 'W') && i+2 < len(content) && content[i+2] == '[' {
				count++
			}
		}
		i++
	}
	return count
}

// parseNodes returns all node strings after the root node.
func parseNodes(content string) []string {
	var nodes []string

	// Find first ";" after "(;"
	start := strings.Index(content, "(;")
	if start == -1 {
		return nodes
	}
	start += 2

	// Skip root node to find subsequent ";"
	i := start
	for i < len(content) {
		if content[i] == ';' {
			break
		}
		if content[i] == '[' {
			// Skip value
			i++
			for i < len(content) && content[i] != ']' {
				if content[i] == '\\' && i+1 < len(content) {
					i++
				}
				i++
			}
		}
		i++
	}

	// Now parse subsequent nodes
	for i < len(content) {
		if content[i] == ';' {
			nodeStart := i
			i++
			// Read until next ';' or ')'
			for i < len(content) && content[i] != ';' && content[i] != ')' {
				if content[i] == '[' {
					i++
					for i < len(content) && content[i] != ']' {
						if content[i] == '\\' && i+1 < len(content) {
							i++
						}
						i++
					}
				}
				i++
			}
			nodes = append(nodes, content[nodeStart:i])
		} else {
			i++
		}
	}

	return nodes
}

// parseMoveNode extracts color and coordinates from a move node like ";B[dc]".
// Returns color (1=black, 2=white), x, y, and whether it's a valid move node.
// Skipped turns return x=-1, y=-1.
func parseMoveNode(node string) (color, x, y int, ok bool) {
	node = strings.TrimSpace(node)
	if len(node) < 2 || node[0] != ';' {
		return 0, 0, 0, false
	}

	ch := node[1]
	if ch != 'B' && ch != 'W' {
		return 0, 0, 0, false
	}

	color = 1
	if ch == 'W' {
		color = 2
	}

	// Find the value in brackets
	bracketStart := strings.Index(node, "[")
	bracketEnd := strings.Index(node, "]")
	if bracketStart == -1 || bracketEnd == -1 || bracketEnd <= bracketStart {
		return 0, 0, 0, false
	}

	coord := node[bracketStart+1 : bracketEnd]
	if coord == "" {
		// Skipped turn
		return color, -1, -1, true
	}

	if len(coord) != 2 {
		return 0, 0, 0, false
	}

	x = int(coord[0] - 'a')
	y = int(coord[1] - 'a')
	return color, x, y, true
}

// ListGames scans a directory for .sgf files and returns their parsed headers,
// sorted newest-first (by filename, which contains timestamps).
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var games []GameInfo
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sgf") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := ParseHeader(path)
		if err != nil {
			continue
		}
		games = append(games, *info)
	}

	return games, nil
}
