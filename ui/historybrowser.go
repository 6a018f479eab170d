package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine/othello"
	"termello/sgf"
)

// HistoryBrowserUI provides a screen for browsing recorded games. The
// preview pane can be stepped through move by move.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	games    []sgf.GameInfo
	replays  map[int]*sgf.Replay // cached per game, cursor preserved
	selected int
	onDone   func()
}

// NewHistoryBrowser creates a new history browser screen.
func NewHistoryBrowser(onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		onDone:  onDone,
		replays: make(map[int]*sgf.Replay),
	}

	// Game list (left panel)
	hb.gameList = tview.NewList()
	hb.gameList.SetBorder(true)
	hb.gameList.SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false)
	hb.gameList.SetHighlightFullLine(true)
	hb.gameList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.gameList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	// Preview box (right panel)
	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Replay ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	// Hint bar
	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]←/→[-] step  [dimgray]d[-] delete  [dimgray]q[-] back")

	hb.gameList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})

	hb.gameList.SetInputCapture(hb.handleInput)

	// Layout: list left, preview right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.gameList, 38, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadGames()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.replays = make(map[int]*sgf.Replay)
	hb.loadGames()
}

// loadGames scans the history directory for game records.
func (hb *HistoryBrowserUI) loadGames() {
	hb.gameList.Clear()
	hb.games = nil
	hb.selected = 0

	games, err := sgf.ListGames(config.HistoryDir())
	if err != nil || len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games found[-]", "", 0, nil)
		return
	}

	hb.games = games
	for _, g := range games {
		result := g.Result
		if result == "" || result == "?" {
			result = "..."
		}
		label := fmt.Sprintf("%s  %dx%d  %s", g.Date, g.BoardSize, g.BoardSize, result)
		hb.gameList.AddItem(label, "", 0, nil)
	}
}

// currentReplay lazily opens the replay for the selected game.
func (hb *HistoryBrowserUI) currentReplay() *sgf.Replay {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return nil
	}
	if r, ok := hb.replays[hb.selected]; ok {
		return r
	}
	r, err := sgf.NewReplay(hb.games[hb.selected].FilePath)
	if err != nil {
		return nil
	}
	hb.replays[hb.selected] = r
	return r
}

// handleInput processes keyboard input for the history browser.
func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyLeft:
		if r := hb.currentReplay(); r != nil {
			r.Back()
		}
		return nil
	case tcell.KeyRight:
		if r := hb.currentReplay(); r != nil {
			r.Forward()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case 'h':
			if r := hb.currentReplay(); r != nil {
				r.Back()
			}
			return nil
		case 'l':
			if r := hb.currentReplay(); r != nil {
				r.Forward()
			}
			return nil
		case 'd':
			hb.deleteSelected()
			return nil
		}
	}
	return event
}

// deleteSelected removes the currently selected game file.
func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}

	game := hb.games[hb.selected]
	os.Remove(game.FilePath)

	hb.replays = make(map[int]*sgf.Replay)
	hb.loadGames()
}

// drawPreview renders the board at the replay cursor plus game
// metadata.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	r := hb.currentReplay()
	if r == nil {
		return x, y, width, height
	}

	game := hb.games[hb.selected]
	board := r.Board()
	size := len(board)
	startX := x + 2
	startY := y + 1

	// Check we have room
	if width < size*2+4 || height < size+8 {
		return x, y, width, height
	}

	curColor, curX, curY, hasCur := r.CurrentMove()

	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	justPlayed := tcell.StyleDefault.Foreground(tcell.PaletteColor(226)).Bold(true)

	for by := 0; by < size; by++ {
		for bx := 0; bx < size; bx++ {
			ch := '·'
			style := emptyStyle
			switch board[by][bx] {
			case 1:
				ch = '●'
				style = blackStyle
			case 2:
				ch = '○'
				style = whiteStyle
			}
			if hasCur && bx == curX && by == curY {
				style = justPlayed
			}
			screen.SetContent(startX+bx*2, startY+by, ch, nil, style)
			screen.SetContent(startX+bx*2+1, startY+by, ' ', nil, emptyStyle)
		}
	}

	// Metadata below the board
	infoY := startY + size + 1
	infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

	moveLabel := fmt.Sprintf("Move %d/%d", r.Position(), r.MoveCount())
	if hasCur {
		coord := "skip"
		if curX >= 0 && curY >= 0 {
			coord = othello.FormatSquare(curX, curY)
		}
		side := "B"
		if curColor == 2 {
			side = "W"
		}
		moveLabel += fmt.Sprintf("  %s %s", side, coord)
	}
	drawText(screen, startX, infoY, moveLabel, infoStyle)

	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("B: %s", game.PlayerBlack), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("W: %s", game.PlayerWhite), dimStyle)

	infoY++
	result := game.Result
	if result == "" || result == "?" {
		result = "Unfinished"
	}
	resultStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(109))
	drawText(screen, startX, infoY, fmt.Sprintf("Result: %s", result), resultStyle)

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
