package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termello/engine/othello"
	"termello/types"
)

// GameInfoPanel displays the running score and move log alongside the
// board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	playerBlack string
	playerWhite string
	moveHistory *[]MoveEntry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetPlayers sets the player names for display.
func (p *GameInfoPanel) SetPlayers(black, white string) {
	p.playerBlack = black
	p.playerWhite = white
	p.refresh()
}

// SetMoveHistory sets a pointer to the move log slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]MoveEntry) {
	p.moveHistory = history
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}

	black := p.playerBlack
	if black == "" {
		black = "Black"
	}
	white := p.playerWhite
	if white == "" {
		white = "White"
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	text += fmt.Sprintf("[white]●[-:-:-] %s: %d\n", black, p.boardState.BlackCount)
	text += fmt.Sprintf("[dimgray]○[-] %s: %d\n", white, p.boardState.WhiteCount)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.boardState.MoveNumber)

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]
			moveNum := i + 1

			colorStr := "[white]B[-]"
			if m.Color == 2 {
				colorStr = "[dimgray]W[-]"
			}

			coord := "skip"
			if m.X >= 0 && m.Y >= 0 {
				coord = othello.FormatSquare(m.X, m.Y)
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, moveNum, colorStr, coord)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info
// panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()

	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)
	infoPanel.SetPlayers(board.playerBlack, board.playerWhite)

	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered
// board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	// Default dimensions cover an 8x8 board
	boardWidth := 20
	boardHeight := 10
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4 // 2 chars per cell + coordinates
		boardHeight = board.BoardState.Height() + 2 // + coordinates
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
