// Package ui specifies custom controls for tview to assist in playing
// Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine"
	"termello/types"
)

// MoveEntry is one line of the move log shown beside the board.
type MoveEntry struct {
	X, Y  int // -1, -1 for a skipped turn
	Color int
}

type BoardUI struct {
	Box         *tview.Box
	BoardState  *types.BoardState
	hint        *tview.TextView
	cfg         *config.Config
	finished    bool
	selX        int
	selY        int
	skipped     int // player skipped by the previous move, 0 if none
	showHints   bool
	legalMoves  map[types.BoardPos]bool
	moveHistory []MoveEntry
	app         *tview.Application
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	focusMode   bool

	playerBlack string
	playerWhite string
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	prevTile := g.SelectedTile()
	if prevTile == nil {
		g.selX = g.BoardState.LastMove.X
		g.selY = g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			// No previous move made, use board center
			g.selX = g.BoardState.Width() / 2
			g.selY = g.BoardState.Height() / 2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
		showHints:  c.Game.ShowLegalMoves,
		legalMoves: map[types.BoardPos]bool{},
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.BoardState == nil || board.BoardState.Width() == 0 {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := board.BoardState.Width()*2, board.BoardState.Height()

		for boardY := 0; boardY < board.BoardState.Height(); boardY++ {
			for boardX := 0; boardX < board.BoardState.Width(); boardX++ {
				disc := board.BoardState.Board[boardY][boardX]
				i := disc
				if !board.cfg.Theme.DrawDiscBackground {
					i = 0
				}
				// Inverted color index, used behind discs
				iInv := 0
				if disc == 1 {
					iInv = 2
				} else if disc == 2 {
					iInv = 1
				}
				if board.cfg.Theme.CheckeredBoard && (boardX%2 + boardY%2) == 1 {
					i += 3
					iInv += 3
				}

				var drawRune rune
				var fgColor tcell.Color
				switch disc {
				case 1:
					drawRune = board.cfg.Theme.Symbols.BlackDisc
				case 2:
					drawRune = board.cfg.Theme.Symbols.WhiteDisc
				default:
					drawRune = board.cfg.Theme.Symbols.Empty
				}

				if disc > 0 {
					if board.cfg.Theme.DrawDiscBackground {
						fgColor = board.styles[iInv]
					} else {
						fgColor = board.styles[disc]
					}
				} else {
					fgColor = board.styles[6]
					if board.showHints && !board.finished && board.legalMoves[types.BoardPos{X: boardX, Y: boardY}] {
						drawRune = board.cfg.Theme.Symbols.LegalMove
						fgColor = board.styles[9]
					}
				}

				if boardX == board.selX && boardY == board.selY {
					if board.cfg.Theme.DrawCursorBackground {
						i = 8
					} else {
						drawRune = board.cfg.Theme.Symbols.Cursor
					}
				} else if boardX == board.BoardState.LastMove.X && boardY == board.BoardState.LastMove.Y {
					if board.cfg.Theme.DrawLastPlayedBackground {
						i = 7
					} else {
						drawRune = board.cfg.Theme.Symbols.LastPlayed
					}
				}

				drawBoardCell(screen, tcell.StyleDefault.Background(board.styles[i]).Foreground(fgColor), drawRune, boardX, boardY, x+4, y)
			}
		}
		drawCoordinates(screen, x, y, board)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// ConnectEngine connects the board to a game engine and starts the game.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.moveHistory = nil

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		if x == -1 && y == -1 {
			g.skipped = color
		} else {
			g.skipped = 0
		}
		g.BoardState = boardState
		g.moveHistory = append(g.moveHistory, MoveEntry{X: x, Y: y, Color: color})
		g.updateLegalMoves()
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.legalMoves = map[types.BoardPos]bool{}
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.BoardState = e.GetBoardState()
	g.updateLegalMoves()
	g.refreshHint()
	return nil
}

// PlayMove places a disc at the given coordinates for the player on
// turn. Illegal squares are ignored; the board simply stays as it is.
func (g *BoardUI) PlayMove(x, y int) {
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(x, y); err != nil {
		return
	}
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 9
	}
	g.cfg = c
}

// SetShowHints enables or disables the legal move marks.
func (g *BoardUI) SetShowHints(show bool) {
	g.showHints = show
	g.updateLegalMoves()
}

// SetPlayers sets the player names on the info panel. The names stick
// across layout rebuilds.
func (g *BoardUI) SetPlayers(black, white string) {
	g.playerBlack = black
	g.playerWhite = white
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(black, white)
	}
}

func (g *BoardUI) updateLegalMoves() {
	moves := map[types.BoardPos]bool{}
	if g.eng != nil && !g.finished && g.showHints {
		for _, pos := range g.eng.LegalMoves() {
			moves[pos] = true
		}
	}
	g.legalMoves = moves
}

func (g *BoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Over ─────────\n\n"
		turnLine = fmt.Sprintf("  %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		if g.skipped != 0 {
			name := "Black"
			if g.skipped == 2 {
				name = "White"
			}
			statusLine = fmt.Sprintf("  ◌ %s has no move and is skipped\n\n", name)
		}

		if g.eng != nil && g.eng.IsMyTurn() {
			disc := "●"
			name := "Black"
			if g.eng.ActivePlayer() == 2 {
				disc = "○"
				name = "White"
			}
			turnLine = fmt.Sprintf("  %s %s to move   ● %d  ○ %d\n",
				disc, name, g.BoardState.BlackCount, g.BoardState.WhiteCount)
		}

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
         f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// drawBoardCell draws one board square (2 characters wide)
func drawBoardCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('a')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[8])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[7])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	// Row 1 is at the top of the board
	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + (displayNum-(displayNum%10))/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+(displayNum%10)), nil, _style)
	}
	s.Show()
}
