package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine"
)

// menuWidget is a focusable control on the setup card.
type menuWidget interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
}

// SetupMenuUI is the card-style menu for configuring and starting a
// new game.
type SetupMenuUI struct {
	box  *tview.Box
	menu *tview.Flex
	card *MenuCard

	size   *SizeSlider
	black  *NameInput
	white  *NameInput
	hints  *Toggle
	record *Toggle

	startBtn   *MenuButton
	colorsBtn  *MenuButton
	historyBtn *MenuButton
	quitBtn    *MenuButton

	order []menuWidget
	focus int

	onStart func(engine.GameConfig)
	onQuit  func()
}

const (
	setupCardWidth  = 48
	setupCardHeight = 24
)

// NewSetupMenu creates the setup menu. Field defaults come from the
// saved configuration.
func NewSetupMenu(c *config.Config, onStart func(engine.GameConfig), onColors, onHistory, onQuit func()) *SetupMenuUI {
	s := &SetupMenuUI{
		box:     tview.NewBox(),
		card:    NewMenuCard("T E R M E L L O"),
		onStart: onStart,
		onQuit:  onQuit,
	}
	s.card.SetFocused(true)

	s.size = NewSizeSlider("Board size", 4, 16, 2, c.Game.DefaultBoardSize, nil)
	s.black = NewNameInput("Black", c.Game.PlayerBlack, 12, nil)
	s.white = NewNameInput("White", c.Game.PlayerWhite, 12, nil)
	s.hints = NewToggle("Show legal moves", c.Game.ShowLegalMoves, nil)
	s.record = NewToggle("Record games", c.Game.RecordGames, nil)

	s.startBtn = NewMenuButton("Start", true, s.startGame)
	s.colorsBtn = NewMenuButton("Colors", false, onColors)
	s.historyBtn = NewMenuButton("History", false, onHistory)
	s.quitBtn = NewMenuButton("Quit", false, onQuit)

	s.order = []menuWidget{
		s.size, s.black, s.white, s.hints, s.record,
		s.startBtn, s.colorsBtn, s.historyBtn, s.quitBtn,
	}
	s.order[0].SetFocused(true)

	s.box.SetDrawFunc(s.draw)
	s.box.SetInputCapture(s.handleInput)

	// Center the card on the screen
	column := tview.NewFlex().SetDirection(tview.FlexRow)
	column.AddItem(nil, 0, 1, false)
	column.AddItem(s.box, setupCardHeight, 0, true)
	column.AddItem(nil, 0, 1, false)
	s.menu = CreateCenteredForm(column, setupCardWidth)

	return s
}

// Menu returns the centered menu container.
func (s *SetupMenuUI) Menu() *tview.Flex {
	return s.menu
}

func (s *SetupMenuUI) startGame() {
	gameCfg := engine.GameConfig{
		BoardSize:   s.size.Value(),
		PlayerBlack: s.black.Value(),
		PlayerWhite: s.white.Value(),
		ShowHints:   s.hints.On(),
	}
	if s.record.On() {
		gameCfg.RecordDir = config.HistoryDir()
	}
	s.onStart(gameCfg)
}

func (s *SetupMenuUI) setFocus(index int) {
	s.order[s.focus].SetFocused(false)
	s.focus = (index + len(s.order)) % len(s.order)
	s.order[s.focus].SetFocused(true)
}

func (s *SetupMenuUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	// The focused control gets the key first
	if s.order[s.focus].HandleKey(event) {
		return nil
	}

	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.setFocus(s.focus + 1)
		return nil
	case tcell.KeyBacktab, tcell.KeyUp:
		s.setFocus(s.focus - 1)
		return nil
	case tcell.KeyEnter:
		// Enter on a field jumps to the start button
		for i, w := range s.order {
			if w == menuWidget(s.startBtn) {
				s.setFocus(i)
				break
			}
		}
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			if s.onQuit != nil {
				s.onQuit()
			}
			return nil
		}
	}
	return event
}

func (s *SetupMenuUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	row := s.card.Draw(screen, x, y, width, height)
	innerX := x + 3
	innerW := width - 6

	row += s.size.Draw(screen, innerX, row, innerW) + 1
	row += s.black.Draw(screen, innerX, row, innerW) + 1
	row += s.white.Draw(screen, innerX, row, innerW) + 1
	row += s.hints.Draw(screen, innerX, row, innerW) + 1
	row += s.record.Draw(screen, innerX, row, innerW)

	row++
	s.card.DrawDivider(screen, x, row, width)
	row += 2

	col := innerX
	for _, btn := range []*MenuButton{s.startBtn, s.colorsBtn, s.historyBtn, s.quitBtn} {
		col += btn.Draw(screen, col, row) + 2
	}

	// Key hints at the bottom of the card
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	hint := "↑↓ move · ←→ adjust · ⏎ select"
	hintCol := x + (width-len([]rune(hint)))/2
	for _, ch := range hint {
		screen.SetContent(hintCol, row+2, ch, nil, hintStyle)
		hintCol++
	}

	return x, y, width, height
}
