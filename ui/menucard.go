package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuCard renders the rounded-border card chrome the menu screens
// share: background fill, borders, a decorated title and a divider.
type MenuCard struct {
	title   string
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{title: title}
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

func (c *MenuCard) borderStyle() tcell.Style {
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	return tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
}

// Draw renders the card chrome into the given rectangle and returns
// the first row available for content.
func (c *MenuCard) Draw(screen tcell.Screen, x, y, width, height int) int {
	if width < 10 || height < 5 {
		return y
	}

	borderStyle := c.borderStyle()
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	// Fill background
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// Rounded corners: ╭───╮ on top, ╰───╯ on the bottom
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.title == "" {
		return y + 1
	}

	// Title centered on row y+2 with a disc decoration: ● TERMELLO
	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	fullTitle := "●  " + c.title
	titleLen := len([]rune(fullTitle))
	titleX := x + (width-titleLen)/2
	titleY := y + 2

	screen.SetContent(titleX, titleY, '●', nil, accentStyle)
	col := titleX + 3
	for _, ch := range c.title {
		screen.SetContent(col, titleY, ch, nil, titleStyle)
		col++
	}

	c.DrawDivider(screen, x, y+4, width)
	return y + 6
}

// DrawDivider draws a horizontal divider across the card at divY.
func (c *MenuCard) DrawDivider(screen tcell.Screen, x, divY, width int) {
	borderStyle := c.borderStyle()
	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}
