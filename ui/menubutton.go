package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button component. Primary buttons carry an
// arrow marker and a green fill when focused.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

func (b *MenuButton) fullLabel() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button at the given position and returns the width
// used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.fullLabel()
	padding := 1
	width := len([]rune(label)) + padding*2

	if b.focused {
		fill := MenuColors.ButtonFocus
		if b.primary {
			fill = MenuColors.Primary
		}
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(fill)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		col := x + padding
		for _, ch := range label {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
	} else {
		dimStyle := tcell.StyleDefault.
			Foreground(MenuColors.Hint).
			Background(MenuColors.CardBG)
		bracketStyle := tcell.StyleDefault.
			Foreground(MenuColors.Border).
			Background(MenuColors.CardBG)

		screen.SetContent(x, y, '[', nil, bracketStyle)
		col := x + 1
		for _, ch := range label {
			screen.SetContent(col, y, ch, nil, dimStyle)
			col++
		}
		screen.SetContent(col, y, ']', nil, bracketStyle)
	}

	return width
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return len([]rune(b.fullLabel())) + 2
}
