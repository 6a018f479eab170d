package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Toggle is a two-state switch drawn on a single row.
type Toggle struct {
	label    string
	on       bool
	focused  bool
	onChange func(bool)
}

// NewToggle creates a new toggle.
func NewToggle(label string, initial bool, onChange func(bool)) *Toggle {
	return &Toggle{
		label:    label,
		on:       initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (t *Toggle) SetFocused(focused bool) {
	t.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (t *Toggle) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft, tcell.KeyRight:
		t.flip()
		return true
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			t.flip()
			return true
		}
	}
	return false
}

func (t *Toggle) flip() {
	t.on = !t.on
	if t.onChange != nil {
		t.onChange(t.on)
	}
}

// Draw renders the toggle component.
// Returns the number of rows used.
func (t *Toggle) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	col := x

	// Focus cursor
	if t.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// Label with diamond prefix: ◈ Show hints
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2

	for _, ch := range t.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 3

	state := "○ off"
	style := unselectedStyle
	if t.on {
		state = "● on"
		style = selectedStyle
	}
	for _, ch := range state {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}

	return 1
}

// On returns the current state.
func (t *Toggle) On() bool {
	return t.on
}

// SetOn sets the state.
func (t *Toggle) SetOn(on bool) {
	if t.on != on {
		t.flip()
	}
}
