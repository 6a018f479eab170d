package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// SizeSlider is a horizontal slider for picking a board size. It moves
// in fixed steps so only even sizes can be chosen.
type SizeSlider struct {
	label    string
	min      int
	max      int
	step     int
	value    int
	focused  bool
	onChange func(int)
}

// NewSizeSlider creates a new board size slider.
func NewSizeSlider(label string, min, max, step, initial int, onChange func(int)) *SizeSlider {
	return &SizeSlider{
		label:    label,
		min:      min,
		max:      max,
		step:     step,
		value:    initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (s *SizeSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *SizeSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if s.value-s.step >= s.min {
			s.value -= s.step
			if s.onChange != nil {
				s.onChange(s.value)
			}
		}
		return true
	case tcell.KeyRight:
		if s.value+s.step <= s.max {
			s.value += s.step
			if s.onChange != nil {
				s.onChange(s.value)
			}
		}
		return true
	}
	return false
}

// Draw renders the slider component.
// Returns the number of rows used.
func (s *SizeSlider) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	col := x

	// Focus cursor
	if s.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// Label with diamond prefix: ◈ Board size
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2

	for _, ch := range s.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 3

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	// One bar cell per selectable size
	cells := (s.max-s.min)/s.step + 1
	filled := (s.value-s.min)/s.step + 1

	for i := 0; i < cells; i++ {
		char := '░'
		style := unselectedStyle
		if i < filled {
			char = '█'
			style = selectedStyle
		}
		screen.SetContent(col, y, char, nil, style)
		col++
	}
	col++

	valueStr := fmt.Sprintf("%dx%d", s.value, s.value)
	for _, ch := range valueStr {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col++

	screen.SetContent(col, y, '▶', nil, arrowStyle)

	return 1
}

// Value returns the currently selected size.
func (s *SizeSlider) Value() int {
	return s.value
}

// SetValue sets the slider value if it lies on a step within range.
func (s *SizeSlider) SetValue(v int) {
	if v < s.min || v > s.max || (v-s.min)%s.step != 0 {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
