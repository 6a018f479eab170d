package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the color palette for the menu screens. Accents
// lean green to match the board felt.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	BorderFocus tcell.Color // Brighter blue for focused borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Green accent for decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Green for selected items
	Unselected  tcell.Color // Dim gray for unselected items
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
	Primary     tcell.Color // Focused primary button
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(71),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(71),
	Unselected:  tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
	Primary:     tcell.PaletteColor(29),
}
