package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
)

// ColorConfigUI provides a color configuration screen with a live
// board preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedBoard int
	selectedAlt   int
	editingAlt    bool // true = editing the alternate squares
}

// Board colors to choose from (felt tones first, then woods and grays)
var boardColors = []struct {
	code int
	name string
}{
	{28, "Felt Green"},
	{22, "Dark Green"},
	{29, "Spruce"},
	{30, "Teal Green"},
	{64, "Olive"},
	{70, "Bright Green"},
	{23, "Deep Teal"},
	{24, "Sea Blue"},
	{17, "Navy"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{109, "Slate Blue"},
	{244, "Medium Gray"},
	{236, "Charcoal"},
}

// Alternate square colors (darker shades that pair with the above)
var altColors = []struct {
	code int
	name string
}{
	{22, "Dark Green"},
	{28, "Felt Green"},
	{23, "Deep Teal"},
	{58, "Dark Olive"},
	{65, "Sage"},
	{24, "Sea Blue"},
	{17, "Navy"},
	{52, "Maroon"},
	{95, "Walnut"},
	{137, "Light Brown"},
	{101, "Khaki"},
	{240, "Gray"},
	{238, "Dark Gray"},
	{235, "Charcoal"},
	{16, "True Black"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedBoard: cfg.Theme.Colors.BoardColor,
		selectedAlt:   cfg.Theme.Colors.BoardColorAlt,
		editingAlt:    false,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Selection change updates the preview
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingAlt {
			if index >= 0 && index < len(altColors) {
				cc.selectedAlt = altColors[index].code
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.selectedBoard = boardColors[index].code
			}
		}
	})

	// Selection confirm applies the color
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingAlt {
			if index >= 0 && index < len(altColors) {
				cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedAlt
				cc.cfg.Save()
				// Switch back to the main board color
				cc.editingAlt = false
				cc.populateColorList()
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.cfg.Theme.Colors.BoardColor = cc.selectedBoard
				cc.cfg.Save()
				onDone()
			}
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list for the current editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingAlt {
		cc.colorList.SetTitle(" Alternate Squares (Tab: main) ")
		for i, c := range altColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range altColors {
			if c.code == cc.selectedAlt {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Board Color (Tab: alternate) ")
		for i, c := range boardColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range boardColors {
			if c.code == cc.selectedBoard {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardStyle := tcell.StyleDefault.Background(tcell.PaletteColor(cc.selectedBoard))
	altStyle := tcell.StyleDefault.Background(tcell.PaletteColor(cc.selectedAlt))
	blackColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	whiteColor := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)

	startX := x + 2
	startY := y + 1
	size := 6

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	// The opening position plus a few extra discs so both colors show
	// on both square shades
	discs := map[[2]int]int{
		{2, 2}: 2,
		{3, 2}: 1,
		{2, 3}: 1,
		{3, 3}: 2,
		{4, 2}: 1,
		{1, 3}: 2,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := boardStyle
			if (col%2 + row%2) == 1 {
				style = altStyle
			}

			char := ' '
			if discColor, ok := discs[[2]int{col, row}]; ok {
				char = '●'
				if discColor == 1 {
					style = style.Foreground(blackColor)
				} else {
					style = style.Foreground(whiteColor)
				}
			}

			screenX := startX + col*2
			screenY := startY + row
			screen.SetContent(screenX, screenY, char, nil, style)
			screen.SetContent(screenX+1, screenY, ' ', nil, style)
		}
	}

	// Color info below the preview
	infoStyle := tcell.StyleDefault
	var info string
	if cc.editingAlt {
		info = fmt.Sprintf("Alt: %d  Board: %d", cc.selectedAlt, cc.selectedBoard)
	} else {
		info = fmt.Sprintf("Board: %d  Alt: %d", cc.selectedBoard, cc.selectedAlt)
	}
	col := startX
	for _, ch := range info {
		if col >= x+width-1 {
			break
		}
		screen.SetContent(col, startY+size+1, ch, nil, infoStyle)
		col++
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between main and alternate square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingAlt = !cc.editingAlt
	cc.populateColorList()
}
