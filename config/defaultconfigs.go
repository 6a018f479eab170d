package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawDiscBackground:       false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		CheckeredBoard:           true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			BlackColorAlt:     232,
			WhiteColor:        255,
			WhiteColorAlt:     255,
			HintColor:         77,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			BlackDisc:  '●',
			WhiteDisc:  '●',
			Empty:      ' ',
			Cursor:     '+',
			LastPlayed: '*',
			LegalMove:  '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			DefaultBoardSize: 8,
			ShowLegalMoves:   true,
			RecordGames:      true,
			PlayerBlack:      "Black",
			PlayerWhite:      "White",
		},
	}
}
