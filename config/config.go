package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termello/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	HintColor         int `json:"hint"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackDisc  rune `json:"black"`
	WhiteDisc  rune `json:"white"`
	Empty      rune `json:"empty"`
	Cursor     rune `json:"cursor"`
	LastPlayed rune `json:"last_played"`
	LegalMove  rune `json:"legal_move"`
}

type Theme struct {
	DrawDiscBackground       bool          `json:"draw_disc_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	CheckeredBoard           bool          `json:"checkered_board"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings a new game starts from.
type GameDefaults struct {
	DefaultBoardSize int    `json:"default_board_size"`
	ShowLegalMoves   bool   `json:"show_legal_moves"`
	RecordGames      bool   `json:"record_games"`
	PlayerBlack      string `json:"player_black"`
	PlayerWhite      string `json:"player_white"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// HistoryDir returns the directory finished game records are written to.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, "termello", "games")
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackDisc, c.Theme.Symbols.WhiteDisc, c.Theme.Symbols.Empty, c.Theme.Symbols.LegalMove} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.DefaultBoardSize < 4 || c.Game.DefaultBoardSize%2 != 0 {
		return &InvalidConfig{"Board size must be an even number, 4 or larger"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
