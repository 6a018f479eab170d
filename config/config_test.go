package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsControlRunes(t *testing.T) {
	cfg := DefaultConfig
	cfg.Theme.Symbols.BlackDisc = 7 // BEL
	if err := cfg.Validate(); err == nil {
		t.Error("control rune should be rejected")
	}

	cfg = DefaultConfig
	cfg.Theme.Symbols.LegalMove = 127 // DEL
	if err := cfg.Validate(); err == nil {
		t.Error("DEL rune should be rejected")
	}
}

func TestValidateRejectsBadBoardSize(t *testing.T) {
	for _, size := range []int{0, 2, 3, 7, 9, -8} {
		cfg := DefaultConfig
		cfg.Game.DefaultBoardSize = size
		if err := cfg.Validate(); err == nil {
			t.Errorf("board size %d should be rejected", size)
		}
	}
	for _, size := range []int{4, 6, 8, 16} {
		cfg := DefaultConfig
		cfg.Game.DefaultBoardSize = size
		if err := cfg.Validate(); err != nil {
			t.Errorf("board size %d should be accepted: %v", size, err)
		}
	}
}

func TestSaveReadRoundTrip(t *testing.T) {
	cfg := DefaultConfig
	cfg.Game.DefaultBoardSize = 6
	cfg.Game.PlayerBlack = "Alice"
	cfg.Theme.Colors.BoardColor = 34

	path := filepath.Join(t.TempDir(), "config.json")
	saveCfgFile(path, &cfg, 0664)

	loaded := DefaultConfig
	readCfgFile(path, &loaded)

	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}
