// termello is a terminal application for playing Othello, two players
// at one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/donyori/gorecover"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine"
	"termello/engine/othello"
	"termello/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize = flag.Int("size", 0, "Board size (even, 4-16)")
	flagBlack     = flag.String("black", "", "Name of the black player")
	flagWhite     = flag.String("white", "", "Name of the white player")
	flagNoHints   = flag.Bool("nohints", false, "Hide legal move marks")
	flagNoRecord  = flag.Bool("norecord", false, "Do not record the game")
	flagQuick     = flag.Bool("play", false, "Start a game immediately with defaults")
	flagFocus     = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion   = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termello %s\n", Version)
		return
	}

	// tview restores the screen before re-raising panics; recover here
	// so they surface as plain errors instead of stack traces.
	err := gorecover.Recover(func() {
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		return err
	}

	// Check if quick start requested
	quickStart := *flagQuick || *flagBoardSize > 0 || *flagBlack != "" || *flagWhite != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termello ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("menu")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.X, selTile.Y)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// History browser screen
	historyBrowser := ui.NewHistoryBrowser(func() {
		rootPage.SwitchToPage("menu")
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("menu")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Setup menu
	setupMenu := ui.NewSetupMenu(cfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			historyBrowser.Refresh()
			rootPage.SwitchToPage("history")
		},
		func() {
			app.Stop()
		},
	)

	// Add pages - start on the menu by default, or gameview if quick start
	rootPage.AddPage("menu", setupMenu.Menu(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	rootPage.AddPage("history", historyBrowser.Flex(), true, false)

	// Quick start if flags provided
	if quickStart {
		startGame(buildGameConfigFromFlags())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	return app.SetRoot(rootPage, true).Run()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.SetShowHints(gameCfg.ShowHints)
	gameBoard.SetPlayers(gameCfg.PlayerBlack, gameCfg.PlayerWhite)

	eng := othello.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	// Start with the saved defaults
	gameCfg := engine.GameConfig{
		BoardSize:   cfg.Game.DefaultBoardSize,
		PlayerBlack: cfg.Game.PlayerBlack,
		PlayerWhite: cfg.Game.PlayerWhite,
		ShowHints:   cfg.Game.ShowLegalMoves,
	}
	if cfg.Game.RecordGames {
		gameCfg.RecordDir = config.HistoryDir()
	}

	// Override with flags
	if *flagBoardSize >= 4 && *flagBoardSize%2 == 0 {
		gameCfg.BoardSize = *flagBoardSize
	}
	if *flagBlack != "" {
		gameCfg.PlayerBlack = *flagBlack
	}
	if *flagWhite != "" {
		gameCfg.PlayerWhite = *flagWhite
	}
	if *flagNoHints {
		gameCfg.ShowHints = false
	}
	if *flagNoRecord {
		gameCfg.RecordDir = ""
	}

	return gameCfg
}
