package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/platform/tui"
	"github.com/vovakirdan/ca-racing/internal/session"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

const logFileName = "racing.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game in the terminal.

Logs are written to racing.log in the data directory while the game runs.

Controls:
  Up/Down/w/s  - Navigate
  Left/Right   - Change a setting / move in the garage
  Enter/Space  - Select
  Esc/b        - Back
  Ctrl+S       - Save the running game
  Mouse        - Pick a car in the garage
  Q/Ctrl+C     - Quit (the running game is saved)

Examples:
  racing play
  racing play --data ~/.racing --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile, err := storage.OpenLogFile(flagDataDir, logFileName)
	if err != nil {
		fatal("could not open log file: %v", err)
	}
	defer logFile.Close()

	logger := newLogger(logFile)
	store, settings := openData(logger, true)
	app := session.New(store, settings, logger)

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = app.Settings().FrameCap()

	logger.Info("starting", "data", store.Root(), "language", app.Lang().Code(), "strings", app.Lang().Len(), "fps", cfg.TickRate)
	if err := tui.Run(app, cfg); err != nil {
		logger.Error("ui error", "error", err)
		fatal("running game: %v", err)
	}
	logger.Info("bye")
}
