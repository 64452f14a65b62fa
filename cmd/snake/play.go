package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Each board cell is two characters wide,
so a 32x32 board needs a 68x35 terminal.

Controls:
  Arrows/WASD  - Steer
  Any key      - Leave the title and death screens
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Esc/Ctrl+C   - Quit

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs would corrupt the alternate screen, so they only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail(err)
	}

	// Get terminal size early, WindowSizeMsg refines it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctrl := engine.New(engine.Options{Config: cfg, Seed: flagSeed, Logger: logger})
	logger.Info("starting terminal game", "seed", ctrl.Seed(), "fps", cfg.Loop.FPS, "speed", cfg.Snake.Speed)

	err = tui.Run(tui.Options{
		Control: ctrl,
		FPS:     cfg.Loop.FPS,
		Width:   width,
		Height:  height,
		Logger:  logger,
	})
	if err != nil {
		fail(fmt.Errorf("running game: %w", err))
	}
}
