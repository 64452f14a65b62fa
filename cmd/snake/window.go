package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the board. The cell size comes from
board.cell_size in the config.

Controls:
  Arrows/WASD  - Steer
  Any key      - Leave the title and death screens
  Esc/Ctrl+C   - Quit (closing the window works too)

Examples:
  snake window
  snake window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail(err)
	}

	ctrl := engine.New(engine.Options{Config: cfg, Seed: flagSeed, Logger: logger})
	logger.Info("starting window game", "seed", ctrl.Seed(), "fps", cfg.Loop.FPS, "speed", cfg.Snake.Speed)

	if err := window.Run(window.Options{Control: ctrl, FPS: cfg.Loop.FPS, Logger: logger}); err != nil {
		fail(err)
	}
}
