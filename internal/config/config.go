// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all start-time settings. Nothing here changes while the
// program runs.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Snake SnakeConfig `yaml:"snake"`
	Loop  LoopConfig  `yaml:"loop"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // pixels, window frontend only
}

// SnakeConfig defines snake movement and growth.
type SnakeConfig struct {
	Speed          int `yaml:"speed"` // cells per second
	GrowthPerApple int `yaml:"growth_per_apple"`
	InputQueue     int `yaml:"input_queue"`
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
}

// LoopConfig defines the control loop timing.
type LoopConfig struct {
	FPS     int `yaml:"fps"`
	BlinkMS int `yaml:"blink_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    32,
			Height:   32,
			CellSize: 16,
		},
		Snake: SnakeConfig{
			Speed:          8,
			GrowthPerApple: 3,
			InputQueue:     5,
			StartX:         10,
			StartY:         25,
		},
		Loop: LoopConfig{
			FPS:     60,
			BlinkMS: 200,
		},
	}
}

// BoardSize returns the board dimensions.
func (c Config) BoardSize() core.Board {
	return core.Board{W: c.Board.Width, H: c.Board.Height}
}

// SnakeSettings converts the snake section for the simulation.
func (c Config) SnakeSettings() game.SnakeSettings {
	return game.SnakeSettings{
		Start:          core.C(c.Snake.StartX, c.Snake.StartY),
		Direction:      core.DirUp,
		Speed:          c.Snake.Speed,
		GrowthPerApple: c.Snake.GrowthPerApple,
		QueueSize:      c.Snake.InputQueue,
	}
}

// Validate checks ranges and that the snake spawns on open board cells for
// every generated level.
func (c Config) Validate() error {
	checks := []struct {
		name     string
		val      int
		min, max int
	}{
		{"board.width", c.Board.Width, 8, 256},
		{"board.height", c.Board.Height, 8, 256},
		{"board.cell_size", c.Board.CellSize, 4, 64},
		{"snake.speed", c.Snake.Speed, 1, 60},
		{"snake.growth_per_apple", c.Snake.GrowthPerApple, 0, 100},
		{"snake.input_queue", c.Snake.InputQueue, 1, 64},
		{"loop.fps", c.Loop.FPS, 1, 240},
		{"loop.blink_ms", c.Loop.BlinkMS, 1, 10000},
	}
	for _, ch := range checks {
		if ch.val < ch.min || ch.val > ch.max {
			return fmt.Errorf("%w: %s = %d, must be in [%d, %d]", ErrInvalidConfig, ch.name, ch.val, ch.min, ch.max)
		}
	}

	board := c.BoardSize()
	settings := c.SnakeSettings()
	for _, cell := range settings.InitialBody() {
		if !board.InBounds(cell) {
			return fmt.Errorf("%w: snake start (%d, %d) is off the board", ErrInvalidConfig, cell.X, cell.Y)
		}
	}
	for _, lvl := range game.GenerateLevels(board) {
		for _, cell := range settings.InitialBody() {
			if lvl.Walls.Has(cell) {
				return fmt.Errorf("%w: snake start (%d, %d) is inside level %q", ErrInvalidConfig, cell.X, cell.Y, lvl.Name)
			}
		}
	}
	return nil
}
