package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the built-in wall layouts",
	Long: `Print every wall layout for the configured board size together with
the snake's starting position. Each play session picks one at random.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail(err)
	}

	b := cfg.BoardSize()
	levels := game.GenerateLevels(b)
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	start := cfg.SnakeSettings().InitialBody()
	fmt.Printf("Levels for a %dx%d board:\n", b.W, b.H)
	for i, lvl := range levels {
		fmt.Println()
		fmt.Printf("  %d. %s (%d wall cells)\n", i+1, lvl.Name, lvl.Walls.Len())
		fmt.Println()
		fmt.Println(textFrame(levelFrame(b, lvl, start), b))
	}

	fmt.Println()
	fmt.Println("Legend: # wall, @ head, o body")
}

// levelFrame builds a frame showing lvl's walls and the starting snake.
func levelFrame(b core.Board, lvl game.Level, body []core.Cell) core.Frame {
	f := core.Frame{Background: core.ColorBackground}
	for _, c := range game.NewWalls(b, lvl).Cells() {
		f.Cells = append(f.Cells, core.DrawCell{Cell: c, Color: core.ColorWall})
	}
	for i, c := range body {
		color := core.ColorSnake
		if i == len(body)-1 {
			color = core.ColorHead
		}
		f.Cells = append(f.Cells, core.DrawCell{Cell: c, Color: color})
	}
	return f
}
