package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

var flagShowFrame bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a recorded input script headlessly",
	Long: `Run the game against a simulated clock and a scripted list of key
presses, then print the scene transitions and the last frame as text.

The script's seed overrides --seed so a replay is always reproducible.

Script format:
  seed: 42
  fps: 60            # optional, defaults to the config
  duration_ms: 6000  # optional, defaults to the last event
  events:
    - {at: 100, key: enter}
    - {at: 400, key: left}
    - {at: 9000, quit: true}

Examples:
  snake replay run.yaml
  snake replay run.yaml --frame=false`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagShowFrame, "frame", true, "Print the last frame")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail(err)
	}

	script, err := engine.LoadScript(args[0])
	if err != nil {
		fail(err)
	}

	res := engine.Replay(cfg, script, logger)

	fmt.Printf("Replay of %s (seed %d)\n", args[0], script.Seed)
	fmt.Println()
	if len(res.Transitions) == 0 {
		fmt.Println("  no scene changes")
	}
	for _, t := range res.Transitions {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println()
	fmt.Printf("Final scene: %s after %d iterations (%dms)", res.Final, res.Iterations, res.EndedAt)
	if res.Quit {
		fmt.Print(", quit")
	}
	fmt.Println()

	if flagShowFrame {
		fmt.Println()
		fmt.Println(textFrame(res.Frame, cfg.BoardSize()))
	}
}

// textFrame draws f one character per cell, walls included.
func textFrame(f core.Frame, b core.Board) string {
	geom := core.Geometry{Board: b, CellW: 1, CellH: 1, OffsetX: 1, OffsetY: 1}
	w, h := geom.ScreenSize()
	s := core.NewScreen(w, h)
	core.Rasterize(f, geom, s, core.RasterOptions{Glyphs: true})
	return s.String()
}
