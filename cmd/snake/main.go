// snake is a single-screen snake arcade game for the terminal and the desktop.
//
// Usage:
//
//	snake                    - Play in the terminal (same as "snake play")
//	snake play               - Play in the terminal
//	snake window             - Play in a desktop window
//	snake replay <script>    - Run a recorded input script headlessly
//	snake levels             - Show the built-in wall layouts
//
// Global flags:
//
//	--config <path>       - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--difficulty <name>   - easy, normal or hard
//	--seed <value>        - RNG seed for reproducible games
//	--fps <rate>          - Override the loop rate
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/logging"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, avoid walls",
	Long: `Snake is a single-screen arcade game. Steer the snake to the apples,
grow, and stay clear of the walls and your own tail.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  replay   - Run a recorded input script without a display
  levels   - Show the built-in wall layouts

Examples:
  snake
  snake play --difficulty hard
  snake window --seed 42
  snake replay ./testdata/run.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 0, "Loop rate in frames per second (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger writes to --log-file when set, otherwise to fallback. The
// returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}
	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

// loadConfig resolves the configuration and applies command line overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS < 0 {
		return cfg, fmt.Errorf("--fps must not be negative")
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	return cfg, cfg.Validate()
}
