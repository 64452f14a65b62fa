package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/scene"
)

// Options configures a Control.
type Options struct {
	Config config.Config
	// Seed for level choice and apple placement. 0 picks a time based seed.
	Seed   int64
	Keys   input.KeyMap
	Logger *log.Logger
}

// Transition records one scene switch.
type Transition struct {
	At   int64
	From scene.ID
	To   scene.ID
}

func (t Transition) String() string {
	return fmt.Sprintf("%6dms %s -> %s", t.At, t.From, t.To)
}

// Control is the single-threaded driver. Each iteration a frontend feeds it
// the pressed keys and the current time and presents the returned frame.
type Control struct {
	cfg    config.Config
	keys   input.KeyMap
	logger *log.Logger
	seed   int64

	scenes map[scene.ID]scene.Scene
	active scene.Scene
	last   core.Frame
	quit   bool

	onTransition func(Transition)
}

// New builds the scene table and activates the title scene. Levels are
// generated once here and shared by every play session.
func New(opts Options) *Control {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = input.DefaultKeyMap()
	}

	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	board := cfg.BoardSize()
	levels := game.GenerateLevels(board)
	rng := rand.New(rand.NewSource(seed))

	c := &Control{
		cfg:    cfg,
		keys:   keys,
		logger: logger,
		seed:   seed,
		scenes: map[scene.ID]scene.Scene{
			scene.IDTitle: scene.NewTitle(board, cfg.Loop.BlinkMS),
			scene.IDPlay:  scene.NewPlay(board, cfg.SnakeSettings(), levels, rng, logger),
			scene.IDDeath: scene.NewDeath(board, cfg.Loop.BlinkMS),
		},
		last: core.Frame{Background: core.ColorBackground},
	}
	c.active = c.scenes[scene.IDTitle]

	logger.Debug("control ready", "seed", seed, "levels", len(levels), "board", fmt.Sprintf("%dx%d", board.W, board.H))
	return c
}

// OnTransition registers fn to be called after every scene switch.
func (c *Control) OnTransition(fn func(Transition)) {
	c.onTransition = fn
}

// HandleKey routes one key press. Quit keys set the exit flag; every key,
// quit included, is also passed to the active scene.
func (c *Control) HandleKey(name string) {
	ev := c.keys.Event(name)
	if ev.Kind == core.EventQuit {
		c.HandleQuit()
		return
	}
	c.active.HandleEvent(ev)
}

// HandleQuit requests program exit, e.g. when the window is closed.
func (c *Control) HandleQuit() {
	if !c.quit {
		c.logger.Info("quit requested", "scene", c.active.ID())
	}
	c.quit = true
	c.active.HandleEvent(core.QuitEvent())
}

// Tick advances the active scene to now. It returns the frame to present
// and true, or false when nothing should be drawn this iteration: right
// after a switch the incoming scene has not started yet.
func (c *Control) Tick(now int64) (core.Frame, bool) {
	if !c.active.Started() {
		c.active.Start(now, c.last)
	}
	c.active.Update(now)

	if c.active.Done() {
		from := c.active
		from.Reset()
		c.active = c.scenes[from.Next()]

		t := Transition{At: now, From: from.ID(), To: c.active.ID()}
		c.logger.Info("scene changed", "from", t.From, "to", t.To, "at", now)
		if c.onTransition != nil {
			c.onTransition(t)
		}
	}

	if !c.active.Started() {
		return core.Frame{}, false
	}
	c.last = c.active.Frame()
	return c.last, true
}

// Step runs one loop iteration: drain keys, then tick.
func (c *Control) Step(now int64, keys []string) (core.Frame, bool) {
	for _, k := range keys {
		c.HandleKey(k)
	}
	return c.Tick(now)
}

// Done reports whether quit was requested.
func (c *Control) Done() bool {
	return c.quit
}

// Active returns the active scene's identifier.
func (c *Control) Active() scene.ID {
	return c.active.ID()
}

// Scene returns the scene registered under id.
func (c *Control) Scene(id scene.ID) scene.Scene {
	return c.scenes[id]
}

// LastFrame returns the most recently presented frame.
func (c *Control) LastFrame() core.Frame {
	return c.last
}

// Board returns the board size.
func (c *Control) Board() core.Board {
	return c.cfg.BoardSize()
}

// Config returns the configuration the control was built with.
func (c *Control) Config() config.Config {
	return c.cfg
}

// Keys returns the key table.
func (c *Control) Keys() input.KeyMap {
	return c.keys
}

// Seed returns the RNG seed in use.
func (c *Control) Seed() int64 {
	return c.seed
}
