// Package window provides the Ebiten frontend: a fixed-size pixel window
// with square cells and proportional fonts.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Title is the window caption.
const Title = "Snake"

// Options configures the window frontend.
type Options struct {
	Control *engine.Control
	Clock   engine.Clock // defaults to a monotonic clock
	FPS     int
	Logger  *log.Logger
}

// Game implements ebiten.Game on top of the engine.
type Game struct {
	control *engine.Control
	clock   engine.Clock
	logger  *log.Logger
	geom    core.Geometry

	frame core.Frame
	keys  []ebiten.Key
	large font.Face
	small font.Face
}

// New creates the window game and loads its fonts.
func New(opts Options) (*Game, error) {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cellSize := opts.Control.Config().Board.CellSize
	large, err := loadFace(gobold.TTF, float64(cellSize)*6)
	if err != nil {
		return nil, fmt.Errorf("window: failed to load bold font: %w", err)
	}
	small, err := loadFace(goregular.TTF, float64(cellSize)*3)
	if err != nil {
		return nil, fmt.Errorf("window: failed to load regular font: %w", err)
	}

	return &Game{
		control: opts.Control,
		clock:   clock,
		logger:  logger,
		geom:    core.PixelGeometry(opts.Control.Board(), cellSize),
		frame:   opts.Control.LastFrame(),
		large:   large,
		small:   small,
	}, nil
}

// Update runs one engine iteration with the keys pressed since the last one.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.control.HandleQuit()
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	names := make([]string, 0, len(g.keys))
	for _, k := range g.keys {
		if name, ok := KeyName(k, ctrl); ok {
			names = append(names, name)
		}
	}

	frame, ok := g.control.Step(g.clock.Now(), names)
	if ok {
		g.frame = frame
	}

	if g.control.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the last frame. Ebiten may call it between updates, so it
// only reads state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(g.frame.Background))

	for _, cells := range [][]core.DrawCell{g.frame.Backdrop, g.frame.Cells} {
		for _, dc := range cells {
			r := g.geom.CellRect(dc.Cell)
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(dc.Color), false)
		}
	}

	cx, cy := g.geom.PlayRect().Center()
	for _, o := range g.frame.Overlays {
		face := g.small
		if o.Size == core.TextLarge {
			face = g.large
		}
		// Draw takes the baseline; center the text's bounds on the row.
		bounds := text.BoundString(face, o.Text)
		x := cx - bounds.Min.X - bounds.Dx()/2
		y := cy + o.Row*g.geom.CellH - bounds.Min.Y - bounds.Dy()/2
		text.Draw(screen, o.Text, face, x, y, rgba(o.Color))
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.geom.ScreenSize()
}

// Run opens the window and blocks until the program quits.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = opts.Control.Config().Loop.FPS
	}

	w, h := g.geom.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(fps)
	ebiten.SetWindowClosingHandled(true)

	g.logger.Info("window opened", "width", w, "height", h, "tps", fps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func rgba(c core.Color) color.RGBA {
	r, gr, b := c.RGB()
	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}
