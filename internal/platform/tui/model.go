package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// helpHeight is the number of rows reserved below the board.
const helpHeight = 1

// Options configures the terminal frontend.
type Options struct {
	Control *engine.Control
	Clock   engine.Clock // defaults to a monotonic clock
	FPS     int
	Width   int // initial terminal size, refined by WindowSizeMsg
	Height  int
	Logger  *log.Logger
}

// Model is the Bubble Tea model running the snake engine.
type Model struct {
	control *engine.Control
	clock   engine.Clock
	fps     int
	logger  *log.Logger

	geom     core.Geometry
	screen   *core.Screen
	frame    core.Frame
	pending  []string
	help     help.Model
	width    int
	height   int
	tooSmall bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given engine.
func NewModel(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicClock()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = opts.Control.Config().Loop.FPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		control: opts.Control,
		clock:   clock,
		fps:     fps,
		logger:  logger,
		screen:  core.NewScreen(0, 0),
		frame:   opts.Control.LastFrame(),
		help:    help.New(),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers a key press until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := msg.String()

	if name == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// The engine is paused while the board does not fit; only quit works.
	if m.tooSmall {
		if m.control.Keys().IsQuit(name) {
			m.control.HandleQuit()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.pending = append(m.pending, name)
	return m, nil
}

// resize recomputes the layout for a terminal of w x h characters.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w

	geom, ok := core.TerminalGeometry(m.control.Board(), w, h-helpHeight)
	m.geom = geom
	if fits := !m.tooSmall; ok != fits {
		m.logger.Debug("terminal resized", "width", w, "height", h, "fits", ok)
	}
	m.tooSmall = !ok
	m.screen.Resize(max(w, 0), max(h-helpHeight, 0))
}

// handleTick runs one engine iteration with the keys pressed since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, tickCmd(m.fps)
	}

	frame, ok := m.control.Step(m.clock.Now(), m.pending)
	m.pending = nil
	if ok {
		m.frame = frame
	}

	if m.control.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.fps)
}

// draw rasterizes the current frame into the screen buffer.
func (m *Model) draw() {
	if m.tooSmall {
		b := m.control.Board()
		m.screen.Fill(core.ColorBackground)
		cx, cy := m.screen.Width()/2, m.screen.Height()/2
		msgs := []string{
			"Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", (b.W+2)*2, b.H+2+helpHeight),
		}
		for i, s := range msgs {
			m.screen.DrawText(cx-len(s)/2, cy-1+i, s, core.ColorText, i == 0)
		}
		return
	}
	core.Rasterize(m.frame, m.geom, m.screen, core.RasterOptions{})
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	w, h := m.geom.ScreenSize()
	shot := core.NewScreen(w, h)
	geom := m.geom
	geom.OffsetX, geom.OffsetY = geom.CellW, geom.CellH
	core.Rasterize(m.frame, geom, shot, core.RasterOptions{Glyphs: true})

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(shot.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.control.Keys())
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
