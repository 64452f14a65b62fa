package engine

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scene"
)

// Script is a recorded input sequence for a headless run.
type Script struct {
	Seed       int64         `yaml:"seed"`
	FPS        int           `yaml:"fps"`
	DurationMS int64         `yaml:"duration_ms"`
	Events     []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one key press, or a quit request, at a point in time.
type ScriptEvent struct {
	At   int64  `yaml:"at"`
	Key  string `yaml:"key,omitempty"`
	Quit bool   `yaml:"quit,omitempty"`
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: failed to parse script: %w", err)
	}
	if s.Seed == 0 {
		return Script{}, errors.New("replay: script needs a non-zero seed")
	}
	if s.FPS < 0 || s.DurationMS < 0 {
		return Script{}, errors.New("replay: fps and duration_ms must not be negative")
	}
	for i, ev := range s.Events {
		if ev.At < 0 {
			return Script{}, fmt.Errorf("replay: event %d has negative time", i)
		}
		if ev.Key == "" && !ev.Quit {
			return Script{}, fmt.Errorf("replay: event %d at %dms has neither key nor quit", i, ev.At)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].At < s.Events[j].At
	})
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	return ParseScript(data)
}

// Result summarizes a replay.
type Result struct {
	Transitions []Transition
	Frame       core.Frame // last presented frame
	Final       scene.ID
	Iterations  int
	EndedAt     int64
	Quit        bool
}

// Replay runs the control loop against s with a simulated clock: iteration
// i happens at i*1000/fps ms and receives every event due by then. The run
// ends at the script duration or on quit, whichever comes first. A zero fps
// uses the configured rate; a zero duration ends after the last event.
func Replay(cfg config.Config, s Script, logger *log.Logger) Result {
	fps := s.FPS
	if fps == 0 {
		fps = cfg.Loop.FPS
	}
	duration := s.DurationMS
	if duration == 0 && len(s.Events) > 0 {
		duration = s.Events[len(s.Events)-1].At
	}

	c := New(Options{Config: cfg, Seed: s.Seed, Logger: logger})
	var res Result
	c.OnTransition(func(t Transition) {
		res.Transitions = append(res.Transitions, t)
	})

	next := 0
	for i := 0; ; i++ {
		now := int64(i) * 1000 / int64(fps)
		if now > duration {
			break
		}

		for ; next < len(s.Events) && s.Events[next].At <= now; next++ {
			if ev := s.Events[next]; ev.Quit {
				c.HandleQuit()
			} else {
				c.HandleKey(ev.Key)
			}
		}

		if frame, ok := c.Tick(now); ok {
			res.Frame = frame
		}
		res.Iterations++
		res.EndedAt = now

		if c.Done() {
			break
		}
	}

	res.Final = c.Active()
	res.Quit = c.Done()
	return res
}
