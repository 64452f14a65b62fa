package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if err != nil {
				t.Fatalf("New() = %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, expected %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("apple eaten", "len", 5)

	out := buf.String()
	if !strings.Contains(out, "snake") || !strings.Contains(out, "len=5") {
		t.Errorf("output = %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("New() should reject unknown levels")
	}
}
