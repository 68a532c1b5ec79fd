package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "planetdefense", log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "planetdefense") {
		t.Errorf("expected prefixed warn message, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"error", log.ErrorLevel, false},
		{"chatty", log.InfoLevel, true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "play.log")

	logger, closer, err := OpenFile(path, "play", log.DebugLevel)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Debug("tick", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "tick") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenFile("", "play", log.DebugLevel)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("closer should be a no-op, got %v", err)
	}
}
