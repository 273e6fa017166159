package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer
	SetDefault(New(&buf))

	Info().Str("key", "value").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected output to contain field, got: %s", output)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected output to contain message, got: %s", buf.String())
	}
}

func TestNewTestLogger(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Debug().Msg("captured at debug")

	if !tl.Contains("captured at debug") {
		t.Errorf("test logger did not capture debug output: %s", tl.Output())
	}
	if len(tl.Lines()) != 1 {
		t.Errorf("expected 1 line, got %d", len(tl.Lines()))
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want zerolog.Level
	}{
		{"default", "", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"invalid", "bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			t.Setenv("DEBUG", "")
			if got := getLogLevel(); got != tt.want {
				t.Errorf("getLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
