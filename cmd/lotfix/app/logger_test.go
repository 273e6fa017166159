package app

import "testing"

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"explicit log level wins", Config{LogLevel: "error", Verbose: true}, "error"},
		{"invalid log level falls back", Config{LogLevel: "loud"}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"verbose and quiet prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%s) = %s", level, got)
		}
	}
	if got := validateLogLevel("bogus"); got != "info" {
		t.Errorf("validateLogLevel(bogus) = %s, want info", got)
	}
}
