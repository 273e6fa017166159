package app

import (
	"testing"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_DefaultDataFile verifies the data file default survives config loading.
func TestApp_DefaultDataFile(t *testing.T) {
	app, err := New("dev", "unknown", "unknown", "unknown")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Config().DataFile == "" {
		t.Error("DataFile is empty, want a default")
	}
}
