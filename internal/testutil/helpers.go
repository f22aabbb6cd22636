// Package testutil provides isolated environments and fixtures for tests
// that touch the filesystem.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to an isolated HOME with a kelvin config dir.
type TestEnv struct {
	Home      string // Mocked HOME directory
	ConfigDir string // ~/.config/kelvin equivalent
	t         *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env
// restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	configDir := filepath.Join(tmpHome, ".config", "kelvin")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:      tmpHome,
		ConfigDir: configDir,
		t:         t,
	}
}

// WriteConfig writes a config.toml with the given content.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write config: %v", err)
	}
}

// TasksPath returns the default task file path inside the environment.
func (e *TestEnv) TasksPath() string {
	return filepath.Join(e.ConfigDir, "tasks.json")
}
