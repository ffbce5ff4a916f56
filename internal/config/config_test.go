package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "dragboard")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.PickUp != "space" {
		t.Errorf("Default PickUp key = %s, want space", defaults.PickUp)
	}
	if defaults.CancelDrag != "esc" {
		t.Errorf("Default CancelDrag key = %s, want esc", defaults.CancelDrag)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Board.Seed != SeedDemo {
		t.Errorf("Loaded seed = %s, want %s", cfg.Board.Seed, SeedDemo)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Loaded preset = %s, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	writeConfig(t, tempDir, `key_mappings:
  quit: "x"
  pick_up: "p"
board:
  seed: empty
log_level: debug
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.PickUp != "p" {
		t.Errorf("Loaded PickUp key = %s, want p", cfg.KeyMappings.PickUp)
	}
	if cfg.Board.Seed != SeedEmpty {
		t.Errorf("Loaded seed = %s, want empty", cfg.Board.Seed)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.Drop != "enter" {
		t.Errorf("Loaded Drop key = %s, want enter (default)", cfg.KeyMappings.Drop)
	}

	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v; want DEBUG", level, err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	writeConfig(t, tempDir, "board:\n  seed: demo\n")

	t.Setenv("DRAGBOARD_SEED", "empty")
	t.Setenv("DRAGBOARD_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Seed != SeedEmpty {
		t.Errorf("seed = %s, want env override empty", cfg.Board.Seed)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %s, want env override warn", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "seed", content: "board:\n  seed: random\n"},
		{name: "log level", content: "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", tempDir)
			writeConfig(t, tempDir, tt.content)

			_, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	writeConfig(t, tempDir, "key_mappings: [unclosed\n")

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML succeeded, want error")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:   "x",
			PickUp: "p",
		},
		Board: BoardConfig{Seed: SeedEmpty},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "dragboard", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.PickUp != "p" {
		t.Errorf("Reloaded PickUp key = %s, want p", cfg2.KeyMappings.PickUp)
	}
	if cfg2.Board.Seed != SeedEmpty {
		t.Errorf("Reloaded seed = %s, want empty", cfg2.Board.Seed)
	}
}
