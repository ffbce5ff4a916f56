package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Board seeds
const (
	SeedDemo  = "demo"
	SeedEmpty = "empty"
)

// ErrInvalidConfig indicates a config value outside its allowed set
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Board       BoardConfig        `yaml:"board"`
	LogLevel    string             `yaml:"log_level"`
}

// BoardConfig controls the board the application starts with
type BoardConfig struct {
	Seed string `yaml:"seed"` // "demo" or "empty"
}

// envOverrides are read from the environment after the config file
type envOverrides struct {
	Seed      string `env:"DRAGBOARD_SEED"`
	LogLevel  string `env:"DRAGBOARD_LOG_LEVEL"`
	ThemeFile string `env:"DRAGBOARD_THEME_FILE"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Board:       BoardConfig{Seed: SeedDemo},
		LogLevel:    "info",
	}
}

// loadThemeFile loads and merges theme from DRAGBOARD_THEME_FILE
func loadThemeFile(config *Config, themeFile string) {
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with DRAGBOARD_* environment variables
func applyEnv(config *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overrides.Seed != "" {
		config.Board.Seed = overrides.Seed
	}
	if overrides.LogLevel != "" {
		config.LogLevel = overrides.LogLevel
	}
	loadThemeFile(config, overrides.ThemeFile)
	return nil
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readConfigFile() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks the board seed and log level
func (c *Config) Validate() error {
	switch c.Board.Seed {
	case SeedDemo, SeedEmpty:
	default:
		return fmt.Errorf("%w: board.seed %q (want %q or %q)", ErrInvalidConfig, c.Board.Seed, SeedDemo, SeedEmpty)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dragboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dragboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Board.Seed == "" {
		c.Board.Seed = SeedDemo
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
