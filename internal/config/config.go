// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// Persistence modes.
const (
	// PersistEveryMutation writes the full list after every change.
	PersistEveryMutation = "every-mutation"
	// PersistAddOnly writes only on add, using the list as it was before the add.
	PersistAddOnly = "add-only"
)

// Themes.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTitle is the masthead title.
const DefaultTitle = "What's up, Friend!"

// Config represents the application configuration.
type Config struct {
	UI          UIConfig          `yaml:"ui"`
	Storage     StorageConfig     `yaml:"storage"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Log         LogConfig         `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Title  string `yaml:"title"`
	Theme  string `yaml:"theme"`  // "auto", "light" or "dark"
	Notify bool   `yaml:"notify"` // desktop notification when everything is done
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	// Path is the file or database location. Empty means a default under DataDir.
	Path string `yaml:"path,omitempty"`
}

// PersistenceConfig controls when the task list is written back.
type PersistenceConfig struct {
	Mode string `yaml:"mode"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is the log destination. Empty means DataDir/whatsup.log, "-" means stderr.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title: DefaultTitle,
			Theme: ThemeAuto,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		Persistence: PersistenceConfig{
			Mode: PersistEveryMutation,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileHeader is written above the YAML body by SaveFile.
const fileHeader = `# whatsup configuration
#
# storage.backend:  file | sqlite | keyring | memory
# persistence.mode: every-mutation | add-only
# ui.theme:         auto | light | dark
# log.level:        debug | info | warn | error

`

// SaveFile writes the configuration to path.
func SaveFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks enum-valued settings.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendKeyring, BackendMemory:
	default:
		return fmt.Errorf("invalid storage.backend %q", c.Storage.Backend)
	}

	switch c.Persistence.Mode {
	case PersistEveryMutation, PersistAddOnly:
	default:
		return fmt.Errorf("invalid persistence.mode %q", c.Persistence.Mode)
	}

	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid ui.theme %q", c.UI.Theme)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}

	return nil
}

// PersistsEveryMutation reports whether toggles, renames and removals are written.
func (c *Config) PersistsEveryMutation() bool {
	return c.Persistence.Mode != PersistAddOnly
}
