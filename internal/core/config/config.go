// Package config handles configuration loading and validation for threads.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Intent names bindable from the keybindings section. They mirror the
// dispatcher intents plus the TUI-local ones.
const (
	IntentReply       = "reply"
	IntentDelete      = "delete"
	IntentCreate      = "create"
	IntentSearch      = "search"
	IntentReload      = "reload"
	IntentClearSearch = "clear-search"
	IntentPreview     = "preview"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"r": {Intent: IntentReply, Help: "reply"},
	"d": {
		Intent:  IntentDelete,
		Help:    "delete",
		Confirm: "Are you sure you want to delete this comment?",
	},
	"n":     {Intent: IntentCreate, Help: "new"},
	"/":     {Intent: IntentSearch, Help: "search"},
	"R":     {Intent: IntentReload, Help: "reload"},
	"c":     {Intent: IntentClearSearch, Help: "clear search"},
	"enter": {Intent: IntentPreview, Help: "preview"},
}

// Config holds the application configuration.
type Config struct {
	Server      ServerConfig          `yaml:"server"`
	Display     DisplayConfig         `yaml:"display"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
}

// ServerConfig locates the comment service.
type ServerConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DisplayConfig controls how comments are drawn.
type DisplayConfig struct {
	TimeFormat  string `yaml:"time_format"`  // Go reference-time layout
	IndentWidth int    `yaml:"indent_width"` // columns per depth level in text output
	Theme       string `yaml:"theme"`
}

// Keybinding defines a TUI keybinding.
type Keybinding struct {
	Intent  string `yaml:"intent"`  // intent name (reply, delete, ...)
	Help    string `yaml:"help"`    // help text shown in TUI
	Confirm string `yaml:"confirm"` // confirmation prompt (empty = no confirm)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		Display: DisplayConfig{
			TimeFormat:  "2006-01-02 15:04:05",
			IndentWidth: 2,
			Theme:       "tokyo-night",
		},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if c.Display.TimeFormat == "" {
		c.Display.TimeFormat = defaults.Display.TimeFormat
	}
	if c.Display.Theme == "" {
		c.Display.Theme = defaults.Display.Theme
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}

	return result
}

// DefaultKeybindings returns a copy of the built-in keybindings.
func DefaultKeybindings() map[string]Keybinding {
	return mergeKeybindings(defaultKeybindings, nil)
}

func isValidIntent(intent string) bool {
	switch intent {
	case IntentReply, IntentDelete, IntentCreate, IntentSearch,
		IntentReload, IntentClearSearch, IntentPreview:
		return true
	default:
		return false
	}
}
