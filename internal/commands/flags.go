package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/threads"
	"github.com/hay-kot/threads/pkg/utils"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Server     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// App is the wired client, created in the Before hook
	App *threads.App

	// Stderr receives logs when no log file is set. The TUI holds it while
	// the alternate screen is active.
	Stderr *utils.DeferredWriter
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "threads", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/threads/threads.log
// On Linux: $XDG_STATE_HOME/threads/threads.log (defaults to ~/.local/state/threads/threads.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "threads", "threads.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "threads", "threads.log")
	}

	return filepath.Join(home, ".local", "state", "threads", "threads.log")
}
