package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/synesthete/internal/core/config"
	"github.com/hay-kot/synesthete/internal/core/synesthesia"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Colorizer is built from Config in the Before hook
	Colorizer *synesthesia.Colorizer
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "synesthete", "config.yaml")
}
