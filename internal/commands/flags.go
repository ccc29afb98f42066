package commands

import (
	"os"
	"path/filepath"

	"github.com/ben1998pe/soap-country-info/internal/console"
	"github.com/ben1998pe/soap-country-info/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the country directory client shared by all commands
	Service console.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "country-info", "config.yaml")
}
