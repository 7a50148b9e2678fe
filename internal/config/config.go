// Package config loads the optional .bootcheck.yaml configuration.
// Lookup order: current directory, then the user config directory.
// Command-line flags override anything loaded here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig is the application configuration from .bootcheck.yaml.
type AppConfig struct {
	Format  string `yaml:"format"` // auto, terminal, plain, json
	Theme   string `yaml:"theme"`  // default, mono
	NoColor bool   `yaml:"no_color"`
	Run     string `yaml:"run"` // unit name filter
}

// Defaults for unset fields.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// Load reads the configuration, falling back to defaults when no file is
// found or the file is unreadable. A malformed file warns on stderr rather
// than failing: the self-test must still run on a box with a broken config.
func Load() *AppConfig {
	cfg := &AppConfig{
		Format: DefaultFormat,
		Theme:  DefaultTheme,
	}

	path := configPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", path, err)
		}
		return cfg
	}

	var loaded AppConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parsing config %s: %v\n", path, err)
		return cfg
	}

	if loaded.Format != "" {
		cfg.Format = loaded.Format
	}
	if loaded.Theme != "" {
		cfg.Theme = loaded.Theme
	}
	cfg.NoColor = loaded.NoColor
	cfg.Run = loaded.Run
	return cfg
}

// configPath finds the config file: local directory first, then the user
// config directory.
func configPath() string {
	local := ".bootcheck.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	path := filepath.Join(configHome, "bootcheck", ".bootcheck.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
