// ABOUTME: XDG-based config directory resolution for bridgeplay.
// ABOUTME: Checks XDG_CONFIG_HOME, falls back to ~/.config/bridgeplay, and finds config.yaml there.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigDir returns the default config directory for bridgeplay.
// It checks XDG_CONFIG_HOME first, then falls back to ~/.config/bridgeplay.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bridgeplay"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "bridgeplay"), nil
}

// DiscoverFile returns the path of config.yaml in the default config
// directory if it exists, or "" when there is none.
func DiscoverFile() string {
	dir, err := defaultConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.yaml")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
