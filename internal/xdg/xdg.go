// Package xdg provides helpers to resolve XDG Base Directory paths for kgdebug.
// It implements the XDG Base Directory specification for determining the
// location of the tool's configuration directory on Unix-like systems.
//
// The package handles fallback to traditional locations when XDG environment
// variables are not set and keeps the configuration directory private.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for kgdebug.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/kgdebug when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "kgdebug")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
