// Package config loads CLI configuration from the XDG config dir.
// Settings resolve in layers: built-in defaults, then the config file,
// then KGDEBUG_* environment variables. Command-line flags override all
// of these and are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"kgdebug/cli/internal/xdg"
)

// Config holds the connection and protocol settings for one invocation.
type Config struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	Prefix        string `yaml:"prefix"`
	BufferSize    int    `yaml:"buffer_size"`
	ForwardSocket string `yaml:"forward_socket"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns settings for a server reachable through the usual
// adb forward on localhost.
func Default() Config {
	return Config{
		Host:          "localhost",
		Port:          3000,
		Prefix:        "<kg-provider-test>",
		BufferSize:    1024,
		ForwardSocket: "kg.provider.test.server",
		LogLevel:      "info",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

// Load reads configuration; missing file returns defaults. Environment
// variables are applied last so they win over the file.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&c)
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	applyEnv(&c)
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// applyEnv overlays KGDEBUG_* variables. A .env file in the working
// directory is honored when present; unparsable values are ignored.
func applyEnv(c *Config) {
	_ = godotenv.Load()
	if v := os.Getenv("KGDEBUG_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("KGDEBUG_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("KGDEBUG_PREFIX"); v != "" {
		c.Prefix = v
	}
	if v := os.Getenv("KGDEBUG_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects settings the protocol loop cannot run with. It is
// called after flag overrides so a flag can correct a bad file value.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size must be positive, got %d", c.BufferSize)
	}
	return nil
}

// Addr returns the dial address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
