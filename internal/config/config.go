// Package config provides YAML-based host configuration for the runner:
// tick rate, key bindings, journal location, logging, window and SSH
// settings. Gameplay constants live in the world package and are not
// configurable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full host configuration.
type Config struct {
	TickRate int           `yaml:"tick_rate"`
	Keys     KeysConfig    `yaml:"keys"`
	Journal  JournalConfig `yaml:"journal"`
	Log      LogConfig     `yaml:"log"`
	Window   WindowConfig  `yaml:"window"`
	SSH      SSHConfig     `yaml:"ssh"`
}

// KeysConfig lists the terminal keys bound to each action.
// Key names follow Bubble Tea's KeyMsg.String() ("up", "ctrl+c", " ").
type KeysConfig struct {
	Jump    []string `yaml:"jump"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// JournalConfig controls the finished-rounds journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Scale float64 `yaml:"scale"` // Window size relative to the 1000x600 world
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.runner/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Tick rate bounds accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// Validate checks the settings the hosts depend on.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range [%d, %d]", c.TickRate, MinTickRate, MaxTickRate))
	}
	if len(c.Keys.Jump) == 0 {
		errs = append(errs, errors.New("keys.jump is empty"))
	}
	if len(c.Keys.Restart) == 0 {
		errs = append(errs, errors.New("keys.restart is empty"))
	}
	if len(c.Keys.Quit) == 0 {
		errs = append(errs, errors.New("keys.quit is empty"))
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		errs = append(errs, errors.New("journal.path is empty"))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
