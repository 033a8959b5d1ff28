package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/runner.yaml.
func Default() Config {
	return Config{
		TickRate: 60,
		Keys: KeysConfig{
			Jump:    []string{" ", "up", "w"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "~/.runner/journal.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Scale: 1.0,
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
