// runner is a side-scrolling arcade runner: jump over ten obstacles to win.
//
// Usage:
//
//	runner play      - Play in the terminal
//	runner window    - Play in a desktop window
//	runner serve     - Start SSH server for remote play
//	runner history   - Show recently finished rounds
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.runner/config.yaml, ./configs/runner.yaml)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--journal <path>    - Override the journal database path
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runner-dash/internal/config"
	"github.com/vovakirdan/runner-dash/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagJournal  string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner Dash - jump over ten obstacles to win",
	Long: `Runner Dash is a side-scrolling arcade runner. The player runs
automatically; jump over turtles, rabbits and mushrooms. Pass ten to win,
touch one and the round is over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show recently finished rounds

Examples:
  runner play
  runner window --scale 1.5
  runner serve --ssh :2222
  runner history --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to journal database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if flagJournal != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.Path = flagJournal
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to out. The returned close func releases the file.
func newLogger(cfg config.Config, out io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openJournal opens the journal if enabled. Failure is a warning: the game
// still runs without it.
func openJournal(cfg config.Config, logger *log.Logger) *storage.Journal {
	if !cfg.Journal.Enabled {
		return nil
	}
	journal, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("could not open journal", "path", cfg.Journal.Path, "error", err)
		return nil
	}
	return journal
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
