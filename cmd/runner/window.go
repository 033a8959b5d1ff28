package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runner-dash/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a round in a desktop window.

Controls:
  Space/Up - Jump
  R        - Restart
  Q/Esc    - Quit

Examples:
  runner window
  runner window --scale 0.75`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to 1000x600 (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	journal := openJournal(cfg, logger)
	if journal != nil {
		defer journal.Close()
	}

	logger.Info("opening window", "scale", cfg.Window.Scale, "tps", cfg.TickRate)
	if err := gui.Run(gui.Options{
		Scale:    cfg.Window.Scale,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
		Journal:  journal,
		Logger:   logger,
	}); err != nil {
		logger.Error("window closed", "error", err)
		os.Exit(1)
	}
}
